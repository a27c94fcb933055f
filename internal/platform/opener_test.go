package platform

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLink(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"youtube link", "https://www.youtube.com/watch?v=4aZr5hZXP_s", false},
		{"plain http", "http://www.bbcgoodfood.com/recipes/2217/", false},
		{"surrounding spaces", "  https://example.com/a  ", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"not a url", "not a url", true},
		{"missing scheme", "www.youtube.com/watch", true},
		{"ftp scheme", "ftp://example.com/file", true},
		{"javascript", "javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseLink(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidLink))
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, u.Host)
		})
	}
}

func TestOpenCommand(t *testing.T) {
	link := "https://example.com/recipe?id=1&x=2"

	tests := []struct {
		goos         string
		expectedName string
		expectedArgs []string
	}{
		{OSDarwin, OpenCommand, []string{link}},
		{OSLinux, XDGOpenCommand, []string{link}},
		{OSFreeBSD, XDGOpenCommand, []string{link}},
		{OSWindows, RunDLLCommand, []string{URLProtocolDLL, link}},
		{OSAndroid, AndroidCommand, []string{"start", "-a", AndroidViewIntent, "-d", link}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := openCommand(tt.goos, link)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}

	_, _, err := openCommand("plan9", link)
	assert.True(t, errors.Is(err, ErrUnsupportedOS))
}

func TestSystemOpener_OpenURL(t *testing.T) {
	var gotName string
	var gotArgs []string
	opener := &SystemOpener{
		goos: OSLinux,
		run: func(name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		},
	}

	u, err := url.Parse("https://www.themealdb.com/meal/52772")
	require.NoError(t, err)

	require.NoError(t, opener.OpenURL(u))
	assert.Equal(t, XDGOpenCommand, gotName)
	assert.Equal(t, []string{u.String()}, gotArgs)
}

func TestSystemOpener_OpenURL_Failures(t *testing.T) {
	failing := &SystemOpener{
		goos: OSLinux,
		run: func(string, ...string) error {
			return errors.New("exec: \"xdg-open\": executable file not found in $PATH")
		},
	}

	u, _ := url.Parse("https://example.com")
	assert.Error(t, failing.OpenURL(u))
	assert.True(t, errors.Is(failing.OpenURL(nil), ErrInvalidLink))

	unsupported := &SystemOpener{goos: "plan9", run: failing.run}
	assert.True(t, errors.Is(unsupported.OpenURL(u), ErrUnsupportedOS))
}

func TestNewSystemOpener(t *testing.T) {
	opener := NewSystemOpener()
	assert.NotEmpty(t, opener.goos)
	assert.NotNil(t, opener.run)
}
