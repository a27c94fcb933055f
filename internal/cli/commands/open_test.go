package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/meal-finder/internal/platform"
)

func TestOpenCommand(t *testing.T) {
	rt, opener := newTestRuntime(t, "")

	out, _, err := execute(t, NewOpenCommand(rt), "https://www.themealdb.com/meal/52772")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.themealdb.com/meal/52772"}, opener.opened)
	assert.Contains(t, out, "Opened https://www.themealdb.com/meal/52772")
}

func TestOpenCommand_InvalidLink(t *testing.T) {
	rt, opener := newTestRuntime(t, "")

	for _, raw := range []string{"not a url", "ftp://example.com/file", "javascript:alert(1)"} {
		out, stderr, err := execute(t, NewOpenCommand(rt), raw)
		assert.True(t, errors.Is(err, platform.ErrInvalidLink), "%q: got %v", raw, err)
		assert.Empty(t, out, "%q: usage must not be printed", raw)
		assert.Empty(t, stderr)
	}
	assert.Empty(t, opener.opened)
}

func TestOpenCommand_OpenerError(t *testing.T) {
	rt, opener := newTestRuntime(t, "")
	opener.err = errors.New("no handler")

	_, _, err := execute(t, NewOpenCommand(rt), "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")
}
