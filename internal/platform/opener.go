package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSFreeBSD = "freebsd"
)

// Command constants
const (
	OpenCommand       = "open"
	XDGOpenCommand    = "xdg-open"
	RunDLLCommand     = "rundll32"
	AndroidCommand    = "am"
	URLProtocolDLL    = "url.dll,FileProtocolHandler"
	AndroidViewIntent = "android.intent.action.VIEW"
)

// Allowed link schemes
var (
	LinkSchemes = []string{"http", "https"}
)

var (
	// ErrInvalidLink is returned for empty, malformed or non-web links
	ErrInvalidLink = errors.New("invalid link")

	// ErrUnsupportedOS is returned when no URL handler is known for the OS
	ErrUnsupportedOS = errors.New("unsupported operating system")
)

// LinkOpener hands a URL to whatever opens links on the platform.
// fyne.App satisfies it.
type LinkOpener interface {
	OpenURL(u *url.URL) error
}

// ParseLink validates raw as an absolute http(s) URL
func ParseLink(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLink)
	}

	if !govalidator.IsURL(raw) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLink, raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	if u.Host == "" || !isLinkScheme(u.Scheme) {
		return nil, fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidLink, raw)
	}

	return u, nil
}

func isLinkScheme(scheme string) bool {
	for _, s := range LinkSchemes {
		if strings.EqualFold(scheme, s) {
			return true
		}
	}
	return false
}

// SystemOpener opens links with the operating system's default handler
type SystemOpener struct {
	goos string
	run  func(name string, args ...string) error
}

// NewSystemOpener creates an opener for the running OS
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{
		goos: runtime.GOOS,
		run:  runCommand,
	}
}

// OpenURL launches the system handler for u
func (o *SystemOpener) OpenURL(u *url.URL) error {
	if u == nil {
		return fmt.Errorf("%w: nil URL", ErrInvalidLink)
	}

	name, args, err := openCommand(o.goos, u.String())
	if err != nil {
		return err
	}

	if err := o.run(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", u.Redacted(), err)
	}
	return nil
}

// openCommand returns the command line that opens link on goos
func openCommand(goos, link string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{link}, nil
	case OSWindows:
		return RunDLLCommand, []string{URLProtocolDLL, link}, nil
	case OSLinux, OSFreeBSD:
		return XDGOpenCommand, []string{link}, nil
	case OSAndroid:
		return AndroidCommand, []string{"start", "-a", AndroidViewIntent, "-d", link}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	return cmd.Start()
}
