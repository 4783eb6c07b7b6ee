package capability

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/matheuskafuri/grid7/internal/news"
)

// ErrUnsupported is returned when the host lacks a capability.
var ErrUnsupported = errors.New("not supported on this host")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// Payload is what a share sheet receives.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// Sharer hands a payload to a native share facility.
type Sharer interface {
	Share(p Payload) error
}

// Opener shows a URL to the user.
type Opener interface {
	Open(rawURL string) error
}

// SystemClipboard uses the host clipboard tools.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// TerminalSharer stands in for a share sheet, which terminals do not have.
type TerminalSharer struct{}

func (TerminalSharer) Share(Payload) error {
	return ErrUnsupported
}

// ShareText is the clipboard fallback for sharing an article.
func ShareText(a news.Article) string {
	return a.Title + "\n" + a.Link()
}

// ShareOrCopy shares the article, or copies it when sharing is unsupported.
// copied reports whether the clipboard was used.
func ShareOrCopy(s Sharer, c Clipboard, a news.Article) (copied bool, err error) {
	err = s.Share(Payload{Title: a.Title, Text: a.Summary, URL: a.Link()})
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrUnsupported) {
		return false, fmt.Errorf("sharing: %w", err)
	}
	if err := c.Copy(ShareText(a)); err != nil {
		return false, err
	}
	return true, nil
}

// Browser opens URLs in the system browser.
type Browser struct{}

func (Browser) Open(rawURL string) error {
	return Open(rawURL)
}

func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		// rundll32 avoids cmd's shell interpretation of the URL
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
