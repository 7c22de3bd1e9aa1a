// Package linksafe validates outbound URLs and renders them as links that
// open in a new tab without exposing the opener.
package linksafe

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var (
	// ErrInvalidURL is returned for input that is not an absolute URL with a host.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInsecureScheme is returned for any scheme other than https.
	ErrInsecureScheme = errors.New("insecure url scheme")
)

// Rel is the relationship attached to every external anchor.
const Rel = "noopener noreferrer"

// Link is a checked external URL.
type Link struct {
	URL  *url.URL
	Href string
}

// Check parses raw and accepts only absolute https URLs with a host.
func Check(raw string) (Link, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Link{}, fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(s)
	if err != nil {
		return Link{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if !u.IsAbs() {
		return Link{}, fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, s)
	}
	if !strings.EqualFold(u.Scheme, "https") {
		return Link{}, fmt.Errorf("%w: %q", ErrInsecureScheme, u.Scheme)
	}
	if u.Host == "" || u.Hostname() == "" {
		return Link{}, fmt.Errorf("%w: %q has no host", ErrInvalidURL, s)
	}
	u.Scheme = "https"
	return Link{URL: u, Href: u.String()}, nil
}

// Safe reports whether raw passes Check.
func Safe(raw string) bool {
	_, err := Check(raw)
	return err == nil
}

// Guard renders external links and reports the ones it refuses.
type Guard struct {
	logger *zap.Logger
}

// NewGuard returns a guard logging to logger. A nil logger is replaced by a no-op.
func NewGuard(logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{logger: logger.Named("linksafe")}
}

// External renders raw as a new-tab anchor. Unsafe input renders a disabled
// placeholder button carrying invalidLabel instead.
func (gd *Guard) External(raw, invalidLabel, class string, children ...g.Node) g.Node {
	link, err := Check(raw)
	if err != nil {
		gd.logger.Warn("refusing external link",
			zap.String("url", raw),
			zap.Error(err),
		)
		return h.Button(
			h.Type("button"),
			h.Disabled(),
			h.Class(strings.TrimSpace(class+" cursor-not-allowed opacity-50")),
			h.Title(invalidLabel),
			g.Text(invalidLabel),
		)
	}
	return h.A(
		h.Href(link.Href),
		h.Target("_blank"),
		h.Rel(Rel),
		g.If(class != "", h.Class(class)),
		g.Group(children),
	)
}

// Audit checks every url in links and returns one error per unsafe entry,
// keyed by the caller's label.
func Audit(links map[string]string) map[string]error {
	problems := make(map[string]error)
	for label, raw := range links {
		if raw == "" {
			continue
		}
		if _, err := Check(raw); err != nil {
			problems[label] = err
		}
	}
	return problems
}
