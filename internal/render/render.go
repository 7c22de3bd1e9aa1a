// Package render writes view trees to HTTP responses, choosing between a
// full document and an htmx fragment per request.
package render

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

const (
	// RequestHeader marks requests issued by htmx.
	RequestHeader = "HX-Request"
	// TriggerHeader names client events htmx dispatches after a swap.
	TriggerHeader = "HX-Trigger"
)

// IsHTMX reports whether the request was initiated by htmx.
func IsHTMX(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// Component adapts a gomponents node to a templ component. A nil node renders nothing.
func Component(n g.Node) templ.Component {
	if n == nil {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Renderer serves pages and fragments.
type Renderer struct {
	logger *zap.Logger
}

// New returns a Renderer logging render failures to logger.
func New(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger.Named("render")}
}

// Page writes fragment to htmx requests and full to everything else, with
// status. triggers are sent as HX-Trigger events on htmx responses only.
func (rd *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, fragment, full g.Node, triggers ...string) {
	w.Header().Add("Vary", RequestHeader)

	target := full
	if IsHTMX(r) {
		target = fragment
		if len(triggers) > 0 {
			w.Header().Set(TriggerHeader, strings.Join(triggers, ", "))
		}
	}
	rd.Component(w, r, status, Component(target))
}

// Component serves c with status through templ's handler.
func (rd *Renderer) Component(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			rd.logger.Error("render failed",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
