package i18n

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "kz_lang"
)

// Resolve determines the language for r: the lang query parameter, then the
// cookie, then Accept-Language. persist is true when the query parameter
// chose the language and should be stored.
func (b *Bundle) Resolve(r *http.Request) (tag language.Tag, persist bool) {
	if r == nil {
		return b.fallback, false
	}
	if value := r.URL.Query().Get(LangParam); value != "" {
		if tag, ok := b.Parse(value); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := b.Parse(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return b.Match(tags...), false
		}
	}
	return b.fallback, false
}

// SetCookie persists the selected language on the response.
func SetCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware resolves the request language and stores its localizer in the context.
func (b *Bundle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, persist := b.Resolve(r)
		if persist {
			SetCookie(w, tag)
		}
		ctx := WithLocalizer(r.Context(), b.Localizer(tag))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type ctxKey struct{}

// WithLocalizer returns a copy of ctx carrying l.
func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the localizer stored in ctx, or nil.
func FromContext(ctx context.Context) *Localizer {
	l, _ := ctx.Value(ctxKey{}).(*Localizer)
	return l
}

// LanguageURL returns path with the lang parameter set to tag.
func LanguageURL(path, rawQuery string, tag language.Tag) string {
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag.String())
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// Option is one entry of the language switcher.
type Option struct {
	Tag    string
	Label  string
	Href   string
	Active bool
}

// Options builds the language switcher for the page at path.
func (b *Bundle) Options(active language.Tag, path, rawQuery string) []Option {
	options := make([]Option, 0, len(b.tags))
	for _, tag := range b.tags {
		options = append(options, Option{
			Tag:    tag.String(),
			Label:  strings.ToUpper(tag.String()),
			Href:   LanguageURL(path, rawQuery, tag),
			Active: tag == active,
		})
	}
	return options
}
