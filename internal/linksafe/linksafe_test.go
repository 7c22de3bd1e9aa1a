package linksafe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		err  error
		href string
	}{
		{"https", "https://kirei-routine.app", nil, "https://kirei-routine.app"},
		{"path and query", "https://github.com/kz/ai-news-bot?tab=readme", nil, "https://github.com/kz/ai-news-bot?tab=readme"},
		{"uppercase scheme", "HTTPS://example.com/x", nil, "https://example.com/x"},
		{"surrounding space", "  https://example.com  ", nil, "https://example.com"},
		{"http", "http://example.com", ErrInsecureScheme, ""},
		{"javascript", "javascript:alert(1)", ErrInsecureScheme, ""},
		{"data", "data:text/html,<script>alert(1)</script>", ErrInsecureScheme, ""},
		{"relative", "/projects/x", ErrInvalidURL, ""},
		{"scheme relative", "//example.com", ErrInvalidURL, ""},
		{"no host", "https://", ErrInvalidURL, ""},
		{"bad host", "https://exa mple.com", ErrInvalidURL, ""},
		{"empty", "", ErrInvalidURL, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := Check(tt.raw)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.False(t, Safe(tt.raw))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.href, link.Href)
			assert.True(t, Safe(tt.raw))
		})
	}
}

func TestExternalSafeLink(t *testing.T) {
	guard := NewGuard(nil)
	out := render(t, guard.External("https://github.com/kz", "Invalid URL", "btn", g.Text("GitHub")))

	assert.True(t, strings.HasPrefix(out, "<a "), out)
	assert.Contains(t, out, `href="https://github.com/kz"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `rel="noopener noreferrer"`)
	assert.Contains(t, out, `class="btn"`)
	assert.Contains(t, out, ">GitHub</a>")
}

func TestExternalUnsafeNeverAnchor(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	guard := NewGuard(zap.New(core))

	unsafe := []string{
		"javascript:alert(document.cookie)",
		"http://example.com",
		"not a url",
		"/relative/path",
		"https://",
	}
	for _, raw := range unsafe {
		out := render(t, guard.External(raw, "Invalid URL", "btn", g.Text("Open")))
		assert.NotContains(t, out, "<a", raw)
		assert.NotContains(t, out, "href", raw)
		assert.Contains(t, out, "<button", raw)
		assert.Contains(t, out, " disabled", raw)
		assert.Contains(t, out, ">Invalid URL</button>", raw)
	}

	entries := logs.FilterMessage("refusing external link").All()
	require.Len(t, entries, len(unsafe))
	assert.Equal(t, unsafe[0], entries[0].ContextMap()["url"])
}

func TestAudit(t *testing.T) {
	problems := Audit(map[string]string{
		"kirei-routine demo":   "https://kirei-routine.app",
		"kirei-routine github": "",
		"ai-news-bot docs":     "http://docs.example.com",
	})
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems["ai-news-bot docs"], ErrInsecureScheme)
}
