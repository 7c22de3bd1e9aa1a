package generation

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kz.dev/internal/config"
	"kz.dev/internal/content"
	"kz.dev/internal/handlers"
	"kz.dev/internal/i18n"
	"kz.dev/internal/models"
)

func TestPagePath(t *testing.T) {
	tests := map[string]string{
		"/":                                "index.html",
		"":                                 "index.html",
		"/projects/urban-grind":            "projects/urban-grind/index.html",
		"/projects/urban-grind/":           "projects/urban-grind/index.html",
		"/projects/urban-grind/lightbox/2": "projects/urban-grind/lightbox/2/index.html",
		"/../etc":                          "etc/index.html",
	}
	for route, want := range tests {
		assert.Equal(t, want, PagePath(route), route)
	}
}

func TestRoutesSkipProjectsWithoutCaseStudy(t *testing.T) {
	projects := []models.Project{
		{ID: "plain"},
		{ID: "study", Detail: &models.ProjectDetail{
			Gallery: []models.GalleryItem{{Src: "/a.png"}, {Src: "/b.png"}},
		}},
	}

	routes := Routes(projects)
	assert.Equal(t, []Route{
		{Path: "/", Indexed: true},
		{Path: "/projects/study", Indexed: true},
		{Path: "/projects/study/lightbox/0"},
		{Path: "/projects/study/lightbox/1"},
	}, routes)
}

func TestExportFailsOnBrokenRoute(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			_, _ = io.WriteString(w, "home")
			return
		}
		http.NotFound(w, r)
	})
	e := NewExporter(handler, Options{OutDir: t.TempDir()}, zap.NewNop())

	_, err := e.Export(context.Background(), []Route{{Path: "/"}, {Path: "/gone"}})
	assert.ErrorContains(t, err, "render /gone: status 404")
}

func TestExportRequiresOutDir(t *testing.T) {
	e := NewExporter(http.NotFoundHandler(), Options{}, zap.NewNop())
	_, err := e.Export(context.Background(), nil)
	assert.Error(t, err)
}

func TestExportSite(t *testing.T) {
	store, err := content.LoadEmbedded()
	require.NoError(t, err)
	bundle, err := i18n.LoadEmbedded("ja")
	require.NoError(t, err)
	router := handlers.SetupRoutes(handlers.Deps{
		Config: &config.Config{},
		Store:  store,
		Bundle: bundle,
		Logger: zap.NewNop(),
		Now:    func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) },
		Static: true,
	})

	out := t.TempDir()
	e := NewExporter(router, Options{OutDir: out, Lang: "en", SiteURL: "https://example.com/"}, zap.NewNop())
	routes := Routes(store.Projects())

	res, err := e.Export(context.Background(), routes)
	require.NoError(t, err)
	assert.Equal(t, len(routes), res.Pages)
	assert.Equal(t, 2, res.Assets)

	home, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), `<html lang="en">`)

	frame, err := os.ReadFile(filepath.Join(out, "projects", "urban-grind", "lightbox", "3", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(frame), "4 / 4")
	assert.Contains(t, string(frame), `data-scroll-lock="lightbox"`)

	missing, err := os.ReadFile(filepath.Join(out, NotFoundFile))
	require.NoError(t, err)
	assert.Contains(t, string(missing), "There is nothing at this address.")

	assert.FileExists(t, filepath.Join(out, "static", "app.js"))
	assert.FileExists(t, filepath.Join(out, "static", "app.css"))

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://example.com/projects/urban-grind</loc>")
	assert.NotContains(t, string(sitemap), "lightbox")
}

var hrefPattern = regexp.MustCompile(`href="(/[^"]*)"`)

// exportedTarget maps an internal href to the file a static host would serve.
func exportedTarget(href string) string {
	href, _, _ = strings.Cut(href, "#")
	href, _, _ = strings.Cut(href, "?")
	if strings.HasPrefix(href, "/static/") {
		return strings.TrimPrefix(href, "/")
	}
	return PagePath(href)
}

func TestExportedFramesLinkToExportedPages(t *testing.T) {
	store, err := content.LoadEmbedded()
	require.NoError(t, err)
	bundle, err := i18n.LoadEmbedded("ja")
	require.NoError(t, err)
	router := handlers.SetupRoutes(handlers.Deps{
		Config: &config.Config{},
		Store:  store,
		Bundle: bundle,
		Logger: zap.NewNop(),
		Static: true,
	})

	out := t.TempDir()
	routes := Routes(store.Projects())
	_, err = NewExporter(router, Options{OutDir: out}, zap.NewNop()).Export(context.Background(), routes)
	require.NoError(t, err)

	frames := 0
	for _, route := range routes {
		if !strings.Contains(route.Path, "/lightbox/") {
			continue
		}
		frames++
		page, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(PagePath(route.Path))))
		require.NoError(t, err)
		assert.NotContains(t, string(page), "hx-get", route.Path)

		for _, m := range hrefPattern.FindAllStringSubmatch(string(page), -1) {
			target := exportedTarget(m[1])
			assert.FileExists(t, filepath.Join(out, filepath.FromSlash(target)), "%s links to %s", route.Path, m[1])
		}
	}
	assert.Positive(t, frames)
}

func TestExportStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewExporter(http.NotFoundHandler(), Options{OutDir: t.TempDir()}, zap.NewNop())

	_, err := e.Export(ctx, []Route{{Path: "/"}})
	assert.ErrorIs(t, err, context.Canceled)
}
