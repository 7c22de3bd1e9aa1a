// Package generation renders the site to a directory of static HTML files.
package generation

import (
	"context"
	"encoding/xml"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"kz.dev/internal/models"
	"kz.dev/internal/static"
	"kz.dev/internal/views"
)

// NotFoundFile is the page served by static hosts for unknown paths
const NotFoundFile = "404.html"

// Route is one page of the export
type Route struct {
	Path string
	// Indexed routes are listed in the sitemap; lightbox frames are not
	Indexed bool
}

// Routes lists the home page, every case study and every unfiltered lightbox frame
func Routes(projects []models.Project) []Route {
	routes := []Route{{Path: "/", Indexed: true}}
	for i := range projects {
		p := &projects[i]
		if p.Detail == nil {
			continue
		}
		routes = append(routes, Route{Path: p.CaseStudyURL(), Indexed: true})
		for n := range p.Detail.GalleryItems() {
			routes = append(routes, Route{Path: views.LightboxURL(p.ID, n, "")})
		}
	}
	return routes
}

// Options configures an export
type Options struct {
	OutDir string
	// Lang is sent as Accept-Language; empty renders the default language
	Lang string
	// SiteURL prefixes sitemap entries; no sitemap is written when empty
	SiteURL string
}

// Result summarizes a finished export
type Result struct {
	Pages  int
	Assets int
}

// Exporter renders routes through the site handler
type Exporter struct {
	handler http.Handler
	opts    Options
	logger  *zap.Logger
}

// NewExporter creates an exporter writing to opts.OutDir
func NewExporter(handler http.Handler, opts Options, logger *zap.Logger) *Exporter {
	return &Exporter{handler: handler, opts: opts, logger: logger.Named("generate")}
}

// Export writes every route, the not-found page, the static assets and the sitemap
func (e *Exporter) Export(ctx context.Context, routes []Route) (Result, error) {
	var res Result
	if e.opts.OutDir == "" {
		return res, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(e.opts.OutDir, 0755); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}

	for _, route := range routes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		body, status := e.fetch(ctx, route.Path)
		if status != http.StatusOK {
			return res, fmt.Errorf("render %s: status %d", route.Path, status)
		}
		file := PagePath(route.Path)
		if err := e.write(file, body); err != nil {
			return res, err
		}
		res.Pages++
		e.logger.Debug("page written", zap.String("route", route.Path), zap.String("file", file))
	}

	body, status := e.fetch(ctx, "/__missing__")
	if status != http.StatusNotFound {
		return res, fmt.Errorf("render not-found page: status %d", status)
	}
	if err := e.write(NotFoundFile, body); err != nil {
		return res, err
	}

	assets, err := e.copyAssets()
	if err != nil {
		return res, err
	}
	res.Assets = assets

	if e.opts.SiteURL != "" {
		if err := e.writeSitemap(routes); err != nil {
			return res, err
		}
	}

	e.logger.Info("export finished",
		zap.String("out", e.opts.OutDir),
		zap.Int("pages", res.Pages),
		zap.Int("assets", res.Assets),
	)
	return res, nil
}

func (e *Exporter) fetch(ctx context.Context, target string) ([]byte, int) {
	r := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	if e.opts.Lang != "" {
		r.Header.Set("Accept-Language", e.opts.Lang)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, r)
	return rec.Body.Bytes(), rec.Code
}

// PagePath maps a route to its file under the output directory
func PagePath(route string) string {
	route = strings.Trim(path.Clean("/"+route), "/")
	if route == "" {
		return "index.html"
	}
	return path.Join(route, "index.html")
}

func (e *Exporter) write(name string, data []byte) error {
	target := filepath.Join(e.opts.OutDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (e *Exporter) copyAssets() (int, error) {
	count := 0
	err := fs.WalkDir(static.FS(), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static.FS(), name)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", name, err)
		}
		count++
		return e.write(path.Join("static", name), data)
	})
	return count, err
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []urlLoc `xml:"url"`
}

type urlLoc struct {
	Loc string `xml:"loc"`
}

func (e *Exporter) writeSitemap(routes []Route) error {
	base := strings.TrimRight(e.opts.SiteURL, "/")
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range routes {
		if route.Indexed {
			set.URLs = append(set.URLs, urlLoc{Loc: base + route.Path})
		}
	}
	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return e.write("sitemap.xml", append([]byte(xml.Header), data...))
}
