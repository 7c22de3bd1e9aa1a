package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"kz.dev/internal/config"
	"kz.dev/internal/content"
	"kz.dev/internal/i18n"
	"kz.dev/internal/linksafe"
	"kz.dev/internal/middleware"
	"kz.dev/internal/render"
	"kz.dev/internal/services"
	"kz.dev/internal/static"
)

// Deps are the shared dependencies of all handlers
type Deps struct {
	Config *config.Config
	Store  *content.Store
	Bundle *i18n.Bundle
	Logger *zap.Logger
	// Now is the clock; time.Now when nil
	Now func() time.Time
	// Static renders pages for a static export
	Static bool
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(logger.Named("http")))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.NewRateLimiter(d.Config.RateLimit, d.Config.RateBurst, logger.Named("ratelimit")).Handler)
	r.Use(chimw.StripSlashes)
	r.Use(d.Bundle.Middleware)

	// Initialize services
	projectService := services.NewProjectService(d.Store)
	galleryService := services.NewGalleryService(projectService)

	// Initialize handlers
	pages := &PageHandler{
		projects: projectService,
		gallery:  galleryService,
		bundle:   d.Bundle,
		links:    linksafe.NewGuard(logger),
		renderer: render.New(logger),
		now:      now,
		static:   d.Static,
	}
	projectHandler := NewProjectHandler(projectService, d.Bundle)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/projects/{id}/toc", projectHandler.GetTOC)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Pages
	r.Get("/", pages.Home)
	r.Route("/projects/{slug}", func(r chi.Router) {
		r.Get("/", pages.Project)
		r.Get("/lightbox/close", pages.CloseLightbox)
		r.Get("/lightbox/{index}", pages.OpenLightbox)
		r.Get("/lightbox/{index}/key/{key}", pages.LightboxKey)
		r.Get("/lightbox/{index}/{action}", pages.StepLightbox)
	})
	r.NotFound(pages.NotFound)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", static.Handler()))
	if d.Config.AssetsPath != "" {
		r.Handle("/images/*", http.StripPrefix("/images", http.FileServer(http.Dir(d.Config.AssetsPath))))
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
