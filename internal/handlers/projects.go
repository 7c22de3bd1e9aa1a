package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kz.dev/internal/content"
	"kz.dev/internal/detail"
	"kz.dev/internal/i18n"
	"kz.dev/internal/models"
	"kz.dev/internal/services"
	"kz.dev/internal/views"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	bundle         *i18n.Bundle
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, bundle *i18n.Bundle) *ProjectHandler {
	return &ProjectHandler{projectService: ps, bundle: bundle}
}

// projectResponse is a project with its case study inlined
type projectResponse struct {
	models.Project
	Detail *models.ProjectDetail `json:"detail,omitempty"`
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, http.StatusOK, models.ProjectList{Projects: projects})
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, projectResponse{Project: *project, Detail: project.Detail})
}

// GetTOC handles GET /api/projects/{id}/toc
func (h *ProjectHandler) GetTOC(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetCaseStudy(id)
	if errors.Is(err, content.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	l := i18n.FromContext(r.Context())
	if l == nil {
		l = h.bundle.Localizer(h.bundle.Default())
	}
	toc := detail.TOC(views.Env{L: l}, detail.Compose(project.Detail))
	respondJSON(w, http.StatusOK, toc)
}
