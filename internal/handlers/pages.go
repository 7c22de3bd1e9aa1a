package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"kz.dev/internal/content"
	"kz.dev/internal/detail"
	"kz.dev/internal/gallery"
	"kz.dev/internal/i18n"
	"kz.dev/internal/linksafe"
	"kz.dev/internal/models"
	"kz.dev/internal/render"
	"kz.dev/internal/scrollspy"
	"kz.dev/internal/services"
	"kz.dev/internal/views"
)

// Client events sent with lightbox fragments
const (
	EventLock   = "lightbox:lock"
	EventUnlock = "lightbox:unlock"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	projects *services.ProjectService
	gallery  *services.GalleryService
	bundle   *i18n.Bundle
	links    *linksafe.Guard
	renderer *render.Renderer
	now      func() time.Time
	static   bool
}

func (h *PageHandler) env(r *http.Request) views.Env {
	l := i18n.FromContext(r.Context())
	if l == nil {
		l = h.bundle.Localizer(h.bundle.Default())
	}
	return views.Env{
		L:         l,
		Links:     h.links,
		Site:      h.projects.Site(),
		Path:      r.URL.Path,
		Languages: h.bundle.Options(l.Tag(), r.URL.Path, r.URL.RawQuery),
		Year:      h.now().Year(),
		Static:    h.static,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	env := h.env(r)
	nav := scrollspy.NewNav(env.Site.Nav, r.URL.Path)
	page := views.Page(env, views.Meta{}, nav, views.Home(env, h.projects.GetAll()))
	h.renderer.Page(w, r, http.StatusOK, page, page)
}

// Project handles GET /projects/{slug}
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	env := h.env(r)
	p, err := h.projects.GetCaseStudy(chi.URLParam(r, "slug"))
	if err != nil {
		h.notFound(w, r, env, "notfound.project")
		return
	}
	h.detail(w, r, env, p, r.URL.Query().Get("category"), nil, nil)
}

// NotFound renders the inline not-found page
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r, h.env(r), "notfound.page")
}

func (h *PageHandler) notFound(w http.ResponseWriter, r *http.Request, env views.Env, messageKey string) {
	nav := scrollspy.NewNav(env.Site.Nav, r.URL.Path)
	body := views.NotFound(env, messageKey)
	page := views.Page(env, views.Meta{Title: env.T("notfound.title")}, nav, body)
	h.renderer.Page(w, r, http.StatusNotFound, body, page)
}

// detail renders a case-study page. view, when set, is the open lightbox.
func (h *PageHandler) detail(w http.ResponseWriter, r *http.Request, env views.Env, p *models.Project, category string, view *services.LightboxView, triggers []string) {
	prev, next, err := h.projects.Neighbors(p.ID)
	if err != nil {
		h.notFound(w, r, env, "notfound.project")
		return
	}

	var lightbox g.Node
	if view != nil {
		lightbox = views.Lightbox(env, p.ID, category, view.Box)
	}
	ctx := detail.Context{Env: env, ProjectID: p.ID, Category: category}
	body := views.DetailPage(env, detail.Page(ctx, *p, prev, next, lightbox))

	meta := views.Meta{
		Title:       p.Detail.Title,
		Description: p.Detail.Description,
		Locked:      view != nil && view.Lock.Locked(),
	}
	nav := scrollspy.NewNav(env.Site.Nav, r.URL.Path)
	page := views.Page(env, meta, nav, body)

	if view != nil && render.IsHTMX(r) {
		h.renderer.Page(w, r, http.StatusOK, lightbox, page, triggers...)
		return
	}
	h.renderer.Page(w, r, http.StatusOK, page, page)
}

func lockEvent(lock *gallery.ScrollLock) string {
	if lock.Locked() {
		return EventLock
	}
	return EventUnlock
}

func (h *PageHandler) lightboxError(w http.ResponseWriter, r *http.Request, env views.Env, err error) {
	if errors.Is(err, gallery.ErrIndexOutOfRange) || errors.Is(err, gallery.ErrEmptyGallery) {
		h.notFound(w, r, env, "notfound.image")
		return
	}
	h.notFound(w, r, env, "notfound.project")
}

func lightboxIndex(r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	return index, err == nil
}

// OpenLightbox handles GET /projects/{slug}/lightbox/{index}
func (h *PageHandler) OpenLightbox(w http.ResponseWriter, r *http.Request) {
	env := h.env(r)
	index, ok := lightboxIndex(r)
	if !ok {
		h.notFound(w, r, env, "notfound.image")
		return
	}
	category := r.URL.Query().Get("category")

	view, err := h.gallery.Open(chi.URLParam(r, "slug"), category, index)
	if err != nil {
		h.lightboxError(w, r, env, err)
		return
	}
	defer view.Box.Teardown()

	h.detail(w, r, env, view.Project, category, view, []string{lockEvent(view.Lock)})
}

// StepLightbox handles GET /projects/{slug}/lightbox/{index}/{action}
func (h *PageHandler) StepLightbox(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	switch action {
	case gallery.ActionNext, gallery.ActionPrev, gallery.ActionBackdrop:
	default:
		h.NotFound(w, r)
		return
	}
	h.step(w, r, action)
}

// LightboxKey handles GET /projects/{slug}/lightbox/{index}/key/{key}
func (h *PageHandler) LightboxKey(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, chi.URLParam(r, "key"))
}

func (h *PageHandler) step(w http.ResponseWriter, r *http.Request, action string) {
	env := h.env(r)
	index, ok := lightboxIndex(r)
	if !ok {
		h.notFound(w, r, env, "notfound.image")
		return
	}
	slug := chi.URLParam(r, "slug")
	category := r.URL.Query().Get("category")

	view, err := h.gallery.Step(slug, category, index, action)
	if errors.Is(err, services.ErrInvalidAction) {
		// unknown keys are ignored
		if render.IsHTMX(r) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, views.LightboxURL(slug, index, category), http.StatusSeeOther)
		return
	}
	if err != nil {
		h.lightboxError(w, r, env, err)
		return
	}
	defer view.Box.Teardown()

	if !render.IsHTMX(r) {
		target := views.GalleryURL(slug, category)
		if view.Box.IsOpen() {
			target = views.LightboxURL(slug, view.Box.Index(), category)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	h.renderer.Page(w, r, http.StatusOK, views.Lightbox(env, slug, category, view.Box), nil, lockEvent(view.Lock))
}

// CloseLightbox handles GET /projects/{slug}/lightbox/close
func (h *PageHandler) CloseLightbox(w http.ResponseWriter, r *http.Request) {
	env := h.env(r)
	slug := chi.URLParam(r, "slug")
	if _, err := h.projects.GetCaseStudy(slug); errors.Is(err, content.ErrNotFound) {
		h.notFound(w, r, env, "notfound.project")
		return
	}
	category := r.URL.Query().Get("category")

	if !render.IsHTMX(r) {
		http.Redirect(w, r, views.GalleryURL(slug, category), http.StatusSeeOther)
		return
	}
	h.renderer.Page(w, r, http.StatusOK, nil, nil, EventUnlock)
}
