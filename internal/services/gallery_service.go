package services

import (
	"errors"
	"fmt"

	"kz.dev/internal/gallery"
	"kz.dev/internal/models"
)

// ErrInvalidAction is returned for an unknown lightbox action
var ErrInvalidAction = errors.New("invalid lightbox action")

// LightboxView is the lightbox state of one request
type LightboxView struct {
	Project  *models.Project
	Items    []models.GalleryItem
	Category string
	Lock     *gallery.ScrollLock
	Box      *gallery.Lightbox
}

// GalleryService drives the gallery lightbox
type GalleryService struct {
	projects *ProjectService
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(ps *ProjectService) *GalleryService {
	return &GalleryService{projects: ps}
}

// Items returns the merged gallery of a case study, filtered by category
func (s *GalleryService) Items(id, category string) (*models.Project, []models.GalleryItem, error) {
	p, err := s.projects.GetCaseStudy(id)
	if err != nil {
		return nil, nil, err
	}
	return p, gallery.Filter(p.Detail.GalleryItems(), category), nil
}

// Open returns a view with the lightbox showing index
func (s *GalleryService) Open(id, category string, index int) (*LightboxView, error) {
	p, items, err := s.Items(id, category)
	if err != nil {
		return nil, err
	}
	lock := gallery.NewScrollLock()
	box := gallery.NewLightbox("lightbox:"+p.ID, items, lock)
	if err := box.Open(index); err != nil {
		return nil, err
	}
	return &LightboxView{
		Project:  p,
		Items:    items,
		Category: category,
		Lock:     lock,
		Box:      box,
	}, nil
}

// Step opens the lightbox at index and applies action to it.
// Actions are next, prev, close, backdrop, or a keyboard key name.
func (s *GalleryService) Step(id, category string, index int, action string) (*LightboxView, error) {
	view, err := s.Open(id, category, index)
	if err != nil {
		return nil, err
	}

	switch action {
	case gallery.ActionNext:
		view.Box.Next()
	case gallery.ActionPrev:
		view.Box.Prev()
	case gallery.ActionClose:
		view.Box.Close()
	case gallery.ActionBackdrop:
		view.Box.ClickBackdrop()
	default:
		if !view.Box.HandleKey(action) {
			view.Box.Teardown()
			return nil, fmt.Errorf("%w: %s", ErrInvalidAction, action)
		}
	}
	return view, nil
}
