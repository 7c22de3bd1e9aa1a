package services

import (
	"fmt"

	"kz.dev/internal/content"
	"kz.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	store *content.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *content.Store) *ProjectService {
	return &ProjectService{store: store}
}

// Site returns the owner profile
func (s *ProjectService) Site() models.Site {
	return s.store.Site()
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.store.Projects()
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	p, err := s.store.Project(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetCaseStudy returns a project that has a detail page
func (s *ProjectService) GetCaseStudy(id string) (*models.Project, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p.Detail == nil {
		return nil, fmt.Errorf("%w: %s has no case study", content.ErrNotFound, id)
	}
	return p, nil
}

// Neighbors returns the previous and next case studies around id in display
// order, wrapping at both ends. Both are nil when id is the only case study.
func (s *ProjectService) Neighbors(id string) (prev, next *models.Project, err error) {
	var studies []models.Project
	at := -1
	for _, p := range s.store.Projects() {
		if p.Detail == nil {
			continue
		}
		if p.ID == id {
			at = len(studies)
		}
		studies = append(studies, p)
	}
	if at < 0 {
		return nil, nil, fmt.Errorf("%w: %s", content.ErrNotFound, id)
	}
	n := len(studies)
	if n < 2 {
		return nil, nil, nil
	}
	prev = &studies[(at-1+n)%n]
	next = &studies[(at+1)%n]
	return prev, next, nil
}
