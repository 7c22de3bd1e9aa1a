// Package content loads the static site records: the owner profile and the
// project case studies. Records are read once and shared read-only.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"kz.dev/internal/models"
)

//go:embed data/site.yaml data/projects/*.yaml
var embedded embed.FS

const (
	siteFile     = "site.yaml"
	projectsGlob = "projects/*.yaml"
)

// ErrNotFound is returned for an unknown project id.
var ErrNotFound = errors.New("project not found")

// Store holds the loaded records.
type Store struct {
	site     models.Site
	projects []models.Project
	index    map[string]int
}

// Open loads records from dataPath, or the embedded records when dataPath is empty.
func Open(dataPath string) (*Store, error) {
	if dataPath == "" {
		return LoadEmbedded()
	}
	info, err := os.Stat(dataPath)
	if err != nil {
		return nil, fmt.Errorf("open content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open content dir: %s is not a directory", dataPath)
	}
	return Load(os.DirFS(dataPath))
}

// LoadEmbedded loads the records compiled into the binary.
func LoadEmbedded() (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return Load(sub)
}

// Load reads site.yaml and projects/*.yaml from fsys. Every record is
// validated; ids must be unique. Projects are ordered by their Order field.
func Load(fsys fs.FS) (*Store, error) {
	s := &Store{index: make(map[string]int)}

	if err := decodeFile(fsys, siteFile, &s.site); err != nil {
		return nil, err
	}

	paths, err := fs.Glob(fsys, projectsGlob)
	if err != nil {
		return nil, fmt.Errorf("glob projects: %w", err)
	}
	sort.Strings(paths)

	for _, p := range paths {
		var project models.Project
		if err := decodeFile(fsys, p, &project); err != nil {
			return nil, err
		}
		if err := project.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if _, dup := s.index[project.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate project id %q", p, project.ID)
		}
		s.index[project.ID] = len(s.projects)
		s.projects = append(s.projects, project)
	}

	sort.SliceStable(s.projects, func(i, j int) bool {
		return s.projects[i].Order < s.projects[j].Order
	})
	for i, p := range s.projects {
		s.index[p.ID] = i
	}
	return s, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path.Base(name), err)
	}
	return nil
}

// Site returns the owner profile.
func (s *Store) Site() models.Site {
	return s.site
}

// Projects returns every project in display order.
func (s *Store) Projects() []models.Project {
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Project returns the project with id.
func (s *Store) Project(id string) (models.Project, error) {
	i, ok := s.index[id]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.projects[i], nil
}

// Position returns the display position of id.
func (s *Store) Position(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// ExternalLinks lists every outbound URL in the records, keyed by where it appears.
func (s *Store) ExternalLinks() map[string]string {
	links := make(map[string]string)
	for _, c := range s.site.Contacts {
		links["site contact "+c.Label] = c.URL
	}
	for _, p := range s.projects {
		links[p.ID+" demo"] = p.Links.Demo
		links[p.ID+" github"] = p.Links.GitHub
		links[p.ID+" docs"] = p.Links.Docs
		links[p.ID+" sample"] = p.Links.Sample
	}
	return links
}
