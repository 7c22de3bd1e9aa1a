package models

import "fmt"

// Status is the lifecycle state of a project
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusCompleted || s == StatusInProgress
}

// Links holds the optional outbound links of a project
type Links struct {
	Demo   string `json:"demo,omitempty" yaml:"demo"`
	GitHub string `json:"github,omitempty" yaml:"github"`
	Docs   string `json:"docs,omitempty" yaml:"docs"`
	Sample string `json:"sample,omitempty" yaml:"sample"`
}

// Empty reports whether no link is set
func (l Links) Empty() bool {
	return l.Demo == "" && l.GitHub == "" && l.Docs == "" && l.Sample == ""
}

// Project represents a portfolio project
type Project struct {
	ID        string         `json:"id" yaml:"id"`
	Order     int            `json:"order" yaml:"order"`
	Name      string         `json:"name" yaml:"name"`
	ShortName string         `json:"short_name" yaml:"short_name"`
	Status    Status         `json:"status" yaml:"status"`
	Problem   string         `json:"problem" yaml:"problem"`
	Approach  string         `json:"approach" yaml:"approach"`
	Outcome   string         `json:"outcome" yaml:"outcome"`
	Tech      []string       `json:"tech" yaml:"tech"`
	Thumbnail string         `json:"thumbnail" yaml:"thumbnail"`
	Links     Links          `json:"links,omitempty" yaml:"links"`
	Detail    *ProjectDetail `json:"-" yaml:"detail"`
}

// CaseStudyURL returns the detail route, or "" when the project has no case study
func (p *Project) CaseStudyURL() string {
	if p.Detail == nil {
		return ""
	}
	return ProjectURL(p.ID)
}

// ProjectURL returns the detail route for a project slug
func ProjectURL(id string) string {
	return "/projects/" + id
}

// Validate checks the fields every project record must carry
func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("project %s: name is required", p.ID)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("project %s: invalid status %q", p.ID, p.Status)
	}
	if p.Detail != nil {
		if err := p.Detail.Validate(); err != nil {
			return fmt.Errorf("project %s: %w", p.ID, err)
		}
	}
	return nil
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
