package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingSummary is returned when a case study has no summary
	ErrMissingSummary = errors.New("summary is required")
	// ErrMissingOutcome is returned when a case study has no outcome
	ErrMissingOutcome = errors.New("outcome is required")
)

// Image is a file path plus its alternative text
type Image struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// Metric is a short label/value pair shown in the hero info card
type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Summary is the problem/solution/impact triple every case study opens with
type Summary struct {
	Problem  string `json:"problem" yaml:"problem"`
	Solution string `json:"solution" yaml:"solution"`
	Impact   string `json:"impact" yaml:"impact"`
}

// Empty reports whether the summary carries no text
func (s Summary) Empty() bool {
	return strings.TrimSpace(s.Problem+s.Solution+s.Impact) == ""
}

// Step is one stage of a how-it-works walkthrough
type Step struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
}

// HowItWorks describes a pipeline in a few steps
type HowItWorks struct {
	Title string `json:"title" yaml:"title"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// RoadmapStatus places a roadmap item on the timeline
type RoadmapStatus string

const (
	RoadmapNow    RoadmapStatus = "now"
	RoadmapNext   RoadmapStatus = "next"
	RoadmapFuture RoadmapStatus = "future"
)

// RoadmapItem is a single roadmap entry
type RoadmapItem struct {
	Label  string        `json:"label" yaml:"label"`
	Status RoadmapStatus `json:"status" yaml:"status"`
}

// Roadmap groups planned work by status
type Roadmap struct {
	Title string        `json:"title" yaml:"title"`
	Items []RoadmapItem `json:"items" yaml:"items"`
}

// ItemsWithStatus returns the items carrying status, in order
func (r Roadmap) ItemsWithStatus(status RoadmapStatus) []RoadmapItem {
	var out []RoadmapItem
	for _, item := range r.Items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

// ContentItem is a titled or untitled paragraph in a list section
type ContentItem struct {
	Title       string `json:"title,omitempty" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Feature is a highlighted capability with bullets and an optional image
type Feature struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Bullets     []string `json:"bullets,omitempty" yaml:"bullets"`
	Image       *Image   `json:"image,omitempty" yaml:"image"`
}

// TimelineStep is one step of the production process
type TimelineStep struct {
	Step        string `json:"step" yaml:"step"`
	Description string `json:"description" yaml:"description"`
}

// Score is a 0..100 score shown as a ring
type Score struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Grade buckets a score value for colouring
func (s Score) Grade() string {
	switch {
	case s.Value >= 90:
		return "good"
	case s.Value >= 50:
		return "fair"
	default:
		return "poor"
	}
}

// Outcome closes every case study
type Outcome struct {
	Results   string   `json:"results" yaml:"results"`
	Learnings []string `json:"learnings" yaml:"learnings"`
	Scores    []Score  `json:"scores,omitempty" yaml:"scores"`
}

// Empty reports whether the outcome carries no text
func (o Outcome) Empty() bool {
	return strings.TrimSpace(o.Results) == "" && len(o.Learnings) == 0
}

// ProjectDetail is the case-study content of a project.
// Summary and Outcome are required, every other section is optional.
type ProjectDetail struct {
	Title          string         `json:"title" yaml:"title"`
	Description    string         `json:"description" yaml:"description"`
	Subtitle       string         `json:"subtitle" yaml:"subtitle"`
	Cover          *Image         `json:"cover,omitempty" yaml:"cover"`
	ProjectType    string         `json:"project_type" yaml:"project_type"`
	Role           string         `json:"role" yaml:"role"`
	Period         string         `json:"period" yaml:"period"`
	Tools          []string       `json:"tools" yaml:"tools"`
	Metrics        []Metric       `json:"metrics,omitempty" yaml:"metrics"`
	Contribution   []string       `json:"contribution,omitempty" yaml:"contribution"`
	Summary        Summary        `json:"summary" yaml:"summary"`
	HowItWorks     *HowItWorks    `json:"how_it_works,omitempty" yaml:"how_it_works"`
	Roadmap        *Roadmap       `json:"roadmap,omitempty" yaml:"roadmap"`
	Challenges     []ContentItem  `json:"challenges,omitempty" yaml:"challenges"`
	KeyScreens     []KeyScreen    `json:"key_screens,omitempty" yaml:"key_screens"`
	Gallery        []GalleryItem  `json:"gallery,omitempty" yaml:"gallery"`
	Features       []Feature      `json:"features,omitempty" yaml:"features"`
	TechHighlights []ContentItem  `json:"tech_highlights,omitempty" yaml:"tech_highlights"`
	Process        []TimelineStep `json:"process,omitempty" yaml:"process"`
	Outcome        Outcome        `json:"outcome" yaml:"outcome"`
	NextSteps      []ContentItem  `json:"next_steps,omitempty" yaml:"next_steps"`
}

// Validate enforces the required sections and gallery id uniqueness
func (d *ProjectDetail) Validate() error {
	if d.Summary.Empty() {
		return ErrMissingSummary
	}
	if d.Outcome.Empty() {
		return ErrMissingOutcome
	}
	for _, s := range d.Outcome.Scores {
		if s.Value < 0 || s.Value > 100 {
			return fmt.Errorf("score %q out of range: %d", s.Label, s.Value)
		}
	}
	seen := make(map[string]bool)
	for _, item := range d.GalleryItems() {
		if item.ID == "" {
			return fmt.Errorf("gallery item %q: id is required", item.Src)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate gallery item id %q", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

// GalleryItems merges key screens ahead of gallery items into one ordered list
func (d *ProjectDetail) GalleryItems() []GalleryItem {
	if d == nil {
		return nil
	}
	items := make([]GalleryItem, 0, len(d.KeyScreens)+len(d.Gallery))
	for _, ks := range d.KeyScreens {
		items = append(items, ks.GalleryItem())
	}
	return append(items, d.Gallery...)
}
