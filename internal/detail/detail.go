// Package detail assembles project case-study pages. A fixed section table
// decides which blocks appear; the table of contents is derived from the
// same filtered list so the two never disagree.
package detail

import (
	"errors"

	g "maragu.dev/gomponents"

	"kz.dev/internal/models"
	"kz.dev/internal/views"
)

// ErrNoCaseStudy is returned when a project has no detail record.
var ErrNoCaseStudy = errors.New("project has no case study")

// Validate checks that d exists and carries its required sections.
func Validate(d *models.ProjectDetail) error {
	if d == nil {
		return ErrNoCaseStudy
	}
	return d.Validate()
}

// Context carries what section renderers need beyond the detail record.
type Context struct {
	Env       views.Env
	ProjectID string
	// Category filters the gallery section.
	Category string
}

// Section is one present block of a case study.
type Section struct {
	ID       string
	LabelKey string
	// Title overrides the catalog label when set.
	Title  string
	render func(Context, *models.ProjectDetail) g.Node
}

// Label returns the heading of the section in the active language.
func (s Section) Label(env views.Env) string {
	if s.Title != "" {
		return s.Title
	}
	return env.T(s.LabelKey)
}

type entry struct {
	id       string
	labelKey string
	title    func(*models.ProjectDetail) string
	present  func(*models.ProjectDetail) bool
	render   func(Context, *models.ProjectDetail) g.Node
}

// Section ids, in page order.
const (
	IDSummary    = "summary"
	IDHowItWorks = "how-it-works"
	IDRoadmap    = "roadmap"
	IDChallenges = "challenges"
	IDGallery    = "gallery"
	IDFeatures   = "features"
	IDTech       = "tech"
	IDProcess    = "process"
	IDOutcome    = "outcome"
	IDNextSteps  = "next-steps"
)

func always(*models.ProjectDetail) bool { return true }

var table = []entry{
	{
		id:       IDSummary,
		labelKey: "toc.summary",
		present:  always,
		render: func(c Context, d *models.ProjectDetail) g.Node {
			return views.SummaryBody(c.Env, d.Summary)
		},
	},
	{
		id:       IDHowItWorks,
		labelKey: "toc.how_it_works",
		title: func(d *models.ProjectDetail) string {
			return d.HowItWorks.Title
		},
		present: func(d *models.ProjectDetail) bool {
			return d.HowItWorks != nil && len(d.HowItWorks.Steps) > 0
		},
		render: func(_ Context, d *models.ProjectDetail) g.Node {
			return views.HowItWorksBody(*d.HowItWorks)
		},
	},
	{
		id:       IDRoadmap,
		labelKey: "toc.roadmap",
		present: func(d *models.ProjectDetail) bool {
			return d.Roadmap != nil && len(d.Roadmap.Items) > 0
		},
		render: func(c Context, d *models.ProjectDetail) g.Node {
			return views.RoadmapBody(c.Env, *d.Roadmap)
		},
	},
	{
		id:       IDChallenges,
		labelKey: "toc.challenges",
		present:  func(d *models.ProjectDetail) bool { return len(d.Challenges) > 0 },
		render: func(_ Context, d *models.ProjectDetail) g.Node {
			return views.ContentList(d.Challenges)
		},
	},
	{
		id:       IDGallery,
		labelKey: "toc.gallery",
		present:  func(d *models.ProjectDetail) bool { return len(d.GalleryItems()) > 0 },
		render: func(c Context, d *models.ProjectDetail) g.Node {
			return views.GalleryGrid(c.Env, c.ProjectID, d.GalleryItems(), c.Category)
		},
	},
	{
		id:       IDFeatures,
		labelKey: "toc.features",
		present:  func(d *models.ProjectDetail) bool { return len(d.Features) > 0 },
		render: func(_ Context, d *models.ProjectDetail) g.Node {
			return views.FeatureList(d.Features)
		},
	},
	{
		id:       IDTech,
		labelKey: "toc.tech",
		present:  func(d *models.ProjectDetail) bool { return len(d.TechHighlights) > 0 },
		render: func(_ Context, d *models.ProjectDetail) g.Node {
			return views.ContentList(d.TechHighlights)
		},
	},
	{
		id:       IDProcess,
		labelKey: "toc.process",
		present:  func(d *models.ProjectDetail) bool { return len(d.Process) > 0 },
		render: func(_ Context, d *models.ProjectDetail) g.Node {
			return views.Timeline(d.Process)
		},
	},
	{
		id:       IDOutcome,
		labelKey: "toc.outcome",
		present:  always,
		render: func(c Context, d *models.ProjectDetail) g.Node {
			return views.OutcomeBody(c.Env, d.Outcome)
		},
	},
	{
		id:       IDNextSteps,
		labelKey: "toc.next_steps",
		present:  func(d *models.ProjectDetail) bool { return len(d.NextSteps) > 0 },
		render: func(_ Context, d *models.ProjectDetail) g.Node {
			return views.ContentList(d.NextSteps)
		},
	},
}

// Compose returns the sections present in d, in page order. A nil detail
// has no sections.
func Compose(d *models.ProjectDetail) []Section {
	if d == nil {
		return nil
	}
	var out []Section
	for _, s := range table {
		if !s.present(d) {
			continue
		}
		section := Section{ID: s.id, LabelKey: s.labelKey, render: s.render}
		if s.title != nil {
			section.Title = s.title(d)
		}
		out = append(out, section)
	}
	return out
}

// IDs lists the ids of sections.
func IDs(sections []Section) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

// TOC derives the table of contents from composed sections.
func TOC(env views.Env, sections []Section) []views.TOCItem {
	items := make([]views.TOCItem, len(sections))
	for i, s := range sections {
		items[i] = views.TOCItem{ID: s.ID, Label: s.Label(env)}
	}
	return items
}

// Render renders the composed sections, each wrapped with its anchor and heading.
func Render(c Context, d *models.ProjectDetail, sections []Section) []g.Node {
	nodes := make([]g.Node, len(sections))
	for i, s := range sections {
		nodes[i] = views.Section(s.ID, s.Label(c.Env), s.render(c, d))
	}
	return nodes
}

// Page assembles the props of a case-study page for p.
func Page(c Context, p models.Project, prev, next *models.Project, lightbox g.Node) views.DetailProps {
	composed := Compose(p.Detail)
	return views.DetailProps{
		Project:  p,
		Sections: Render(c, p.Detail, composed),
		TOC:      TOC(c.Env, composed),
		Prev:     prev,
		Next:     next,
		Lightbox: lightbox,
	}
}
