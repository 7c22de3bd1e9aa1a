package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"kz.dev/internal/models"
)

// DetailProps are the inputs of a project case-study page.
type DetailProps struct {
	Project  models.Project
	Sections []g.Node
	TOC      []TOCItem
	Prev     *models.Project
	Next     *models.Project
	// Lightbox is the open modal, or nil.
	Lightbox g.Node
}

// DetailPage renders the main content of a case-study page.
func DetailPage(env Env, props DetailProps) g.Node {
	p := props.Project
	return g.Group{
		h.Div(
			h.Class("pt-28 md:pt-32"),
			Container("",
				Breadcrumb(env, p),
				DetailHero(env, p),
				h.Div(
					h.Class("mt-16 grid gap-12 lg:grid-cols-[minmax(0,1fr)_240px]"),
					h.Article(
						h.Class("min-w-0 space-y-24"),
						g.Group(props.Sections),
						FinalCTA(env, p),
					),
					TOC(env, props.TOC),
				),
				ProjectNav(env, props.Prev, props.Next),
			),
		),
		h.Div(h.ID(LightboxTarget), props.Lightbox),
	}
}

// Breadcrumb renders the trail above the hero and a back link on small screens.
func Breadcrumb(env Env, p models.Project) g.Node {
	return h.Div(
		h.Class("mb-8"),
		h.Nav(
			h.Class("hidden sm:block"),
			h.Aria("label", "breadcrumb"),
			h.Ol(
				h.Class("flex items-center gap-2 text-xs text-slate-500"),
				h.Li(h.A(h.Href("/"), h.Class("hover:text-emerald-400"), g.Text(env.T("breadcrumb.home")))),
				h.Li(g.Text("/")),
				h.Li(h.A(h.Href("/#projects"), h.Class("hover:text-emerald-400"), g.Text(env.T("breadcrumb.projects")))),
				h.Li(g.Text("/")),
				h.Li(h.Class("text-slate-300"), h.Aria("current", "page"), g.Text(p.Name)),
			),
		),
		h.A(
			h.Href("/#projects"),
			h.Class("sm:hidden inline-flex items-center gap-1 text-sm text-slate-400 hover:text-emerald-400"),
			iconPrev("w-4 h-4"),
			g.Text(env.T("breadcrumb.back_to_projects")),
		),
	)
}

// DetailHero renders the page title, cover image, links and the info card.
func DetailHero(env Env, p models.Project) g.Node {
	d := p.Detail
	return h.Header(
		h.Class("grid gap-10 lg:grid-cols-[minmax(0,1fr)_340px]"),
		h.Div(
			h.Class("space-y-6"),
			StatusBadge(env, p.Status, "hero"),
			h.H1(h.Class("text-4xl md:text-5xl font-bold tracking-tight"), g.Text(p.Name)),
			g.If(d.Subtitle != "", h.P(h.Class("text-lg text-slate-400"), g.Text(d.Subtitle))),
			g.Iff(d.Cover != nil, func() g.Node {
				return h.Img(
					h.Src(d.Cover.Src),
					h.Alt(d.Cover.Alt),
					h.Class("w-full rounded-2xl border border-slate-800 object-cover"),
				)
			}),
			ProjectLinks(env, p.Links),
		),
		infoCard(env, d),
	)
}

func infoCard(env Env, d *models.ProjectDetail) g.Node {
	return h.Aside(
		h.Class("self-start rounded-2xl border border-slate-800 bg-slate-900/40 p-6 space-y-5 text-sm"),
		h.Dl(
			h.Class("space-y-4"),
			infoRow(env.T("hero.type"), d.ProjectType),
			infoRow(env.T("hero.role"), d.Role),
			infoRow(env.T("hero.period"), d.Period),
			g.If(len(d.Contribution) > 0,
				h.Div(
					h.Dt(h.Class(infoLabel), g.Text(env.T("hero.contribution"))),
					h.Dd(h.Ul(
						h.Class("mt-1 list-disc list-inside text-slate-300 space-y-0.5"),
						g.Map(d.Contribution, func(s string) g.Node { return h.Li(g.Text(s)) }),
					)),
				),
			),
			g.If(len(d.Tools) > 0,
				h.Div(
					h.Dt(h.Class(infoLabel), g.Text(env.T("hero.stack"))),
					h.Dd(h.Ul(
						h.Class("mt-2 flex flex-wrap gap-1.5"),
						g.Map(d.Tools, func(s string) g.Node {
							return h.Li(h.Class("px-2 py-0.5 rounded bg-slate-800 text-xs text-slate-300"), g.Text(s))
						}),
					)),
				),
			),
		),
		g.If(len(d.Metrics) > 0,
			h.Div(
				h.Class("pt-5 border-t border-slate-800"),
				h.P(h.Class(infoLabel+" mb-3"), g.Text(env.T("hero.summary_metrics"))),
				h.Dl(
					h.Class("grid grid-cols-2 gap-3"),
					g.Map(d.Metrics, func(m models.Metric) g.Node {
						return h.Div(
							h.Class("rounded-lg bg-slate-800/50 p-3"),
							h.Dt(h.Class("text-[11px] uppercase tracking-wider text-slate-500"), g.Text(m.Label)),
							h.Dd(h.Class("text-lg font-bold text-emerald-400"), g.Text(m.Value)),
						)
					}),
				),
			),
		),
	)
}

const infoLabel = "text-xs font-mono uppercase tracking-wider text-emerald-400"

func infoRow(label, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Div(
		h.Dt(h.Class(infoLabel), g.Text(label)),
		h.Dd(h.Class("mt-1 text-slate-300"), g.Text(value)),
	)
}

// Section wraps a body section with its anchor id and heading.
func Section(id, title string, children ...g.Node) g.Node {
	return h.Section(
		h.ID(id),
		h.Class("scroll-mt-28"),
		h.H2(h.Class("mb-8 text-2xl md:text-3xl font-bold tracking-tight"), g.Text(title)),
		g.Group(children),
	)
}

// SummaryBody renders the problem, solution and impact cards.
func SummaryBody(env Env, s models.Summary) g.Node {
	return h.Div(
		h.Class("grid gap-4 md:grid-cols-3"),
		summaryCard(env.T("summary.problem"), s.Problem, "border-rose-500/30"),
		summaryCard(env.T("summary.solution"), s.Solution, "border-sky-500/30"),
		summaryCard(env.T("summary.impact"), s.Impact, "border-emerald-500/30"),
	)
}

func summaryCard(label, text, border string) g.Node {
	if text == "" {
		return nil
	}
	return h.Div(
		h.Class("rounded-2xl border bg-slate-900/40 p-6 "+border),
		h.H3(h.Class("mb-3 text-xs font-mono uppercase tracking-wider text-slate-400"), g.Text(label)),
		h.P(h.Class("text-slate-200 leading-relaxed"), g.Text(text)),
	)
}

// HowItWorksBody renders the numbered pipeline steps.
func HowItWorksBody(hw models.HowItWorks) g.Node {
	return h.Ol(
		h.Class("grid gap-4 md:grid-cols-2"),
		g.Map(hw.Steps, func(step models.Step) g.Node {
			return h.Li(
				h.Class("flex gap-4 rounded-2xl border border-slate-800 bg-slate-900/40 p-5"),
				h.Span(
					h.Class("flex-none flex items-center justify-center w-10 h-10 rounded-full bg-emerald-500/10 text-lg"),
					g.If(step.Icon != "", g.Text(step.Icon)),
					g.If(step.Icon == "", iconStep("w-5 h-5 text-emerald-400")),
				),
				h.Div(
					h.H3(h.Class("font-semibold text-slate-100"), g.Text(step.Title)),
					h.P(h.Class("mt-1 text-sm text-slate-400 leading-relaxed"), g.Text(step.Description)),
				),
			)
		}),
	)
}

// RoadmapBody renders the now/next/future columns. Empty columns are skipped.
func RoadmapBody(env Env, r models.Roadmap) g.Node {
	column := func(status models.RoadmapStatus, accent string) g.Node {
		items := r.ItemsWithStatus(status)
		if len(items) == 0 {
			return nil
		}
		key := "roadmap." + string(status)
		return h.Div(
			h.Class("rounded-2xl border border-slate-800 bg-slate-900/40 p-6"),
			h.Data("roadmap", string(status)),
			h.H3(h.Class("text-sm font-bold uppercase tracking-wider "+accent), g.Text(env.T(key))),
			h.P(h.Class("mb-4 text-xs text-slate-500"), g.Text(env.T(key+"_caption"))),
			h.Ul(
				h.Class("space-y-2 text-sm text-slate-300"),
				g.Map(items, func(item models.RoadmapItem) g.Node {
					return h.Li(h.Class("flex gap-2"), h.Span(h.Class(accent), g.Text("•")), g.Text(item.Label))
				}),
			),
		)
	}
	return h.Div(
		h.Class("grid gap-4 md:grid-cols-3"),
		column(models.RoadmapNow, "text-emerald-400"),
		column(models.RoadmapNext, "text-sky-400"),
		column(models.RoadmapFuture, "text-slate-400"),
	)
}

// ContentList renders titled paragraphs: challenges, tech highlights, next steps.
func ContentList(items []models.ContentItem) g.Node {
	return h.Ul(
		h.Class("space-y-4"),
		g.Map(items, func(item models.ContentItem) g.Node {
			return h.Li(
				h.Class("rounded-2xl border border-slate-800 bg-slate-900/40 p-6"),
				g.If(item.Title != "", h.H3(h.Class("mb-2 font-semibold text-slate-100"), g.Text(item.Title))),
				h.P(h.Class("text-slate-400 leading-relaxed"), g.Text(item.Description)),
			)
		}),
	)
}

// FeatureList renders the key features with optional bullets and image.
func FeatureList(features []models.Feature) g.Node {
	return h.Div(
		h.Class("space-y-10"),
		g.Map(features, func(f models.Feature) g.Node {
			return h.Div(
				c.Classes{
					"grid gap-6 items-center": true,
					"md:grid-cols-2":          f.Image != nil,
				},
				h.Div(
					h.H3(h.Class("text-xl font-semibold text-slate-100"), g.Text(f.Title)),
					h.P(h.Class("mt-3 text-slate-400 leading-relaxed"), g.Text(f.Description)),
					g.If(len(f.Bullets) > 0,
						h.Ul(
							h.Class("mt-4 space-y-2 text-sm text-slate-300"),
							g.Map(f.Bullets, func(b string) g.Node {
								return h.Li(h.Class("flex gap-2"), h.Span(h.Class("text-emerald-400"), g.Text("✓")), g.Text(b))
							}),
						),
					),
				),
				g.Iff(f.Image != nil, func() g.Node {
					return h.Img(
						h.Src(f.Image.Src),
						h.Alt(f.Image.Alt),
						h.Loading("lazy"),
						h.Class("w-full rounded-xl border border-slate-800"),
					)
				}),
			)
		}),
	)
}

// Timeline renders the production process as a vertical step list.
func Timeline(steps []models.TimelineStep) g.Node {
	return h.Ol(
		h.Class("relative border-l border-slate-800 ml-3 space-y-8"),
		g.Map(steps, func(s models.TimelineStep) g.Node {
			return h.Li(
				h.Class("ml-6"),
				h.Span(h.Class("absolute -left-1.5 mt-1.5 w-3 h-3 rounded-full bg-emerald-400")),
				h.H3(h.Class("font-semibold text-slate-100"), g.Text(s.Step)),
				h.P(h.Class("mt-1 text-sm text-slate-400 leading-relaxed"), g.Text(s.Description)),
			)
		}),
	)
}

// OutcomeBody renders results, learnings and score rings.
func OutcomeBody(env Env, o models.Outcome) g.Node {
	return h.Div(
		h.Class("space-y-8"),
		g.If(len(o.Scores) > 0,
			h.Div(
				h.Class("flex flex-wrap gap-6"),
				g.Map(o.Scores, ScoreRing),
			),
		),
		g.If(o.Results != "",
			h.Div(
				h.H3(h.Class(infoLabel+" mb-2"), g.Text(env.T("outcome.results"))),
				h.P(h.Class("text-slate-200 leading-relaxed"), g.Text(o.Results)),
			),
		),
		g.If(len(o.Learnings) > 0,
			h.Div(
				h.H3(h.Class(infoLabel+" mb-2"), g.Text(env.T("outcome.learnings"))),
				h.Ul(
					h.Class("list-disc list-inside space-y-1 text-slate-300"),
					g.Map(o.Learnings, func(l string) g.Node { return h.Li(g.Text(l)) }),
				),
			),
		),
	)
}

var gradeColor = map[string]string{
	"good": "text-emerald-400",
	"fair": "text-amber-400",
	"poor": "text-rose-400",
}

// ringCircumference is 2πr for r=36, rounded.
const ringCircumference = 226

// ScoreRing renders a 0..100 score as a circular gauge.
func ScoreRing(s models.Score) g.Node {
	offset := ringCircumference - ringCircumference*s.Value/100
	return h.Figure(
		h.Class("flex flex-col items-center gap-2 "+gradeColor[s.Grade()]),
		h.Data("grade", s.Grade()),
		g.Rawf(`<svg class="w-20 h-20 -rotate-90" viewBox="0 0 80 80" aria-hidden="true"><circle cx="40" cy="40" r="36" fill="none" stroke-width="6" class="stroke-slate-800"/><circle cx="40" cy="40" r="36" fill="none" stroke-width="6" stroke="currentColor" stroke-linecap="round" stroke-dasharray="%d" stroke-dashoffset="%d"/></svg>`,
			ringCircumference, offset),
		h.FigCaption(
			h.Class("text-center"),
			h.Span(h.Class("block text-2xl font-bold"), g.Text(strconv.Itoa(s.Value))),
			h.Span(h.Class("block text-xs uppercase tracking-wider text-slate-400"), g.Text(s.Label)),
		),
	)
}

// FinalCTA closes the case study with the project links and a way back.
func FinalCTA(env Env, p models.Project) g.Node {
	return h.Div(
		h.Class("rounded-2xl border border-emerald-500/20 bg-emerald-500/5 p-8 flex flex-col md:flex-row md:items-center md:justify-between gap-6"),
		ProjectLinks(env, p.Links),
		h.A(
			h.Href("/#contact"),
			h.Class(btnSecondary),
			g.Text(env.T("buttons.contact")),
		),
	)
}

// ProjectNav links the neighbouring case studies.
func ProjectNav(env Env, prev, next *models.Project) g.Node {
	link := func(p *models.Project, label, rel string) g.Node {
		if p == nil {
			return h.Div()
		}
		return h.A(
			h.Href(p.CaseStudyURL()),
			h.Rel(rel),
			classIf("group flex flex-col gap-1 rounded-2xl border border-slate-800 p-5 hover:border-emerald-500/40 transition-colors",
				"text-right items-end", rel == "next"),
			h.Span(h.Class("text-[11px] font-mono tracking-widest text-slate-500"), g.Text(label)),
			h.Span(h.Class("font-semibold text-slate-100 group-hover:text-emerald-400"), g.Text(p.Name)),
		)
	}
	return h.Nav(
		h.Class("mt-24 pt-10 border-t border-slate-800"),
		h.Aria("label", env.T("breadcrumb.projects")),
		h.Div(
			h.Class("grid gap-4 sm:grid-cols-2"),
			link(prev, env.T("projectnav.previous"), "prev"),
			link(next, env.T("projectnav.next"), "next"),
		),
		h.Div(
			h.Class("mt-8 text-center"),
			h.A(h.Href("/#projects"), h.Class("text-sm text-slate-400 hover:text-emerald-400"), g.Text(env.T("breadcrumb.back_to_projects"))),
		),
	)
}

// NotFound renders the inline not-found message inside the normal layout.
func NotFound(env Env, messageKey string) g.Node {
	return h.Section(
		h.Class("min-h-[60vh] flex items-center pt-28"),
		Container("text-center",
			h.Div(h.Class("flex justify-center mb-6 text-amber-400"), iconWarning("w-12 h-12")),
			h.H1(h.Class("text-3xl font-bold"), g.Text(env.T("notfound.title"))),
			h.P(h.Class("mt-4 text-slate-400"), g.Text(env.T(messageKey))),
			h.A(h.Href("/"), h.Class(btnPrimary+" mt-8"), g.Text(env.T("notfound.back"))),
		),
	)
}
