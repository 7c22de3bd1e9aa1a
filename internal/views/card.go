package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"kz.dev/internal/models"
)

// CardTechLimit is how many tech tags a project card shows before "+N".
const CardTechLimit = 5

// VisibleTech splits tech into the tags shown on a card and the hidden count.
func VisibleTech(tech []string) ([]string, int) {
	if len(tech) <= CardTechLimit {
		return tech, 0
	}
	return tech[:CardTechLimit], len(tech) - CardTechLimit
}

// StatusBadge renders the lifecycle badge of a project.
func StatusBadge(env Env, status models.Status, keyPrefix string) g.Node {
	label, class := env.T(keyPrefix+".status_completed"), "bg-emerald-500/10 text-emerald-400 border-emerald-500/30"
	if status == models.StatusInProgress {
		label, class = env.T(keyPrefix+".status_in_progress"), "bg-amber-500/10 text-amber-400 border-amber-500/30"
	}
	return h.Span(
		h.Class("inline-flex items-center gap-1.5 px-2.5 py-1 rounded-full border text-[11px] font-semibold uppercase tracking-wider "+class),
		h.Data("status", string(status)),
		h.Span(h.Class("w-1.5 h-1.5 rounded-full bg-current")),
		g.Text(label),
	)
}

// ProjectCard renders a project on the home grid.
func ProjectCard(env Env, p models.Project) g.Node {
	tags, more := VisibleTech(p.Tech)
	caseStudy := p.CaseStudyURL()

	return h.Article(
		h.ID("project-"+p.ID),
		h.Class("group flex flex-col rounded-2xl border border-slate-800 bg-slate-900/40 overflow-hidden hover:border-emerald-500/40 transition-colors"),
		g.If(p.Thumbnail != "",
			h.Div(
				h.Class("aspect-video overflow-hidden bg-slate-900"),
				h.Img(
					h.Src(p.Thumbnail),
					h.Alt(p.Name),
					h.Loading("lazy"),
					h.Class("w-full h-full object-cover group-hover:scale-105 transition-transform duration-500"),
				),
			),
		),
		h.Div(
			h.Class("flex flex-col flex-1 gap-4 p-6"),
			h.Div(
				h.Class("flex items-start justify-between gap-3"),
				h.Div(
					h.H3(h.Class("text-xl font-bold text-slate-50"), g.Text(p.Name)),
					g.If(p.ShortName != "", h.P(h.Class("text-sm text-slate-400"), g.Text(p.ShortName))),
				),
				StatusBadge(env, p.Status, "card"),
			),
			g.If(p.Problem != "", h.P(h.Class("text-sm text-slate-300 leading-relaxed"), g.Text(p.Problem))),
			narrative(env.T("card.approach"), p.Approach),
			narrative(env.T("card.outcome"), p.Outcome),
			g.If(len(tags) > 0,
				h.Ul(
					h.Class("flex flex-wrap gap-2"),
					h.Aria("label", env.T("projects.stack")),
					g.Map(tags, func(tag string) g.Node {
						return h.Li(h.Class("px-2 py-0.5 rounded bg-slate-800 text-xs text-slate-300"), g.Text(tag))
					}),
					g.If(more > 0,
						h.Li(h.Class("px-2 py-0.5 rounded bg-slate-800/50 text-xs text-slate-500"), g.Text(env.T("card.more", more))),
					),
				),
			),
			h.Div(
				h.Class("mt-auto pt-2 flex flex-wrap items-center gap-3"),
				g.If(caseStudy != "",
					h.A(
						h.Href(caseStudy),
						h.Class(btnSecondary),
						g.Text(env.T("buttons.case_study")),
						iconArrow("w-4 h-4"),
					),
				),
				ProjectLinks(env, p.Links),
			),
		),
	)
}

func narrative(label, text string) g.Node {
	if text == "" {
		return nil
	}
	return h.P(
		h.Class("text-sm text-slate-400 leading-relaxed"),
		h.Span(h.Class("mr-2 text-xs font-semibold uppercase tracking-wider text-emerald-400"), g.Text(label)),
		g.Text(text),
	)
}
