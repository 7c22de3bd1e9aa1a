package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"kz.dev/internal/models"
)

// Home renders the home page sections: hero, projects, about, skills and contact.
func Home(env Env, projects []models.Project) g.Node {
	return g.Group{
		hero(env),
		projectsSection(env, projects),
		aboutSection(env),
		skillsSection(env),
		contactSection(env),
	}
}

func hero(env Env) g.Node {
	return h.Section(
		h.ID("home"),
		h.Class("relative min-h-screen flex items-center pt-24"),
		Container("",
			h.P(h.Class("mb-6 text-xs md:text-sm font-mono uppercase tracking-[0.3em] text-emerald-400"), g.Text(env.T("home.eyebrow"))),
			h.H1(
				h.Class("text-4xl sm:text-6xl lg:text-7xl font-bold tracking-tight leading-tight"),
				g.Text(env.T("home.title_lead")+" "),
				h.Span(h.Class("text-emerald-400"), g.Text(env.T("home.title_accent"))),
				h.Br(),
				h.Span(h.Class("text-slate-400"), g.Text(env.T("home.title_tail"))),
			),
			h.P(h.Class("mt-6 text-base md:text-lg text-slate-300"), g.Text(env.T("home.subline"))),
			h.Div(
				h.Class("mt-8 max-w-2xl space-y-2 text-sm md:text-base text-slate-400 leading-relaxed"),
				h.P(h.Class("text-slate-200 font-medium"), g.Text(env.T("home.pitch_lead"))),
				h.P(g.Text(env.T("home.pitch"))),
			),
			h.Div(
				h.Class("mt-10 flex flex-wrap gap-4"),
				h.A(h.Href("/#projects"), scrollTo(env.Path, "/#projects"), h.Class(btnPrimary), g.Text(env.T("buttons.view_projects")), iconArrow("w-4 h-4")),
				h.A(h.Href("/#contact"), scrollTo(env.Path, "/#contact"), h.Class(btnSecondary), g.Text(env.T("buttons.contact_me"))),
			),
			h.A(
				h.Href("/#projects"),
				scrollTo(env.Path, "/#projects"),
				h.Class("absolute bottom-10 left-1/2 -translate-x-1/2 hidden md:flex flex-col items-center gap-2 text-xs uppercase tracking-widest text-slate-500 hover:text-emerald-400"),
				g.Text(env.T("home.scroll")),
				iconChevron("w-4 h-4 animate-bounce"),
			),
		),
	)
}

func sectionHeading(eyebrow, title string) g.Node {
	return h.Div(
		h.Class("mb-12"),
		h.P(h.Class("mb-3 text-xs font-mono uppercase tracking-[0.3em] text-emerald-400"), g.Text(eyebrow)),
		h.H2(h.Class("text-3xl md:text-4xl font-bold tracking-tight"), g.Text(title)),
	)
}

func projectsSection(env Env, projects []models.Project) g.Node {
	return h.Section(
		h.ID("projects"),
		h.Class("py-24 md:py-32"),
		Container("",
			sectionHeading(env.T("projects.eyebrow"), env.T("projects.title")),
			h.P(h.Class("-mt-6 mb-6 max-w-3xl text-slate-400 leading-relaxed"), g.Text(env.T("projects.lead"))),
			h.Dl(
				h.Class("mb-12 grid gap-2 text-sm sm:grid-cols-2 max-w-3xl"),
				g.If(env.Site.StackLine != "", metaLine(env.T("projects.stack"), env.Site.StackLine)),
				g.If(env.Site.FocusLine != "", metaLine(env.T("projects.focus"), env.Site.FocusLine)),
			),
			h.Div(
				h.Class("grid gap-8 md:grid-cols-2"),
				g.Map(projects, func(p models.Project) g.Node {
					return ProjectCard(env, p)
				}),
			),
		),
	)
}

func metaLine(label, value string) g.Node {
	return h.Div(
		h.Class("flex gap-3"),
		h.Dt(h.Class("font-mono text-xs uppercase tracking-wider text-emerald-400 pt-0.5"), g.Text(label)),
		h.Dd(h.Class("text-slate-300"), g.Text(value)),
	)
}

func aboutSection(env Env) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("py-24 md:py-32 border-t border-slate-800/60"),
		Container("",
			sectionHeading(env.T("about.eyebrow"), env.T("about.title")),
			h.Div(
				h.Class("max-w-3xl space-y-5 text-slate-300 leading-relaxed"),
				g.Map(env.Site.About, func(line string) g.Node {
					return h.P(g.Text(line))
				}),
			),
		),
	)
}

func skillsSection(env Env) g.Node {
	return h.Section(
		h.ID("skills"),
		h.Class("py-24 md:py-32 border-t border-slate-800/60"),
		Container("",
			sectionHeading(env.T("skills.eyebrow"), env.T("skills.title")),
			h.Div(
				h.Class("grid gap-6 md:grid-cols-3"),
				g.Map(env.Site.Skills, func(group models.SkillGroup) g.Node {
					return h.Div(
						h.Class("rounded-2xl border border-slate-800 bg-slate-900/40 p-6"),
						h.H3(h.Class("mb-4 text-lg font-semibold"), g.Text(group.Title)),
						h.Ul(
							h.Class("flex flex-wrap gap-2"),
							g.Map(group.Skills, func(skill string) g.Node {
								return h.Li(h.Class("px-2.5 py-1 rounded bg-slate-800 text-xs text-slate-300"), g.Text(skill))
							}),
						),
					)
				}),
			),
		),
	)
}

func contactSection(env Env) g.Node {
	invalid := env.T("links.invalid")
	return h.Section(
		h.ID("contact"),
		h.Class("py-24 md:py-32 border-t border-slate-800/60"),
		Container("text-center",
			sectionHeading(env.T("contact.eyebrow"), env.T("contact.title")),
			h.P(h.Class("-mt-6 mb-10 text-slate-400"), g.Text(env.T("contact.lead"))),
			h.Div(
				h.Class("flex flex-wrap justify-center gap-4"),
				g.If(env.Site.Email != "",
					h.A(h.Href("mailto:"+env.Site.Email), h.Class(btnPrimary), g.Text(env.T("contact.email"))),
				),
				g.Map(env.Site.Contacts, func(link models.ContactLink) g.Node {
					return env.Links.External(link.URL, invalid, btnSecondary, g.Text(link.Label))
				}),
			),
		),
	)
}
