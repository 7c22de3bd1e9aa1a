package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"kz.dev/internal/models"
)

const (
	btnPrimary   = "inline-flex items-center gap-2 px-5 py-2.5 rounded-full bg-emerald-500 text-slate-950 text-sm font-semibold hover:bg-emerald-400 transition-colors"
	btnSecondary = "inline-flex items-center gap-2 px-5 py-2.5 rounded-full border border-slate-700 text-slate-200 text-sm font-medium hover:border-emerald-400 hover:text-emerald-400 transition-colors"
	btnTertiary  = "inline-flex items-center gap-1.5 text-xs text-slate-400 hover:text-emerald-400 transition-colors"
)

// ProjectLinks renders the outbound links of a project. The demo is the
// primary action; GitHub takes the primary style when there is no demo.
// Docs and sample output form a smaller tertiary group.
func ProjectLinks(env Env, links models.Links) g.Node {
	if links.Empty() {
		return nil
	}
	invalid := env.T("links.invalid")

	githubClass := btnSecondary
	if links.Demo == "" {
		githubClass = btnPrimary
	}

	hasTertiary := links.Docs != "" || links.Sample != ""

	return h.Div(
		h.Class("flex flex-col gap-3"),
		h.Data("project-links", ""),
		h.Div(
			h.Class("flex flex-wrap items-center gap-3"),
			g.If(links.Demo != "",
				env.Links.External(links.Demo, invalid, btnPrimary,
					g.Text(env.T("buttons.use_app")), iconArrow("w-4 h-4")),
			),
			g.If(links.GitHub != "",
				env.Links.External(links.GitHub, invalid, githubClass,
					iconCode("w-4 h-4"), g.Text(env.T("buttons.github"))),
			),
		),
		g.If(hasTertiary,
			h.Div(
				h.Class("flex flex-wrap items-center gap-4"),
				g.If(links.Docs != "",
					env.Links.External(links.Docs, invalid, btnTertiary,
						iconDoc("w-3.5 h-3.5"), g.Text(env.T("buttons.docs"))),
				),
				g.If(links.Sample != "",
					env.Links.External(links.Sample, invalid, btnTertiary,
						iconDoc("w-3.5 h-3.5"), g.Text(env.T("buttons.sample"))),
				),
			),
		),
	)
}
