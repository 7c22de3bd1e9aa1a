package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"kz.dev/internal/scrollspy"
)

// TOCTargets returns the section ids a table of contents observes.
func TOCTargets(items []TOCItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// TOC renders the sticky table of contents on wide screens and a
// collapsible one on small screens. Both spy on the listed sections; the
// first one is active until the observer reports otherwise.
func TOC(env Env, items []TOCItem) g.Node {
	if len(items) == 0 {
		return nil
	}
	spy := scrollspy.Load(TOCTargets(items))
	active := spy.Active()
	entries := func() g.Node {
		return h.Ol(
			h.Class("space-y-1"),
			g.Map(items, func(item TOCItem) g.Node {
				on := item.ID == active
				return h.Li(
					h.A(
						h.Href("#"+item.ID),
						h.Data("spy-link", item.ID),
						g.If(on, g.Attr("data-active")),
						g.If(on, h.Aria("current", "location")),
						h.Class(tocLink),
						g.Text(item.Label),
					),
				)
			}),
		)
	}
	config := scrollspy.Config(spy.Observed())

	return h.Aside(
		h.Class("lg:order-last"),
		h.Data("toc", ""),
		spyAttrs(config),
		h.Details(
			h.Class("lg:hidden rounded-xl border border-slate-800 bg-slate-900/40 p-4 mb-8"),
			h.Summary(h.Class("cursor-pointer text-sm font-semibold text-slate-200"), g.Text(env.T("toc.title"))),
			h.Div(h.Class("mt-3"), entries()),
		),
		h.Nav(
			h.Class("hidden lg:block sticky top-28"),
			h.Aria("label", env.T("toc.title")),
			h.P(h.Class("mb-4 text-xs font-mono uppercase tracking-widest text-slate-500"), g.Text(env.T("toc.title"))),
			entries(),
			h.A(
				h.Href("#main"),
				h.Data("back-to-top", ""),
				h.Class("mt-6 inline-flex items-center gap-2 text-xs text-slate-500 hover:text-emerald-400"),
				iconUp("w-3.5 h-3.5"),
				g.Text(env.T("buttons.back_to_top")),
			),
		),
	)
}

const tocLink = "block border-l-2 border-transparent pl-3 py-1 text-sm text-slate-400 hover:text-slate-200 transition-colors"
