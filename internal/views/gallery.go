package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"kz.dev/internal/gallery"
	"kz.dev/internal/models"
)

// GalleryGrid renders the gallery thumbnails, filtered to category, with
// category chips when the items carry categories. Each thumbnail opens the
// lightbox: in place via htmx, or as a full page without it. Static renders
// drop the chips, since query strings are not addressable there.
func GalleryGrid(env Env, projectID string, items []models.GalleryItem, category string) g.Node {
	categories := gallery.Categories(items)
	shown := gallery.Filter(items, category)
	spans := gallery.Layout(len(shown))

	return h.Div(
		h.Class("space-y-6"),
		g.If(len(categories) > 0 && !env.Static,
			h.Nav(
				h.Class("flex flex-wrap gap-2"),
				h.Aria("label", env.T("toc.gallery")),
				filterChip(GalleryURL(projectID, ""), env.T("gallery.filter_all"), category == ""),
				g.Map(categories, func(cat string) g.Node {
					return filterChip(GalleryURL(projectID, cat), cat, cat == category)
				}),
			),
		),
		h.Ul(
			h.Class("grid gap-4 sm:grid-cols-2"),
			g.Map(indexes(len(shown)), func(i int) g.Node {
				item := shown[i]
				return h.Li(
					classIf("group relative overflow-hidden rounded-xl border border-slate-800 bg-slate-900",
						"sm:col-span-2", spans[i] == gallery.SpanFull),
					h.Data("item", item.ID),
					h.A(
						h.Href(LightboxURL(projectID, i, category)),
						g.If(!env.Static, g.Group{
							hx.Get(LightboxURL(projectID, i, category)),
							hx.Target("#" + LightboxTarget),
							hx.Swap("innerHTML"),
							hx.PushURL("false"),
						}),
						h.Class("block"),
						h.Aria("label", env.T("gallery.open", item.Heading())),
						h.Img(
							h.Src(item.Src),
							h.Alt(item.Alt),
							h.Loading("lazy"),
							h.Class("w-full aspect-video object-cover group-hover:scale-105 transition-transform duration-500"),
						),
						h.Div(
							h.Class("absolute inset-x-0 bottom-0 p-4 bg-gradient-to-t from-slate-950/90 to-transparent"),
							g.If(item.Type != "",
								h.Span(h.Class("text-[10px] font-mono uppercase tracking-wider text-emerald-400"), g.Text(string(item.Type))),
							),
							h.P(h.Class("text-sm font-medium text-slate-100"), g.Text(item.Heading())),
						),
					),
				)
			}),
		),
	)
}

func filterChip(href, label string, active bool) g.Node {
	return h.A(
		h.Href(href),
		g.If(active, h.Aria("current", "true")),
		c.Classes{
			"px-3 py-1 rounded-full border text-xs transition-colors":                     true,
			"border-emerald-400 bg-emerald-500/10 text-emerald-400":                       active,
			"border-slate-700 text-slate-400 hover:border-slate-500 hover:text-slate-200": !active,
		},
		g.Text(label),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Lightbox renders the open modal over the gallery, or nothing when closed.
// The key triggers live inside the modal, so removing the modal also stops
// keyboard capture.
func Lightbox(env Env, projectID, category string, box *gallery.Lightbox) g.Node {
	item, ok := box.Current()
	if !ok {
		return nil
	}
	index := box.Index()
	pos, total := box.Position()
	many := total > 1

	closeURL := LightboxCloseURL(projectID, category)
	prevURL := LightboxActionURL(projectID, index, gallery.ActionPrev, category)
	nextURL := LightboxActionURL(projectID, index, gallery.ActionNext, category)
	backdropURL := LightboxActionURL(projectID, index, gallery.ActionBackdrop, category)
	if env.Static {
		closeURL = GalleryURL(projectID, category)
		prevURL = LightboxURL(projectID, box.PrevIndex(), category)
		nextURL = LightboxURL(projectID, box.NextIndex(), category)
		backdropURL = closeURL
	}

	swap := func(href string) g.Node {
		if env.Static {
			return h.Href(href)
		}
		return g.Group{
			h.Href(href),
			hx.Get(href),
			hx.Target("#" + LightboxTarget),
			hx.Swap("innerHTML"),
		}
	}
	// Static pages get hidden links the script follows on keydown; served
	// pages get htmx triggers.
	keyTrigger := func(key, staticHref string) g.Node {
		if env.Static {
			return h.A(
				h.Class("hidden"),
				h.Data("lightbox-key", key),
				h.Href(staticHref),
				h.TabIndex("-1"),
			)
		}
		return h.Span(
			h.Class("hidden"),
			h.Data("lightbox-key", key),
			hx.Get(LightboxKeyURL(projectID, index, key, category)),
			hx.Target("#"+LightboxTarget),
			hx.Swap("innerHTML"),
			hx.Trigger("keydown[key=='"+key+"'] from:body"),
		)
	}

	return h.Div(
		h.Class("fixed inset-0 z-[100] flex items-center justify-center"),
		h.Role("dialog"),
		h.Aria("modal", "true"),
		h.Aria("label", item.Heading()),
		h.Data("lightbox-open", strconv.Itoa(index)),
		keyTrigger(gallery.KeyEscape, closeURL),
		g.If(many, keyTrigger(gallery.KeyArrowRight, nextURL)),
		g.If(many, keyTrigger(gallery.KeyArrowLeft, prevURL)),
		h.A(
			swap(backdropURL),
			h.Class("absolute inset-0 bg-slate-950/95 backdrop-blur-sm cursor-zoom-out"),
			h.Data("lightbox-backdrop", ""),
			h.Aria("label", env.T("lightbox.close")),
			h.TabIndex("-1"),
		),
		h.A(
			swap(closeURL),
			h.Class("absolute top-4 right-4 z-10 p-2 rounded-full text-slate-300 hover:text-white hover:bg-white/10"),
			h.Aria("label", env.T("lightbox.close")),
			iconClose("w-7 h-7"),
		),
		g.If(many,
			h.A(
				swap(prevURL),
				h.Class("absolute left-2 md:left-6 z-10 p-3 rounded-full text-slate-300 hover:text-white hover:bg-white/10"),
				h.Aria("label", env.T("lightbox.previous")),
				iconPrev("w-8 h-8"),
			),
		),
		g.If(many,
			h.A(
				swap(nextURL),
				h.Class("absolute right-2 md:right-6 z-10 p-3 rounded-full text-slate-300 hover:text-white hover:bg-white/10"),
				h.Aria("label", env.T("lightbox.next")),
				iconNext("w-8 h-8"),
			),
		),
		h.Figure(
			h.Class("relative max-w-6xl w-full px-4 md:px-20 pointer-events-none"),
			h.Div(
				h.Class("pointer-events-auto"),
				h.Data("lightbox-content", ""),
				h.Img(
					h.Src(item.Src),
					h.Alt(item.Alt),
					h.Class("mx-auto max-h-[80vh] w-auto rounded-lg shadow-2xl"),
				),
				h.FigCaption(
					h.Class("mt-4 text-center"),
					h.P(h.Class("font-medium text-slate-100"), g.Text(item.Heading())),
					g.If(item.Caption != "", h.P(h.Class("mt-1 text-sm text-slate-400"), g.Text(item.Caption))),
					h.P(
						h.Class("mt-2 text-xs font-mono text-slate-500"),
						h.Data("lightbox-position", ""),
						g.Text(env.T("lightbox.position", pos, total)),
					),
				),
			),
		),
	)
}
