package views

import (
	"sort"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"kz.dev/internal/i18n"
	"kz.dev/internal/models"
	"kz.dev/internal/scrollspy"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindSrc = "https://cdn.tailwindcss.com"

	// LightboxTarget is the element id the lightbox fragment is swapped into.
	LightboxTarget = "lightbox"
)

// Meta is the document head of a page.
type Meta struct {
	Title       string
	Description string
	// Locked renders the body with page scroll suppressed.
	Locked bool
}

// Page wraps main content in the document shell: head, header and footer.
func Page(env Env, meta Meta, nav scrollspy.Nav, main ...g.Node) g.Node {
	title := meta.Title
	if title == "" {
		title = env.T("site.title")
	}
	description := meta.Description
	if description == "" {
		description = env.T("site.description")
	}

	return h.Doctype(
		h.HTML(
			h.Lang(env.L.Lang()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Meta(h.Name("description"), h.Content(description)),
				h.Script(h.Src(tailwindSrc)),
				h.Script(h.Src(htmxSrc), h.Defer()),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(h.Src("/static/app.js"), h.Defer()),
			),
			h.Body(
				c.Classes{
					"bg-slate-950 text-slate-50 font-sans antialiased selection:bg-emerald-500/30": true,
					"overflow-hidden": meta.Locked,
				},
				g.If(meta.Locked, h.Data("scroll-lock", "lightbox")),
				Header(env, nav),
				h.Main(h.ID("main"), g.Group(main)),
				Footer(env),
			),
		),
	)
}

// Container is the shared max-width wrapper.
func Container(class string, children ...g.Node) g.Node {
	return h.Div(
		h.Class("mx-auto w-full max-w-7xl px-5 sm:px-6 lg:px-10 "+class),
		g.Group(children),
	)
}

// Header renders the fixed site header with section navigation.
func Header(env Env, nav scrollspy.Nav) g.Node {
	// off the home view the header is always solid
	state := "py-3 md:py-4 bg-slate-950/90 backdrop-blur-sm border-b border-white/5 shadow-lg"
	if nav.Spied() {
		state = "py-5 md:py-6 bg-transparent"
	}

	return h.Header(
		h.ID("site-header"),
		h.Class("fixed top-0 left-0 right-0 z-50 transition-all duration-300 "+state),
		g.If(nav.Spied(), h.Data("scrolled-toggle", "50")),
		spyAttrs(nav.Config()),
		Container("flex justify-between items-center",
			h.A(
				h.Href("/"),
				h.Class("relative z-50 p-2 text-xl md:text-2xl font-bold tracking-tighter hover:text-emerald-400 transition-colors group rounded-lg"),
				h.Aria("label", env.T("site.home_label")),
				g.Text(env.Site.Monogram+" "),
				h.Span(h.Class("text-slate-600 group-hover:text-emerald-400 transition-colors"), g.Text("/")),
				g.Text(" "+env.Site.Owner),
			),
			h.Nav(
				h.Class("hidden md:flex items-center space-x-6 lg:space-x-8"),
				h.Aria("label", env.T("site.main_nav")),
				g.Map(nav.Items, func(item models.NavItem) g.Node {
					return navLink(env, nav, item)
				}),
				languageSwitch(env),
			),
			mobileMenu(env, nav),
		),
	)
}

func spyAttrs(config map[string]string) g.Node {
	names := make([]string, 0, len(config))
	for name := range config {
		names = append(names, name)
	}
	sort.Strings(names)
	return g.Map(names, func(name string) g.Node {
		return g.Attr(name, config[name])
	})
}

// scrollTo marks a link the script scrolls to in place instead of navigating.
func scrollTo(path, href string) g.Node {
	id, ok := scrollspy.InterceptClick(path, href)
	if !ok {
		return nil
	}
	return g.Attr(scrollspy.AttrScrollTo, id)
}

func navLink(env Env, nav scrollspy.Nav, item models.NavItem) g.Node {
	active := nav.IsActive(item)
	return h.A(
		h.Href(item.Href),
		h.Data("spy-link", scrollspy.Anchor(item.Href)),
		g.If(active, g.Attr("data-active")),
		g.If(active, h.Aria("current", "location")),
		scrollTo(nav.Path, item.Href),
		h.Class("nav-link relative py-2 text-sm uppercase tracking-widest font-medium transition-colors duration-300 group rounded-sm"),
		g.Text(env.T(item.Label)),
		h.Span(h.Class("nav-dot absolute bottom-0 left-1/2 -translate-x-1/2 w-1 h-1 bg-emerald-400 rounded-full")),
	)
}

func mobileMenu(env Env, nav scrollspy.Nav) g.Node {
	return h.Details(
		h.Class("md:hidden group"),
		h.Summary(
			h.Class("list-none p-2 text-slate-200 hover:text-emerald-400 transition-colors cursor-pointer rounded-lg"),
			h.Aria("label", env.T("site.menu_open")),
			iconMenu("w-7 h-7"),
		),
		h.Nav(
			h.ID("mobile-menu"),
			h.Class("absolute top-full left-0 right-0 bg-slate-950/95 backdrop-blur-xl border-b border-slate-800 p-6 flex flex-col space-y-6 shadow-2xl"),
			h.Aria("label", env.T("site.mobile_nav")),
			g.Map(nav.Items, func(item models.NavItem) g.Node {
				return h.A(
					h.Href(item.Href),
					h.Data("spy-link", scrollspy.Anchor(item.Href)),
					h.Data("menu-close", ""),
					scrollTo(nav.Path, item.Href),
					h.Class("text-lg font-medium text-slate-300 hover:text-emerald-400 hover:pl-2 transition-all rounded-sm"),
					h.Span(h.Class("text-emerald-500/50 mr-2"), g.Text("#")),
					g.Text(env.T(item.Label)),
				)
			}),
			h.A(
				h.Href("/"),
				h.Class("pt-4 mt-2 border-t border-slate-800 text-sm text-slate-500 hover:text-slate-300 transition-colors"),
				g.Text("← "+env.T("nav.home")),
			),
			languageSwitch(env),
		),
	)
}

func languageSwitch(env Env) g.Node {
	if len(env.Languages) < 2 {
		return nil
	}
	return h.Div(
		h.Class("flex items-center gap-2 text-xs tracking-widest"),
		h.Aria("label", env.T("site.language")),
		g.Map(env.Languages, func(opt i18n.Option) g.Node {
			return h.A(
				h.Href(opt.Href),
				h.Lang(opt.Tag),
				c.Classes{
					"px-1.5 py-0.5 rounded":               true,
					"text-emerald-400 font-semibold":      opt.Active,
					"text-slate-500 hover:text-slate-300": !opt.Active,
				},
				g.If(opt.Active, h.Aria("current", "true")),
				g.Text(opt.Label),
			)
		}),
	)
}

func classIf(base, extra string, on bool) g.Node {
	if on {
		return h.Class(base + " " + extra)
	}
	return h.Class(base)
}

// Footer renders the copyright line.
func Footer(env Env) g.Node {
	return h.Footer(
		h.Class("border-t border-slate-800/60 py-10 text-center text-xs text-slate-500"),
		Container("",
			h.P(g.Text(env.T("footer.copyright", strconv.Itoa(env.Year), env.Site.Owner))),
		),
	)
}
