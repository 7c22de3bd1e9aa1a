package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"

	"kz.dev/internal/gallery"
	"kz.dev/internal/i18n"
	"kz.dev/internal/linksafe"
	"kz.dev/internal/models"
	"kz.dev/internal/scrollspy"
)

func testEnv(t *testing.T) Env {
	t.Helper()
	b, err := i18n.LoadEmbedded("ja")
	require.NoError(t, err)
	return Env{
		L:     b.Localizer(language.English),
		Links: linksafe.NewGuard(zap.NewNop()),
		Site: models.Site{
			Owner:    "Kazushi",
			Monogram: "KZ",
			Nav: []models.NavItem{
				{Label: "nav.home", Href: "/#home"},
				{Label: "nav.projects", Href: "/#projects"},
			},
		},
		Path: "/",
		Year: 2025,
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	if n == nil {
		return ""
	}
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestProjectLinksGitHubPromotedWithoutDemo(t *testing.T) {
	env := testEnv(t)

	html := render(t, ProjectLinks(env, models.Links{GitHub: "https://github.com/kz/app"}))
	assert.Contains(t, html, `<a href="https://github.com/kz/app" target="_blank" rel="noopener noreferrer" class="`+btnPrimary+`"`)

	html = render(t, ProjectLinks(env, models.Links{
		Demo:   "https://app.kz.dev",
		GitHub: "https://github.com/kz/app",
	}))
	assert.Contains(t, html, `<a href="https://app.kz.dev" target="_blank" rel="noopener noreferrer" class="`+btnPrimary+`"`)
	assert.Contains(t, html, `<a href="https://github.com/kz/app" target="_blank" rel="noopener noreferrer" class="`+btnSecondary+`"`)
	assert.Contains(t, html, "Use App")
}

func TestProjectLinksTertiaryGroup(t *testing.T) {
	env := testEnv(t)

	html := render(t, ProjectLinks(env, models.Links{
		GitHub: "https://github.com/kz/bot",
		Docs:   "https://github.com/kz/bot#readme",
		Sample: "https://github.com/kz/bot/blob/main/sample.md",
	}))
	assert.Equal(t, 2, strings.Count(html, `class="`+btnTertiary+`"`))
	assert.Contains(t, html, "Docs")
	assert.Contains(t, html, "Sample Output")

	assert.Empty(t, render(t, ProjectLinks(env, models.Links{})))
}

func TestProjectLinksUnsafeURLIsPlaceholder(t *testing.T) {
	env := testEnv(t)

	html := render(t, ProjectLinks(env, models.Links{Demo: "http://insecure.example"}))
	assert.NotContains(t, html, "<a ")
	assert.Contains(t, html, "disabled")
	assert.Contains(t, html, "Invalid URL")
}

func TestVisibleTech(t *testing.T) {
	tags, more := VisibleTech([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, tags)
	assert.Zero(t, more)

	tags, more = VisibleTech([]string{"a", "b", "c", "d", "e", "f", "g"})
	assert.Len(t, tags, CardTechLimit)
	assert.Equal(t, 2, more)
}

func TestProjectCard(t *testing.T) {
	env := testEnv(t)
	p := models.Project{
		ID:     "kirei-routine",
		Name:   "KireiRoutine",
		Status: models.StatusCompleted,
		Tech:   []string{"React", "TypeScript", "Vite", "Tailwind", "PWA", "Framer Motion", "Zustand"},
		Detail: &models.ProjectDetail{},
	}

	html := render(t, ProjectCard(env, p))
	assert.Contains(t, html, ">+2</li>")
	assert.NotContains(t, html, "Framer Motion")
	assert.Contains(t, html, `href="/projects/kirei-routine"`)
	assert.Contains(t, html, `data-status="completed"`)

	p.Detail = nil
	p.Status = models.StatusInProgress
	html = render(t, ProjectCard(env, p))
	assert.NotContains(t, html, "Case Study")
	assert.Contains(t, html, "In Progress")
}

func TestHeaderMarksActiveSectionOnHome(t *testing.T) {
	env := testEnv(t)

	html := render(t, Header(env, scrollspy.NewNav(env.Site.Nav, "/")))
	assert.Contains(t, html, `href="/#home" data-spy-link="home" data-active aria-current="location" data-scroll-to="home"`)
	assert.Contains(t, html, `data-spy-targets="home projects"`)
	assert.Contains(t, html, `data-scrolled-toggle="50"`)

	html = render(t, Header(env, scrollspy.NewNav(env.Site.Nav, "/projects/x")))
	assert.NotContains(t, html, "data-active")
	assert.NotContains(t, html, "data-spy-targets")
	assert.NotContains(t, html, "data-scroll-to", "anchors off the home view navigate")
}

func TestPageLockedBody(t *testing.T) {
	env := testEnv(t)
	nav := scrollspy.NewNav(env.Site.Nav, "/")

	html := render(t, Page(env, Meta{Locked: true}, nav))
	assert.Contains(t, html, `data-scroll-lock="lightbox"`)
	assert.Contains(t, html, "overflow-hidden")
	assert.Contains(t, html, `<html lang="en">`)

	html = render(t, Page(env, Meta{Title: "X"}, nav))
	assert.NotContains(t, html, "data-scroll-lock")
	assert.Contains(t, html, "<title>X</title>")
}

func galleryItems(ids ...string) []models.GalleryItem {
	out := make([]models.GalleryItem, len(ids))
	for i, id := range ids {
		out[i] = models.GalleryItem{ID: id, Src: "/images/" + id + ".png", Alt: id}
	}
	return out
}

func TestLightboxFragment(t *testing.T) {
	env := testEnv(t)
	box := gallery.NewLightbox("lightbox:p", galleryItems("a", "b", "c"), gallery.NewScrollLock())

	assert.Nil(t, Lightbox(env, "p", "", box))

	require.NoError(t, box.Open(1))
	html := render(t, Lightbox(env, "p", "", box))
	assert.Contains(t, html, "2 / 3")
	assert.Contains(t, html, `hx-get="/projects/p/lightbox/1/key/Escape"`)
	assert.Contains(t, html, `hx-get="/projects/p/lightbox/1/key/ArrowRight"`)
	assert.Contains(t, html, `hx-get="/projects/p/lightbox/1/next"`)
	assert.Contains(t, html, `href="/projects/p/lightbox/1/backdrop"`)
	assert.Contains(t, html, `data-lightbox-backdrop`)
	assert.Contains(t, html, `href="/projects/p/lightbox/close"`)
	assert.Contains(t, html, `src="/images/b.png"`)

	box.Close()
	assert.Nil(t, Lightbox(env, "p", "", box))
}

func TestLightboxSingleItemHasNoArrows(t *testing.T) {
	env := testEnv(t)
	box := gallery.NewLightbox("lightbox:p", galleryItems("only"), gallery.NewScrollLock())
	require.NoError(t, box.Open(0))

	html := render(t, Lightbox(env, "p", "", box))
	assert.Contains(t, html, "key/Escape")
	assert.NotContains(t, html, "key/ArrowRight")
	assert.NotContains(t, html, "/next")
}

func TestLightboxStaticLinks(t *testing.T) {
	env := testEnv(t)
	env.Static = true
	box := gallery.NewLightbox("lightbox:p", galleryItems("a", "b", "c"), gallery.NewScrollLock())
	require.NoError(t, box.Open(0))

	html := render(t, Lightbox(env, "p", "", box))
	assert.NotContains(t, html, "hx-get")
	assert.NotContains(t, html, "hx-target")
	assert.NotContains(t, html, "/key/")
	assert.NotContains(t, html, "/lightbox/close")
	assert.NotContains(t, html, "/backdrop")
	assert.Contains(t, html, `data-lightbox-key="Escape" href="/projects/p#gallery"`)
	assert.Contains(t, html, `data-lightbox-key="ArrowRight" href="/projects/p/lightbox/1"`)
	assert.Contains(t, html, `data-lightbox-key="ArrowLeft" href="/projects/p/lightbox/2"`)
	assert.Contains(t, html, `href="/projects/p/lightbox/2"`)
	assert.Contains(t, html, "1 / 3")
}

func TestGalleryGridStatic(t *testing.T) {
	env := testEnv(t)
	env.Static = true
	items := galleryItems("a", "b")
	items[0].Category = "UI"

	html := render(t, GalleryGrid(env, "p", items, ""))
	assert.NotContains(t, html, "hx-get")
	assert.NotContains(t, html, "?category=")
	assert.Contains(t, html, `href="/projects/p/lightbox/1"`)
}

func TestGalleryGrid(t *testing.T) {
	env := testEnv(t)
	items := galleryItems("a", "b", "c")
	items[0].Category = "UI"
	items[2].Category = "UI"

	html := render(t, GalleryGrid(env, "p", items, ""))
	assert.Equal(t, 1, strings.Count(html, "sm:col-span-2"))
	assert.Contains(t, html, `href="/projects/p#gallery"`)
	assert.Contains(t, html, `href="/projects/p?category=UI#gallery"`)

	html = render(t, GalleryGrid(env, "p", items, "UI"))
	assert.NotContains(t, html, `data-item="b"`)
	assert.Contains(t, html, `href="/projects/p/lightbox/1?category=UI"`)
	assert.Zero(t, strings.Count(html, "sm:col-span-2"))
}

func TestTOC(t *testing.T) {
	env := testEnv(t)
	assert.Nil(t, TOC(env, nil))

	html := render(t, TOC(env, []TOCItem{{ID: "summary", Label: "Summary"}, {ID: "outcome", Label: "Outcome"}}))
	assert.Contains(t, html, `data-spy-targets="summary outcome"`)
	assert.Contains(t, html, `href="#summary" data-spy-link="summary" data-active aria-current="location"`)
	assert.Contains(t, html, `href="#outcome" data-spy-link="outcome" class=`)
	assert.Contains(t, html, "Back to top")
}

func TestScoreRingGrade(t *testing.T) {
	html := render(t, ScoreRing(models.Score{Label: "Performance", Value: 98}))
	assert.Contains(t, html, `data-grade="good"`)
	assert.Contains(t, html, "text-emerald-400")

	html = render(t, ScoreRing(models.Score{Label: "SEO", Value: 40}))
	assert.Contains(t, html, `data-grade="poor"`)
}

func TestProjectNav(t *testing.T) {
	env := testEnv(t)
	prev := &models.Project{ID: "a", Name: "A", Detail: &models.ProjectDetail{}}
	next := &models.Project{ID: "b", Name: "B", Detail: &models.ProjectDetail{}}

	html := render(t, ProjectNav(env, prev, next))
	assert.Contains(t, html, `href="/projects/a" rel="prev"`)
	assert.Contains(t, html, `href="/projects/b" rel="next"`)
}

func TestFeatureList(t *testing.T) {
	out := render(t, FeatureList([]models.Feature{
		{Title: "Offline sync", Description: "Works without a network", Bullets: []string{"queue", "retry"}},
		{Title: "Widgets", Description: "Home screen", Image: &models.Image{Src: "/w.png", Alt: "widget"}},
	}))
	assert.Contains(t, out, "Offline sync")
	assert.Equal(t, 2, strings.Count(out, "<li "))
	assert.Equal(t, 1, strings.Count(out, "md:grid-cols-2"))
	assert.Contains(t, out, `<img src="/w.png" alt="widget" loading="lazy"`)
}
