package scrollspy

import (
	"strings"

	"kz.dev/internal/models"
)

// HomePath is the only view whose anchors are spied and intercepted.
const HomePath = "/"

// Anchor returns the fragment of an href ("/#projects" -> "projects").
func Anchor(href string) string {
	_, frag, ok := strings.Cut(href, "#")
	if !ok {
		return ""
	}
	return frag
}

// Targets returns the section identifiers a nav list points at.
func Targets(items []models.NavItem) []string {
	var ids []string
	for _, item := range items {
		if id := Anchor(item.Href); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Nav is the header navigation state for one rendered page.
type Nav struct {
	Items   []models.NavItem
	Path    string
	Active  string
	Targets []string
}

// NewNav builds the nav state for path. Only the home view observes its
// sections; the first one starts active.
func NewNav(items []models.NavItem, path string) Nav {
	nav := Nav{Items: items, Path: path}
	if path == HomePath {
		spy := Load(Targets(items))
		nav.Active = spy.Active()
		nav.Targets = spy.Observed()
	}
	return nav
}

// IsActive reports whether item should be highlighted.
func (n Nav) IsActive(item models.NavItem) bool {
	if n.Path != HomePath {
		return false
	}
	id := Anchor(item.Href)
	return id != "" && id == n.Active
}

// Spied reports whether the page runs the section observer.
func (n Nav) Spied() bool {
	return n.Path == HomePath
}

// InterceptClick decides whether a click scrolls in place. It does only on
// the home view for "#id" and "/#id" hrefs; links into other pages navigate.
func InterceptClick(currentPath, href string) (target string, intercept bool) {
	if currentPath != HomePath {
		return "", false
	}
	page, id, ok := strings.Cut(href, "#")
	if !ok || id == "" || (page != "" && page != HomePath) {
		return "", false
	}
	return id, true
}

// Data attributes read by the embedded observer script.
const (
	AttrMargin   = "data-spy-margin"
	AttrTargets  = "data-spy-targets"
	AttrScrollTo = "data-scroll-to"
)

// Config returns the observer attributes for a container spying targets.
func Config(targets []string) map[string]string {
	if len(targets) == 0 {
		return nil
	}
	return map[string]string{
		AttrMargin:  RootMargin,
		AttrTargets: strings.Join(targets, " "),
	}
}

// Config returns the observer attributes for the header, or nil off the home view.
func (n Nav) Config() map[string]string {
	if !n.Spied() {
		return nil
	}
	return Config(n.Targets)
}
