// Package views holds the presentational components of the site. Every
// component is a pure function of its arguments returning a gomponents node.
package views

import (
	"net/url"
	"strconv"

	"kz.dev/internal/i18n"
	"kz.dev/internal/linksafe"
	"kz.dev/internal/models"
)

// Env is the per-request rendering context shared by all components.
type Env struct {
	L         *i18n.Localizer
	Links     *linksafe.Guard
	Site      models.Site
	Path      string
	Languages []i18n.Option
	Year      int
	// Static renders for a static host: plain links only, no htmx requests
	// and no routes that exist only on the server.
	Static bool
}

// T formats a copy catalog message.
func (e Env) T(key string, args ...any) string {
	return e.L.T(key, args...)
}

// TOCItem is one entry of a detail page table of contents.
type TOCItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func withCategory(path, category string) string {
	if category == "" {
		return path
	}
	return path + "?" + url.Values{"category": {category}}.Encode()
}

// LightboxURL is the route showing item index of a project gallery.
func LightboxURL(projectID string, index int, category string) string {
	return withCategory(models.ProjectURL(projectID)+"/lightbox/"+strconv.Itoa(index), category)
}

// LightboxActionURL is the route applying action ("next", "prev") at index.
func LightboxActionURL(projectID string, index int, action, category string) string {
	return withCategory(models.ProjectURL(projectID)+"/lightbox/"+strconv.Itoa(index)+"/"+action, category)
}

// LightboxKeyURL is the route dispatching a keyboard key at index.
func LightboxKeyURL(projectID string, index int, key, category string) string {
	return withCategory(models.ProjectURL(projectID)+"/lightbox/"+strconv.Itoa(index)+"/key/"+key, category)
}

// LightboxCloseURL is the route closing the lightbox.
func LightboxCloseURL(projectID, category string) string {
	return withCategory(models.ProjectURL(projectID)+"/lightbox/close", category)
}

// GalleryURL is the detail page scrolled to its gallery, optionally filtered.
func GalleryURL(projectID, category string) string {
	return withCategory(models.ProjectURL(projectID), category) + "#gallery"
}
