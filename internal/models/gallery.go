package models

// MediaType tags a gallery item for display
type MediaType string

const (
	MediaUIScreenshot  MediaType = "UI Screenshot"
	MediaConceptVisual MediaType = "Concept Visual"
	MediaFeature       MediaType = "Feature"
)

// GalleryItem is one image in a project gallery
type GalleryItem struct {
	ID       string    `json:"id" yaml:"id"`
	Src      string    `json:"src" yaml:"src"`
	Alt      string    `json:"alt" yaml:"alt"`
	Title    string    `json:"title,omitempty" yaml:"title"`
	Caption  string    `json:"caption,omitempty" yaml:"caption"`
	Type     MediaType `json:"type,omitempty" yaml:"type"`
	Category string    `json:"category,omitempty" yaml:"category"`
}

// Heading returns the title, falling back to the alt text
func (g GalleryItem) Heading() string {
	if g.Title != "" {
		return g.Title
	}
	return g.Alt
}

// KeyScreen is a legacy screenshot entry folded into the gallery
type KeyScreen struct {
	Title   string `json:"title" yaml:"title"`
	Src     string `json:"src" yaml:"src"`
	Alt     string `json:"alt" yaml:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption"`
}

// GalleryItem converts the key screen into a gallery entry
func (k KeyScreen) GalleryItem() GalleryItem {
	return GalleryItem{
		ID:      "ks-" + k.Title,
		Src:     k.Src,
		Alt:     k.Alt,
		Title:   k.Title,
		Caption: k.Caption,
		Type:    MediaUIScreenshot,
	}
}
