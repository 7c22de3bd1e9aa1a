package gallery

import "kz.dev/internal/models"

// Filter returns the items tagged with category. An empty category keeps all.
func Filter(items []models.GalleryItem, category string) []models.GalleryItem {
	if category == "" {
		return items
	}
	var out []models.GalleryItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Categories lists the distinct categories in first-seen order.
func Categories(items []models.GalleryItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}

// Span is the grid footprint of a thumbnail.
type Span int

const (
	SpanHalf Span = iota
	SpanFull
)

// Layout returns the span of every item: the last item of an odd-length
// list takes the full row.
func Layout(n int) []Span {
	spans := make([]Span, n)
	if n%2 != 0 {
		spans[n-1] = SpanFull
	}
	return spans
}
