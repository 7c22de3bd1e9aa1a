package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetail() *ProjectDetail {
	return &ProjectDetail{
		Summary: Summary{Problem: "p", Solution: "s", Impact: "i"},
		Outcome: Outcome{Results: "shipped"},
	}
}

func TestProjectValidate(t *testing.T) {
	p := Project{ID: "x", Name: "X", Status: StatusCompleted}
	assert.NoError(t, p.Validate())

	p.Status = "archived"
	assert.ErrorContains(t, p.Validate(), `invalid status "archived"`)

	p = Project{Name: "X", Status: StatusCompleted}
	assert.Error(t, p.Validate())

	p = Project{ID: "x", Name: "X", Status: StatusInProgress, Detail: &ProjectDetail{}}
	assert.ErrorIs(t, p.Validate(), ErrMissingSummary)
}

func TestDetailValidate(t *testing.T) {
	d := validDetail()
	require.NoError(t, d.Validate())

	d.Outcome = Outcome{}
	assert.ErrorIs(t, d.Validate(), ErrMissingOutcome)

	d = validDetail()
	d.Outcome.Scores = []Score{{Label: "perf", Value: 101}}
	assert.Error(t, d.Validate())

	d = validDetail()
	d.KeyScreens = []KeyScreen{{Title: "Home", Src: "/a.png"}}
	d.Gallery = []GalleryItem{{ID: "ks-Home", Src: "/b.png"}}
	assert.ErrorContains(t, d.Validate(), "duplicate gallery item id")

	d = validDetail()
	d.Gallery = []GalleryItem{{Src: "/b.png"}}
	assert.ErrorContains(t, d.Validate(), "id is required")
}

func TestGalleryItemsPutsKeyScreensFirst(t *testing.T) {
	d := validDetail()
	d.Gallery = []GalleryItem{{ID: "g1", Src: "/g1.png", Alt: "first"}}
	d.KeyScreens = []KeyScreen{{Title: "Dashboard", Src: "/ks.png", Alt: "dash"}}

	items := d.GalleryItems()
	require.Len(t, items, 2)
	assert.Equal(t, "ks-Dashboard", items[0].ID)
	assert.Equal(t, MediaUIScreenshot, items[0].Type)
	assert.Equal(t, "g1", items[1].ID)
	assert.Equal(t, "first", items[1].Heading())

	var nilDetail *ProjectDetail
	assert.Nil(t, nilDetail.GalleryItems())
}

func TestScoreGrade(t *testing.T) {
	assert.Equal(t, "good", Score{Value: 90}.Grade())
	assert.Equal(t, "fair", Score{Value: 89}.Grade())
	assert.Equal(t, "fair", Score{Value: 50}.Grade())
	assert.Equal(t, "poor", Score{Value: 49}.Grade())
}

func TestCaseStudyURL(t *testing.T) {
	p := Project{ID: "urban-grind"}
	assert.Empty(t, p.CaseStudyURL())

	p.Detail = validDetail()
	assert.Equal(t, "/projects/urban-grind", p.CaseStudyURL())
}

func TestRoadmapItemsWithStatus(t *testing.T) {
	r := Roadmap{Items: []RoadmapItem{
		{Label: "a", Status: RoadmapNow},
		{Label: "b", Status: RoadmapFuture},
		{Label: "c", Status: RoadmapNow},
	}}
	now := r.ItemsWithStatus(RoadmapNow)
	require.Len(t, now, 2)
	assert.Equal(t, "c", now[1].Label)
	assert.Empty(t, r.ItemsWithStatus(RoadmapNext))
}

func TestLinksEmpty(t *testing.T) {
	assert.True(t, Links{}.Empty())
	assert.False(t, Links{Docs: "https://example.com"}.Empty())
}
