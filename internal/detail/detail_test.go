package detail

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"kz.dev/internal/content"
	"kz.dev/internal/i18n"
	"kz.dev/internal/linksafe"
	"kz.dev/internal/models"
	"kz.dev/internal/views"
)

func testEnv(t *testing.T) views.Env {
	t.Helper()
	b, err := i18n.LoadEmbedded("ja")
	require.NoError(t, err)
	return views.Env{
		L:     b.Localizer(language.English),
		Links: linksafe.NewGuard(zap.NewNop()),
	}
}

func minimal() *models.ProjectDetail {
	return &models.ProjectDetail{
		Summary: models.Summary{Problem: "p", Solution: "s", Impact: "i"},
		Outcome: models.Outcome{Results: "r"},
	}
}

func TestSummaryAndOutcomeOnly(t *testing.T) {
	env := testEnv(t)

	got := TOC(env, Compose(minimal()))
	want := []views.TOCItem{
		{ID: "summary", Label: "Summary"},
		{ID: "outcome", Label: "Outcome"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TOC mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeOrderAndPresence(t *testing.T) {
	d := minimal()
	d.NextSteps = []models.ContentItem{{Description: "n"}}
	d.Process = []models.TimelineStep{{Step: "1", Description: "x"}}
	d.KeyScreens = []models.KeyScreen{{Title: "Home", Src: "/a.png", Alt: "a"}}
	d.HowItWorks = &models.HowItWorks{Title: "Pipeline", Steps: []models.Step{{Title: "s"}}}
	d.Roadmap = &models.Roadmap{}
	d.Features = []models.Feature{}

	got := IDs(Compose(d))
	assert.Equal(t, []string{"summary", "how-it-works", "gallery", "process", "outcome", "next-steps"}, got)
}

func TestHowItWorksUsesOwnTitle(t *testing.T) {
	env := testEnv(t)
	d := minimal()
	d.HowItWorks = &models.HowItWorks{Title: "How It Works", Steps: []models.Step{{Title: "s"}}}

	toc := TOC(env, Compose(d))
	require.Len(t, toc, 3)
	assert.Equal(t, "How It Works", toc[1].Label)

	d.HowItWorks.Title = ""
	toc = TOC(env, Compose(d))
	assert.Equal(t, "How it works", toc[1].Label)
}

func TestComposeNil(t *testing.T) {
	assert.Empty(t, Compose(nil))
	assert.ErrorIs(t, Validate(nil), ErrNoCaseStudy)
	assert.ErrorIs(t, Validate(&models.ProjectDetail{Outcome: models.Outcome{Results: "r"}}), models.ErrMissingSummary)
	assert.NoError(t, Validate(minimal()))
}

func TestPageBodyMatchesTOC(t *testing.T) {
	store, err := content.LoadEmbedded()
	require.NoError(t, err)
	env := testEnv(t)

	for _, p := range store.Projects() {
		if p.Detail == nil {
			continue
		}
		props := Page(Context{Env: env, ProjectID: p.ID}, p, nil, nil, nil)
		require.Len(t, props.Sections, len(props.TOC), p.ID)

		for i, item := range props.TOC {
			var b strings.Builder
			require.NoError(t, props.Sections[i].Render(&b))
			assert.True(t, strings.HasPrefix(b.String(), `<section id="`+item.ID+`"`), "%s: section %d", p.ID, i)
		}
	}
}

func TestEmbeddedAINewsBotSections(t *testing.T) {
	store, err := content.LoadEmbedded()
	require.NoError(t, err)

	p, err := store.Project("ai-news-bot")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"summary", "how-it-works", "roadmap", "gallery", "features", "outcome"},
		IDs(Compose(p.Detail)))
}
