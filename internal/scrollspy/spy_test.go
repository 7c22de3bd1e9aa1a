package scrollspy

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"kz.dev/internal/models"
)

var homeNav = []models.NavItem{
	{Label: "nav.home", Href: "/#home"},
	{Label: "nav.projects", Href: "/#projects"},
	{Label: "nav.about", Href: "/#about"},
	{Label: "nav.skills", Href: "/#skills"},
	{Label: "nav.contact", Href: "/#contact"},
}

func TestNotifyLastIntersectingWins(t *testing.T) {
	spy := New("home")
	spy.Observe(Targets(homeNav))

	spy.Notify([]Entry{
		{ID: "projects", Intersecting: true},
		{ID: "about", Intersecting: true},
		{ID: "skills", Intersecting: false},
	})
	assert.Equal(t, "about", spy.Active())

	spy.Notify([]Entry{{ID: "about", Intersecting: false}})
	assert.Equal(t, "about", spy.Active(), "leaving does not clear the active section")
}

func TestNotifyIgnoresUnobservedIDs(t *testing.T) {
	spy := New("home")
	spy.Observe([]string{"home", "projects"})

	spy.Notify([]Entry{{ID: "summary", Intersecting: true}})
	assert.Equal(t, "home", spy.Active())
}

func TestObserveReplacesSetAndTeardown(t *testing.T) {
	spy := New("home")
	teardownHome := spy.Observe(Targets(homeNav))
	assert.Equal(t, []string{"home", "projects", "about", "skills", "contact"}, spy.Observed())

	teardownDetail := spy.Observe([]string{"summary", "gallery", "outcome", "summary"})
	if diff := cmp.Diff([]string{"summary", "gallery", "outcome"}, spy.Observed()); diff != "" {
		t.Fatalf("observed mismatch (-want +got):\n%s", diff)
	}

	// stale teardown from the previous route leaves the new set alone
	teardownHome()
	assert.Len(t, spy.Observed(), 3)

	teardownDetail()
	teardownDetail()
	assert.Empty(t, spy.Observed())

	spy.Notify([]Entry{{ID: "gallery", Intersecting: true}})
	assert.Equal(t, "home", spy.Active(), "entries after teardown are dropped")
}

func TestSpyConcurrentNotifyAndObserve(t *testing.T) {
	spy := New("home")
	ids := Targets(homeNav)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			spy.Notify([]Entry{{ID: ids[i%len(ids)], Intersecting: true}})
		}(i)
		go func() {
			defer wg.Done()
			spy.Observe(ids)
		}()
	}
	wg.Wait()
	assert.Contains(t, append(ids, "home"), spy.Active())
}

func TestNavActiveOnlyOnHome(t *testing.T) {
	home := NewNav(homeNav, "/")
	assert.True(t, home.Spied())
	assert.True(t, home.IsActive(homeNav[0]))
	assert.False(t, home.IsActive(homeNav[1]))

	home.Active = "projects"
	assert.True(t, home.IsActive(homeNav[1]))

	detail := NewNav(homeNav, "/projects/kirei-routine")
	detail.Active = "projects"
	assert.False(t, detail.Spied())
	for _, item := range homeNav {
		assert.False(t, detail.IsActive(item))
	}
}

func TestInterceptClick(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		href      string
		target    string
		intercept bool
	}{
		{"home anchor", "/", "/#projects", "projects", true},
		{"bare fragment", "/", "#contact", "contact", true},
		{"detail page anchor navigates", "/projects/x", "/#projects", "", false},
		{"route link", "/", "/projects/x", "", false},
		{"anchor on another page", "/", "/projects/kirei-routine#gallery", "", false},
		{"empty fragment", "/", "/#", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := InterceptClick(tt.path, tt.href)
			assert.Equal(t, tt.intercept, ok)
			assert.Equal(t, tt.target, target)
		})
	}
}

func TestLoadStartsOnFirstSection(t *testing.T) {
	spy := Load([]string{"summary", "gallery", "summary", "outcome"})
	assert.Equal(t, "summary", spy.Active())
	assert.Equal(t, []string{"summary", "gallery", "outcome"}, spy.Observed())

	spy.Notify([]Entry{{ID: "outcome", Intersecting: true}})
	assert.Equal(t, "outcome", spy.Active())

	empty := Load(nil)
	assert.Empty(t, empty.Active())
	assert.Empty(t, empty.Observed())
}

func TestNewNavObservesHomeSections(t *testing.T) {
	home := NewNav(homeNav, "/")
	assert.Equal(t, "home", home.Active)
	assert.Equal(t, Targets(homeNav), home.Targets)

	detail := NewNav(homeNav, "/projects/x")
	assert.Empty(t, detail.Active)
	assert.Empty(t, detail.Targets)
}

func TestNavConfig(t *testing.T) {
	home := NewNav(homeNav, "/")
	assert.Equal(t, map[string]string{
		AttrMargin:  "-20% 0px -60% 0px",
		AttrTargets: "home projects about skills contact",
	}, home.Config())

	assert.Nil(t, NewNav(homeNav, "/projects/x").Config())
	assert.Nil(t, Config(nil))
}
