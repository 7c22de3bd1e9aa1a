// Package scrollspy tracks which page section sits in the active viewport
// band so the matching navigation entry can be highlighted.
package scrollspy

import (
	"slices"
	"sync"
)

// RootMargin shrinks the viewport to its upper-middle band: the top 20% and
// the bottom 60% never activate a section.
const RootMargin = "-20% 0px -60% 0px"

// Entry is one visibility change delivered by the observer.
type Entry struct {
	ID           string
	Intersecting bool
}

// Spy keeps the active section identifier.
type Spy struct {
	mu       sync.Mutex
	observed map[string]bool
	order    []string
	active   string
	session  uint64
}

// New returns a spy whose active section starts as initial.
func New(initial string) *Spy {
	return &Spy{
		observed: make(map[string]bool),
		active:   initial,
	}
}

// Observe replaces the observed section set. The returned teardown stops
// observation; calling it more than once, or after a later Observe, is a no-op.
func (s *Spy) Observe(ids []string) (teardown func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session++
	session := s.session
	s.observed = make(map[string]bool, len(ids))
	s.order = s.order[:0]
	for _, id := range ids {
		if id == "" || s.observed[id] {
			continue
		}
		s.observed[id] = true
		s.order = append(s.order, id)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.session != session {
			return
		}
		s.observed = make(map[string]bool)
		s.order = nil
	}
}

// Notify applies entries in delivery order; the last intersecting one wins.
func (s *Spy) Notify(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		if e.Intersecting && s.observed[e.ID] {
			s.active = e.ID
		}
	}
}

// Active returns the active section identifier.
func (s *Spy) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Observed returns the observed identifiers in registration order.
func (s *Spy) Observed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.order)
}

// Load returns a spy observing ids as a freshly loaded page reports them:
// the first section is in view, so it starts active.
func Load(ids []string) *Spy {
	spy := New("")
	spy.Observe(ids)
	if observed := spy.Observed(); len(observed) > 0 {
		spy.Notify([]Entry{{ID: observed[0], Intersecting: true}})
	}
	return spy
}
