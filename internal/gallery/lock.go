package gallery

import (
	"errors"
	"sync"
)

// ErrScrollLockHeld is returned when another owner already holds the lock.
var ErrScrollLockHeld = errors.New("scroll lock held by another owner")

// ScrollLock models the page-level "no scroll" state. At most one owner
// holds it. Every Acquire returns a release func that is safe to call many
// times; the page unlocks once all of the owner's holds are released.
type ScrollLock struct {
	mu    sync.Mutex
	owner string
	holds int
	gen   uint64
}

// NewScrollLock returns an unlocked ScrollLock.
func NewScrollLock() *ScrollLock {
	return &ScrollLock{}
}

// Acquire locks page scroll on behalf of owner. Re-acquiring by the current
// owner adds a hold; each hold is released by its own func.
func (l *ScrollLock) Acquire(owner string) (release func(), err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.owner != "" && l.owner != owner {
		return nil, ErrScrollLockHeld
	}
	if l.owner == "" {
		l.gen++
	}
	l.owner = owner
	l.holds++
	gen := l.gen

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			// a stale release must not touch a later hold
			if l.gen != gen || l.owner != owner {
				return
			}
			l.holds--
			if l.holds == 0 {
				l.owner = ""
			}
		})
	}, nil
}

// Locked reports whether page scroll is currently suppressed.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner != ""
}

// Owner returns the current holder, or "" when unlocked.
func (l *ScrollLock) Owner() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner
}
