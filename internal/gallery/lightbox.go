package gallery

import (
	"errors"
	"fmt"

	"kz.dev/internal/models"
)

var (
	// ErrEmptyGallery is returned when opening a gallery with no items.
	ErrEmptyGallery = errors.New("gallery has no items")
	// ErrIndexOutOfRange is returned when opening at an index outside the list.
	ErrIndexOutOfRange = errors.New("gallery index out of range")
)

// Keys understood by HandleKey.
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Pointer actions addressable by URL.
const (
	ActionNext     = "next"
	ActionPrev     = "prev"
	ActionClose    = "close"
	ActionBackdrop = "backdrop"
)

// Lightbox is the modal viewer over an ordered item list.
type Lightbox struct {
	owner   string
	items   []models.GalleryItem
	lock    *ScrollLock
	release func()
	open    bool
	current int
}

// NewLightbox binds a viewer to items and the page scroll lock. owner
// identifies the viewer as the lock holder.
func NewLightbox(owner string, items []models.GalleryItem, lock *ScrollLock) *Lightbox {
	return &Lightbox{
		owner: owner,
		items: items,
		lock:  lock,
	}
}

// Open shows the item at index and suppresses page scroll.
func (lb *Lightbox) Open(index int) error {
	n := len(lb.items)
	if n == 0 {
		return ErrEmptyGallery
	}
	if !InRange(index, n) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, n)
	}
	if lb.release == nil {
		release, err := lb.lock.Acquire(lb.owner)
		if err != nil {
			return fmt.Errorf("open lightbox: %w", err)
		}
		lb.release = release
	}
	lb.current = index
	lb.open = true
	return nil
}

// Close hides the viewer and restores page scroll.
func (lb *Lightbox) Close() {
	lb.open = false
	if lb.release != nil {
		lb.release()
		lb.release = nil
	}
}

// Teardown is called when the viewer is removed from the page.
func (lb *Lightbox) Teardown() {
	lb.Close()
}

// Next advances to the following item, wrapping at the end.
func (lb *Lightbox) Next() {
	if !lb.open {
		return
	}
	lb.current = Next(lb.current, len(lb.items))
}

// Prev retreats to the previous item, wrapping at the start.
func (lb *Lightbox) Prev() {
	if !lb.open {
		return
	}
	lb.current = Prev(lb.current, len(lb.items))
}

// HandleKey dispatches a keyboard key. Keys are only consumed while open.
func (lb *Lightbox) HandleKey(key string) bool {
	if !lb.open {
		return false
	}
	switch key {
	case KeyEscape:
		lb.Close()
	case KeyArrowRight:
		lb.Next()
	case KeyArrowLeft:
		lb.Prev()
	default:
		return false
	}
	return true
}

// ClickBackdrop closes the viewer. Clicks inside the image area have no
// action and leave it open.
func (lb *Lightbox) ClickBackdrop() {
	lb.Close()
}

// IsOpen reports whether the viewer is showing.
func (lb *Lightbox) IsOpen() bool {
	return lb.open
}

// Index returns the current item index.
func (lb *Lightbox) Index() int {
	return lb.current
}

// Len returns the number of items.
func (lb *Lightbox) Len() int {
	return len(lb.items)
}

// Current returns the shown item. ok is false while closed.
func (lb *Lightbox) Current() (models.GalleryItem, bool) {
	if !lb.open {
		return models.GalleryItem{}, false
	}
	return lb.items[lb.current], true
}

// Position returns the 1-based position and the total, as shown in the caption.
func (lb *Lightbox) Position() (int, int) {
	return lb.current + 1, len(lb.items)
}

// NextIndex returns the index Next would move to.
func (lb *Lightbox) NextIndex() int {
	return Next(lb.current, len(lb.items))
}

// PrevIndex returns the index Prev would move to.
func (lb *Lightbox) PrevIndex() int {
	return Prev(lb.current, len(lb.items))
}
