// Package gallery implements the lightbox viewer behind project galleries:
// cyclic index navigation, keyboard dispatch and the page scroll lock the
// viewer holds while it is open.
package gallery

// Wrap maps any integer onto [0, n). n must be positive.
func Wrap(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// Next returns the index after i, wrapping to 0 past the last item.
func Next(i, n int) int {
	return Wrap(i+1, n)
}

// Prev returns the index before i, wrapping to n-1 before the first item.
func Prev(i, n int) int {
	return Wrap(i-1, n)
}

// InRange reports whether i addresses an item of an n-length list.
func InRange(i, n int) bool {
	return i >= 0 && i < n
}
