package list

import (
	"image"
	"iter"
)

// Item represents a single list entry that can draw itself to a surface of
// type D.
type Item[D any] interface {
	// Height returns the item's height in cells. It must not change during a
	// single draw pass.
	Height() int

	// Draw renders the item with its top-left corner at origin. active
	// reports whether the item is the list's current item. Items must not
	// assume the area under them has been cleared.
	Draw(d D, origin image.Point, active bool) error
}

// Source is an index-addressed sequence of items backing a [List]. The List
// never mutates a Source; its content may only change between List
// operations.
type Source[D any] interface {
	// Len returns the number of items.
	Len() int

	// Height returns the height of the item at idx.
	Height(idx int) int

	// Draw draws the item at idx with its top-left corner at origin.
	Draw(d D, idx int, origin image.Point, active bool) error
}

// Items is a [Source] backed by a slice of items.
type Items[D any] []Item[D]

var _ Source[any] = Items[any](nil)

// Len implements Source.
func (s Items[D]) Len() int {
	return len(s)
}

// Height implements Source.
func (s Items[D]) Height(idx int) int {
	return s[idx].Height()
}

// Draw implements Source.
func (s Items[D]) Draw(d D, idx int, origin image.Point, active bool) error {
	return s[idx].Draw(d, origin, active)
}

// All returns an iterator over the items and their indices.
func (s Items[D]) All() iter.Seq2[int, Item[D]] {
	return func(yield func(int, Item[D]) bool) {
		for i, it := range s {
			if !yield(i, it) {
				return
			}
		}
	}
}
