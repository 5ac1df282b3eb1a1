package list

import (
	"image"
	"iter"

	uv "github.com/charmbracelet/ultraviolet"
)

// Span is the vertical extent [Top, Bottom) of an item, measured from the top
// of the first item.
type Span struct {
	Top, Bottom int
}

// Height returns the height of the span.
func (s Span) Height() int {
	return s.Bottom - s.Top
}

// List is a single-selection list of items stacked vertically inside a fixed
// viewport. The list scrolls so the current item stays visible.
//
// D is the type of the drawing surface and S the backing [Source]. A List is
// not safe for concurrent use.
type List[D any, S Source[D]] struct {
	// viewport is the on-screen area of the list. It never changes.
	viewport uv.Rectangle

	// current is the index of the selected item. It is always a valid index
	// when the source is not empty.
	current int

	// offset is the number of cells the content is scrolled up by.
	offset int

	source S
}

// New creates a new list drawing source inside viewport. The first item is
// selected.
func New[D any, S Source[D]](viewport uv.Rectangle, source S) *List[D, S] {
	return &List[D, S]{
		viewport: viewport.Canon(),
		source:   source,
	}
}

// Viewport returns the on-screen area of the list.
func (l *List[D, S]) Viewport() uv.Rectangle {
	return l.viewport
}

// Len returns the number of items in the source.
func (l *List[D, S]) Len() int {
	return l.source.Len()
}

// Current returns the index of the current item.
func (l *List[D, S]) Current() int {
	return l.current
}

// Offset returns the scroll offset in cells.
func (l *List[D, S]) Offset() int {
	return l.offset
}

// SetCurrent selects the item at index and scrolls it into view. An index
// out of range, including any negative index, selects the first item.
func (l *List[D, S]) SetCurrent(index int) {
	if index < 0 || index >= l.source.Len() {
		l.current = 0
	} else {
		l.current = index
	}
	l.ScrollToCurrent()
}

// SelectNext selects the item after the current one. Past the last item the
// selection goes back to the first one.
func (l *List[D, S]) SelectNext() {
	l.SetCurrent(l.current + 1)
}

// SelectPrev selects the item before the current one. Before the first item
// the selection stays on the first one.
func (l *List[D, S]) SelectPrev() {
	l.SetCurrent(l.current - 1)
}

// SelectFirst selects the first item.
func (l *List[D, S]) SelectFirst() {
	l.SetCurrent(0)
}

// SelectLast selects the last item.
func (l *List[D, S]) SelectLast() {
	l.SetCurrent(l.source.Len() - 1)
}

// ScrollToCurrent adjusts the scroll offset so the current item is visible.
// Items taller than the viewport are aligned to the top of the viewport.
func (l *List[D, S]) ScrollToCurrent() {
	span, ok := l.SpanOf(l.current)
	if !ok {
		return
	}

	height := l.viewport.Dy()
	top, bottom := l.offset, l.offset+height
	if span.Top < top {
		l.offset = span.Top
	} else if span.Bottom > bottom {
		l.offset = min(span.Bottom-height, span.Top)
	}
}

// Spans returns an iterator over the index and span of every item, in order.
func (l *List[D, S]) Spans() iter.Seq2[int, Span] {
	return func(yield func(int, Span) bool) {
		var y int
		n := l.source.Len()
		for i := range n {
			h := l.source.Height(i)
			if !yield(i, Span{Top: y, Bottom: y + h}) {
				return
			}
			y += h
		}
	}
}

// SpanOf returns the span of the item at idx. It returns false if idx is out
// of range.
func (l *List[D, S]) SpanOf(idx int) (Span, bool) {
	for i, span := range l.Spans() {
		if i == idx {
			return span, true
		}
	}
	return Span{}, false
}

// visible reports whether the span, in content coordinates, intersects the
// viewport at the current offset.
func (l *List[D, S]) visible(span Span) bool {
	return span.Bottom > l.offset && span.Top < l.offset+l.viewport.Dy()
}

// IsVisible returns whether any part of the item at idx is in view.
func (l *List[D, S]) IsVisible(idx int) bool {
	span, ok := l.SpanOf(idx)
	return ok && l.visible(span)
}

// VisibleRange returns the indices of the first and last items that are at
// least partially in view. ok is false if nothing is in view.
func (l *List[D, S]) VisibleRange() (first, last int, ok bool) {
	first, last = -1, -1
	for i, span := range l.Spans() {
		if span.Top >= l.offset+l.viewport.Dy() {
			break
		}
		if !l.visible(span) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last, first >= 0
}

// ItemAt returns the index of the item under the screen cell (x, y) and the
// row within that item. It returns -1, -1 if the cell is outside the viewport
// or below the last item.
func (l *List[D, S]) ItemAt(x, y int) (idx int, itemY int) {
	if !image.Pt(x, y).In(l.viewport) {
		return -1, -1
	}

	y = y - l.viewport.Min.Y + l.offset
	for i, span := range l.Spans() {
		if y >= span.Top && y < span.Bottom {
			return i, y - span.Top
		}
		if span.Top > y {
			break
		}
	}
	return -1, -1
}

// Draw draws the items that intersect the viewport to d. It returns the
// first error reported by the source, unchanged. The list does not clear the
// viewport.
func (l *List[D, S]) Draw(d D) error {
	x := l.viewport.Min.X
	dy := l.viewport.Min.Y - l.offset
	for i, span := range l.Spans() {
		if span.Top >= l.offset+l.viewport.Dy() {
			// Everything from here on is below the viewport.
			break
		}
		if !l.visible(span) {
			continue
		}
		origin := image.Pt(x, span.Top+dy)
		if err := l.source.Draw(d, i, origin, i == l.current); err != nil {
			return err
		}
	}
	return nil
}
