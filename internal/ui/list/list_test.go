package list

import (
	"errors"
	"image"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"
)

// drawCall records a single item draw.
type drawCall struct {
	id     int
	origin image.Point
	active bool
}

// recorder is a surface that records item draws and can be told to fail.
type recorder struct {
	calls  []drawCall
	failID int
	err    error
}

func newRecorder() *recorder {
	return &recorder{failID: -1}
}

func (r *recorder) ids() []int {
	ids := make([]int, 0, len(r.calls))
	for _, c := range r.calls {
		ids = append(ids, c.id)
	}
	return ids
}

// testItem is a fixed height item that draws into a recorder.
type testItem struct {
	id     int
	height int
}

func (t testItem) Height() int {
	return t.height
}

func (t testItem) Draw(r *recorder, origin image.Point, active bool) error {
	if t.id == r.failID {
		return r.err
	}
	r.calls = append(r.calls, drawCall{id: t.id, origin: origin, active: active})
	return nil
}

func newItems(heights ...int) Items[*recorder] {
	items := make(Items[*recorder], len(heights))
	for i, h := range heights {
		items[i] = testItem{id: i, height: h}
	}
	return items
}

func newTestList(viewport uv.Rectangle, heights ...int) *List[*recorder, Items[*recorder]] {
	return New[*recorder](viewport, newItems(heights...))
}

func TestNewList(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 16, 240, 532), 32, 32, 32)
	require.Equal(t, 0, l.Current())
	require.Equal(t, 0, l.Offset())
	require.Equal(t, 3, l.Len())
	require.Equal(t, uv.Rect(0, 16, 240, 532), l.Viewport())
}

func TestSetCurrentOutOfRangeSelectsFirst(t *testing.T) {
	t.Parallel()

	for _, idx := range []int{5, 6, 255, 1 << 20, -1, -100} {
		l := newTestList(uv.Rect(0, 0, 10, 50), 20, 20, 20, 20, 20)
		l.SetCurrent(3)
		require.Equal(t, 3, l.Current())

		l.SetCurrent(idx)
		require.Equal(t, 0, l.Current(), "index %d", idx)
		require.Equal(t, 0, l.Offset(), "index %d", idx)
	}
}

func TestScrollDownBottomAligns(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 20, 20, 20, 20, 20)
	l.SetCurrent(4)
	require.Equal(t, 4, l.Current())
	require.Equal(t, 50, l.Offset())
}

func TestScrollUpTopAligns(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 20, 20, 20, 20, 20)
	l.SetCurrent(4)
	l.SetCurrent(0)
	require.Equal(t, 0, l.Current())
	require.Equal(t, 0, l.Offset())
}

func TestOversizedItemTopAligns(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 10, 200, 10)
	l.SetCurrent(1)
	require.Equal(t, 10, l.Offset())

	// Selecting it again keeps it top aligned.
	l.SetCurrent(1)
	require.Equal(t, 10, l.Offset())

	l.SetCurrent(2)
	require.Equal(t, 220-50, l.Offset())
}

func TestVisibleItemNoScroll(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 20, 20, 20, 20, 20)
	l.SetCurrent(4)
	require.Equal(t, 50, l.Offset())

	// Item 3 spans [60, 80) and is already in view.
	l.SetCurrent(3)
	require.Equal(t, 50, l.Offset())

	// Item 2 spans [40, 60) and is cut off at the top.
	l.SetCurrent(2)
	require.Equal(t, 40, l.Offset())
}

func TestCurrentAlwaysInView(t *testing.T) {
	t.Parallel()

	heights := []int{7, 13, 1, 25, 30, 4, 0, 18, 9, 22, 11, 3}
	viewport := uv.Rect(2, 5, 40, 30)

	for _, order := range [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		{5, 11, 0, 9, 3, 7, 1, 10, 2, 6, 8, 4},
	} {
		l := newTestList(viewport, heights...)
		for _, idx := range order {
			l.SetCurrent(idx)
			require.Equal(t, idx, l.Current())

			span, ok := l.SpanOf(idx)
			require.True(t, ok)
			require.GreaterOrEqual(t, span.Top, l.Offset(), "item %d", idx)
			require.LessOrEqual(t, span.Bottom, l.Offset()+viewport.Dy(), "item %d", idx)
		}
	}
}

func TestReselectionIsIdempotent(t *testing.T) {
	t.Parallel()

	heights := []int{10, 200, 10, 35, 5, 60}
	for idx := range heights {
		l := newTestList(uv.Rect(0, 0, 10, 50), heights...)
		l.SetCurrent(idx)
		once := l.Offset()
		l.SetCurrent(l.Current())
		l.SetCurrent(l.Current())
		require.Equal(t, once, l.Offset(), "item %d", idx)
	}
}

func TestDrawCullsInvisibleItems(t *testing.T) {
	t.Parallel()

	heights := []int{20, 20, 20, 20, 20}
	viewport := uv.Rect(0, 0, 10, 50)

	for current := range heights {
		l := newTestList(viewport, heights...)
		l.SetCurrent(current)

		r := newRecorder()
		require.NoError(t, l.Draw(r))

		var want []int
		for i, span := range l.Spans() {
			if span.Bottom > l.Offset() && span.Top < l.Offset()+viewport.Dy() {
				want = append(want, i)
			}
		}
		require.Equal(t, want, r.ids(), "current %d", current)
	}
}

func TestDrawPartialVisibility(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 20, 20, 20, 20, 20)
	l.SetCurrent(4) // offset 50, viewport shows [50, 100)
	l.SetCurrent(2) // offset 40, viewport shows [40, 90)

	r := newRecorder()
	require.NoError(t, l.Draw(r))
	require.Equal(t, []int{2, 3, 4}, r.ids())
	require.Equal(t, image.Pt(0, 0), r.calls[0].origin)
	require.Equal(t, image.Pt(0, 40), r.calls[2].origin)
}

func TestDrawOrigins(t *testing.T) {
	t.Parallel()

	viewport := uv.Rect(3, 16, 20, 50)
	l := newTestList(viewport, 20, 20, 20, 20, 20)

	r := newRecorder()
	require.NoError(t, l.Draw(r))
	require.Equal(t, []drawCall{
		{id: 0, origin: image.Pt(3, 16), active: true},
		{id: 1, origin: image.Pt(3, 36), active: false},
		{id: 2, origin: image.Pt(3, 56), active: false},
	}, r.calls)

	l.SetCurrent(4)
	r = newRecorder()
	require.NoError(t, l.Draw(r))
	require.Equal(t, []drawCall{
		{id: 2, origin: image.Pt(3, 6), active: false},
		{id: 3, origin: image.Pt(3, 26), active: false},
		{id: 4, origin: image.Pt(3, 46), active: true},
	}, r.calls)
}

func TestDrawActiveFlag(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 100), 10, 10, 10)
	l.SetCurrent(1)

	r := newRecorder()
	require.NoError(t, l.Draw(r))
	require.Len(t, r.calls, 3)
	for _, c := range r.calls {
		require.Equal(t, c.id == 1, c.active, "item %d", c.id)
	}
}

func TestDrawForwardsSurfaceError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	l := newTestList(uv.Rect(0, 0, 10, 100), 10, 10, 10, 10)

	r := newRecorder()
	r.failID = 1
	r.err = errBoom

	err := l.Draw(r)
	require.Same(t, errBoom, err)
	require.Equal(t, []int{0}, r.ids())
}

func TestEmptySource(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50))

	r := newRecorder()
	require.NoError(t, l.Draw(r))
	require.Empty(t, r.calls)

	l.SetCurrent(3)
	l.SelectNext()
	l.SelectPrev()
	l.SelectLast()
	require.Equal(t, 0, l.Current())
	require.Equal(t, 0, l.Offset())

	_, _, ok := l.VisibleRange()
	require.False(t, ok)
	require.NoError(t, l.Draw(r))
	require.Empty(t, r.calls)
}

func TestSelectNextPrev(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 20, 20, 20)

	l.SelectNext()
	require.Equal(t, 1, l.Current())
	l.SelectNext()
	require.Equal(t, 2, l.Current())
	require.Equal(t, 10, l.Offset())

	// Past the end goes back to the first item.
	l.SelectNext()
	require.Equal(t, 0, l.Current())
	require.Equal(t, 0, l.Offset())

	// Before the start stays on the first item.
	l.SelectPrev()
	require.Equal(t, 0, l.Current())

	l.SelectLast()
	require.Equal(t, 2, l.Current())
	l.SelectPrev()
	require.Equal(t, 1, l.Current())
	l.SelectFirst()
	require.Equal(t, 0, l.Current())
}

func TestVisibleRange(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 20, 20, 20, 20, 20)

	first, last, ok := l.VisibleRange()
	require.True(t, ok)
	require.Equal(t, 0, first)
	require.Equal(t, 2, last)

	l.SetCurrent(4)
	first, last, ok = l.VisibleRange()
	require.True(t, ok)
	require.Equal(t, 2, first)
	require.Equal(t, 4, last)

	require.False(t, l.IsVisible(1))
	require.True(t, l.IsVisible(2))
	require.False(t, l.IsVisible(5))
}

func TestItemAt(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 10, 10, 50), 20, 20, 20, 20, 20)

	idx, itemY := l.ItemAt(0, 10)
	require.Equal(t, 0, idx)
	require.Equal(t, 0, itemY)

	idx, itemY = l.ItemAt(0, 35)
	require.Equal(t, 1, idx)
	require.Equal(t, 5, itemY)

	idx, itemY = l.ItemAt(0, 9)
	require.Equal(t, -1, idx)
	require.Equal(t, -1, itemY)

	idx, _ = l.ItemAt(0, 60)
	require.Equal(t, -1, idx)

	// Rows inside the viewport but columns outside of it hit nothing.
	idx, itemY = l.ItemAt(10, 35)
	require.Equal(t, -1, idx)
	require.Equal(t, -1, itemY)
	idx, _ = l.ItemAt(-1, 35)
	require.Equal(t, -1, idx)
	idx, _ = l.ItemAt(9, 35)
	require.Equal(t, 1, idx)

	l.SetCurrent(4) // offset 50
	idx, itemY = l.ItemAt(0, 10)
	require.Equal(t, 2, idx)
	require.Equal(t, 10, itemY)
}

func TestItemAtBelowLastItem(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 10, 10)
	idx, itemY := l.ItemAt(0, 30)
	require.Equal(t, -1, idx)
	require.Equal(t, -1, itemY)
}

func TestSourceShrinksBetweenCalls(t *testing.T) {
	t.Parallel()

	items := newItems(20, 20, 20, 20, 20)
	l := New[*recorder](uv.Rect(0, 0, 10, 50), &items)
	l.SetCurrent(4)
	require.Equal(t, 50, l.Offset())

	items = items[:2]
	l.SetCurrent(l.Current())
	require.Equal(t, 0, l.Current())
	require.Equal(t, 0, l.Offset())

	r := newRecorder()
	require.NoError(t, l.Draw(r))
	require.Equal(t, []int{0, 1}, r.ids())
}

func TestScrollToCurrentAfterHeightChange(t *testing.T) {
	t.Parallel()

	items := newItems(20, 20, 20)
	l := New[*recorder](uv.Rect(0, 0, 10, 50), &items)
	l.SetCurrent(1)
	require.Equal(t, 0, l.Offset())

	items[0] = testItem{id: 0, height: 45}
	l.ScrollToCurrent()
	require.Equal(t, 15, l.Offset())
	require.Equal(t, 1, l.Current())
}

func TestItemsAll(t *testing.T) {
	t.Parallel()

	items := newItems(1, 2, 3)
	var total int
	for i, it := range items.All() {
		require.Equal(t, i+1, it.Height())
		total += it.Height()
	}
	require.Equal(t, 6, total)

	for i := range items.All() {
		if i == 1 {
			break
		}
	}
}

func TestSpanOf(t *testing.T) {
	t.Parallel()

	l := newTestList(uv.Rect(0, 0, 10, 50), 5, 10, 15)

	span, ok := l.SpanOf(2)
	require.True(t, ok)
	require.Equal(t, Span{Top: 15, Bottom: 30}, span)
	require.Equal(t, 15, span.Height())

	_, ok = l.SpanOf(3)
	require.False(t, ok)
	_, ok = l.SpanOf(-1)
	require.False(t, ok)
}
