package items

import (
	"image"

	"github.com/charmbracelet/vlist/internal/ui/display"
	"github.com/charmbracelet/vlist/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
)

// Text is a single line of text in a box of fixed size. The active item is
// marked and emphasized.
type Text struct {
	text   string
	width  int
	height int
	sty    *styles.Styles
}

var _ Item = (*Text)(nil)

// NewText creates a new text item.
func NewText(sty *styles.Styles, text string, width, height int) *Text {
	return &Text{
		text:   text,
		width:  width,
		height: max(0, height),
		sty:    sty,
	}
}

// Text returns the item text.
func (t *Text) Text() string {
	return t.text
}

// Height implements list.Item.
func (t *Text) Height() int {
	return t.height
}

// Draw implements list.Item.
func (t *Text) Draw(d *display.Display, origin image.Point, active bool) error {
	if t.height == 0 || t.width <= 0 {
		return nil
	}
	return d.DrawString(origin, t.width, t.render(active))
}

func (t *Text) render(active bool) string {
	style, icon := t.sty.Item.Inactive, styles.InactiveIcon
	if active {
		style, icon = t.sty.Item.Active, styles.ActiveIcon
	}
	line := icon + " " + ansi.Truncate(t.text, max(0, t.width-2), "…")
	return style.Width(t.width).Height(t.height).MaxHeight(t.height).Render(line)
}
