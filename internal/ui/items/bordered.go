package items

import (
	"image"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/vlist/internal/ui/display"
	"github.com/charmbracelet/vlist/internal/ui/styles"
)

// Bordered is a text item drawn inside a border. The active item gets a
// rounded, highlighted border.
type Bordered struct {
	content string
	width   int
	height  int
	sty     *styles.Styles
}

var _ Item = (*Bordered)(nil)

// NewBordered creates a new bordered item. Its height is measured once so it
// stays the same across draws.
func NewBordered(sty *styles.Styles, content string, width int) *Bordered {
	b := &Bordered{
		content: content,
		width:   width,
		sty:     sty,
	}
	b.height = max(lipgloss.Height(b.render(false)), lipgloss.Height(b.render(true)))
	return b
}

// Height implements list.Item.
func (b *Bordered) Height() int {
	return b.height
}

// Draw implements list.Item.
func (b *Bordered) Draw(d *display.Display, origin image.Point, active bool) error {
	return d.DrawString(origin, b.width, b.render(active))
}

func (b *Bordered) render(active bool) string {
	style := b.sty.Item.BorderInactive
	if active {
		style = b.sty.Item.BorderActive
	}
	return style.Width(max(0, b.width-style.GetHorizontalFrameSize())).Render(b.content)
}
