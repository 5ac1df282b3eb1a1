package items

import (
	"image"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/vlist/internal/ui/display"
)

// Spacer is an empty item that takes up vertical space.
type Spacer struct {
	width  int
	height int
}

var _ Item = (*Spacer)(nil)

// NewSpacer creates a new spacer of the given size.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{
		width:  width,
		height: max(0, height),
	}
}

// Height implements list.Item.
func (s *Spacer) Height() int {
	return s.height
}

// Draw implements list.Item.
// Spacers don't draw anything, they only clear the area they cover.
func (s *Spacer) Draw(d *display.Display, origin image.Point, _ bool) error {
	return d.Clear(uv.Rect(origin.X, origin.Y, s.width, s.height))
}
