// Package display provides a fixed-size cell surface that list items draw
// into.
package display

import (
	"errors"
	"image"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/ultraviolet/screen"
	"github.com/charmbracelet/x/ansi"
)

// ErrClosed is returned when drawing to a closed display.
var ErrClosed = errors.New("display is closed")

// Display is a fixed-size grid of cells. Drawing outside its bounds is
// clipped. A Display is not safe for concurrent use.
type Display struct {
	buf    uv.ScreenBuffer
	closed bool
}

// New creates a new blank display of the given size in cells.
func New(width, height int) *Display {
	return &Display{
		buf: uv.NewScreenBuffer(max(0, width), max(0, height)),
	}
}

// Bounds returns the area covered by the display.
func (d *Display) Bounds() uv.Rectangle {
	return d.buf.Bounds()
}

// Width returns the width of the display in cells.
func (d *Display) Width() int {
	return d.Bounds().Dx()
}

// Height returns the height of the display in cells.
func (d *Display) Height() int {
	return d.Bounds().Dy()
}

// DrawString draws s, which may span several lines and contain ANSI styles,
// with its top-left corner at origin. Each line is at most width cells wide.
// Lines that fall outside the display are skipped.
func (d *Display) DrawString(origin image.Point, width int, s string) error {
	if d.closed {
		return ErrClosed
	}
	if width <= 0 || s == "" {
		return nil
	}

	bounds := d.Bounds()
	for i, line := range strings.Split(s, "\n") {
		y := origin.Y + i
		if y < bounds.Min.Y {
			continue
		}
		if y >= bounds.Max.Y {
			break
		}
		area := uv.Rect(origin.X, y, width, 1).Intersect(bounds)
		if area.Empty() {
			continue
		}
		uv.NewStyledString(line).Draw(&d.buf, area)
	}
	return nil
}

// Fill covers area with repetitions of content.
func (d *Display) Fill(area uv.Rectangle, content string) error {
	if d.closed {
		return ErrClosed
	}
	area = area.Intersect(d.Bounds())
	if area.Empty() || content == "" {
		return nil
	}

	line := strings.Repeat(content, area.Dx()/max(1, ansi.StringWidth(content)))
	for y := area.Min.Y; y < area.Max.Y; y++ {
		if err := d.DrawString(image.Pt(area.Min.X, y), area.Dx(), line); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the cells in area.
func (d *Display) Clear(area uv.Rectangle) error {
	if d.closed {
		return ErrClosed
	}
	area = area.Intersect(d.Bounds())
	if area.Empty() {
		return nil
	}
	screen.ClearArea(&d.buf, area)
	return nil
}

// Close closes the display. Any further drawing fails with [ErrClosed].
func (d *Display) Close() {
	d.closed = true
}

// Render returns the content of the display, one line per row, with
// trailing spaces trimmed.
func (d *Display) Render() string {
	content := strings.ReplaceAll(d.buf.Render(), "\r\n", "\n") // normalize newlines
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
