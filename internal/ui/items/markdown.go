package items

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/vlist/internal/ui/common"
	"github.com/charmbracelet/vlist/internal/ui/display"
	"github.com/charmbracelet/vlist/internal/ui/styles"
)

// gutterWidth is the width of the column marking the active item.
const gutterWidth = 2

// Markdown renders markdown content using Glamour. The content is rendered
// once, at construction, for the item width.
type Markdown struct {
	rendered string
	width    int
	height   int
	sty      *styles.Styles
}

var _ Item = (*Markdown)(nil)

// NewMarkdown creates a new markdown item.
func NewMarkdown(sty *styles.Styles, markdown string, width int) *Markdown {
	m := &Markdown{
		width: width,
		sty:   sty,
	}
	m.rendered = renderMarkdown(sty, markdown, max(1, width-gutterWidth))
	m.height = lipgloss.Height(m.rendered)
	return m
}

// Height implements list.Item.
func (m *Markdown) Height() int {
	return m.height
}

// Draw implements list.Item.
func (m *Markdown) Draw(d *display.Display, origin image.Point, active bool) error {
	icon, style := styles.InactiveIcon, m.sty.Item.Inactive
	if active {
		icon, style = styles.ActiveIcon, m.sty.Item.Active
	}
	gutter := strings.TrimSuffix(strings.Repeat(style.Render(icon)+"\n", m.height), "\n")
	if err := d.DrawString(origin, gutterWidth, gutter); err != nil {
		return err
	}
	return d.DrawString(origin.Add(image.Pt(gutterWidth, 0)), m.width-gutterWidth, m.rendered)
}

func renderMarkdown(sty *styles.Styles, markdown string, width int) string {
	renderer := common.MarkdownRenderer(sty, width)
	if renderer == nil {
		// Fallback to plain text on error
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		// Fallback to plain text on error
		return markdown
	}
	// Trim surrounding blank lines
	return strings.Trim(rendered, "\n\r")
}
