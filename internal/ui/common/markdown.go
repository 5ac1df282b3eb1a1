package common

import (
	"charm.land/glamour/v2"
	"github.com/charmbracelet/vlist/internal/ui/styles"
)

// MarkdownRenderer returns a glamour [glamour.TermRenderer] configured with
// the given styles and width.
func MarkdownRenderer(t *styles.Styles, width int) *glamour.TermRenderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStyles(t.Markdown),
		glamour.WithWordWrap(width),
	)
	return r
}
