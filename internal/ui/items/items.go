// Package items implements list items that draw to a [display.Display].
package items

import (
	"fmt"

	"github.com/charmbracelet/vlist/internal/config"
	"github.com/charmbracelet/vlist/internal/ui/display"
	"github.com/charmbracelet/vlist/internal/ui/list"
	"github.com/charmbracelet/vlist/internal/ui/styles"
)

// Item is a list item drawn to a display.
type Item = list.Item[*display.Display]

// Source is the list source used by the program.
type Source = list.Items[*display.Display]

// FromConfig creates an item of the given width from its configuration.
func FromConfig(sty *styles.Styles, cfg config.Item, width int) (Item, error) {
	switch cfg.Kind {
	case config.KindText, "":
		return NewText(sty, cfg.Text, width, cfg.Height), nil
	case config.KindBordered:
		return NewBordered(sty, cfg.Text, width), nil
	case config.KindMarkdown:
		return NewMarkdown(sty, cfg.Text, width), nil
	case config.KindSpacer:
		return NewSpacer(width, cfg.Height), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownKind, cfg.Kind)
	}
}

// NewSource creates the items described by cfgs.
func NewSource(sty *styles.Styles, cfgs []config.Item, width int) (Source, error) {
	src := make(Source, 0, len(cfgs))
	for i, cfg := range cfgs {
		it, err := FromConfig(sty, cfg, width)
		if err != nil {
			return nil, fmt.Errorf("failed to create item %d: %w", i, err)
		}
		src = append(src, it)
	}
	return src, nil
}
