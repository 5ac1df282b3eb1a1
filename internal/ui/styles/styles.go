package styles

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	"charm.land/glamour/v2/ansi"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
)

const (
	ActiveIcon   string = "▌"
	InactiveIcon string = " "
	ErrorIcon    string = "×"
	ScrollIcon   string = "↕"
)

const defaultListIndent = 2

// Styles holds the styles used to draw list items and the surrounding
// chrome.
type Styles struct {
	Background color.Color

	// Reusable text styles
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style

	// Items
	Item struct {
		Active   lipgloss.Style
		Inactive lipgloss.Style

		BorderActive   lipgloss.Style
		BorderInactive lipgloss.Style
	}

	// Chrome
	Header lipgloss.Style
	Footer lipgloss.Style
	Error  lipgloss.Style

	Help help.Styles

	Markdown ansi.StyleConfig
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	var (
		primary   = charmtone.Charple
		secondary = charmtone.Dolly

		// Backgrounds
		bgBase   = charmtone.Pepper
		bgSubtle = charmtone.Charcoal

		// Foregrounds
		fgBase   = charmtone.Ash
		fgMuted  = charmtone.Squid
		fgSubtle = charmtone.Oyster
		white    = charmtone.Butter

		// Borders
		border      = charmtone.Charcoal
		borderFocus = charmtone.Charple

		red = charmtone.Coral
	)

	base := lipgloss.NewStyle().Foreground(fgBase)

	s := Styles{}

	s.Background = bgBase

	s.Base = base
	s.Muted = base.Foreground(fgMuted)
	s.Subtle = base.Foreground(fgSubtle)

	s.Item.Active = base.Foreground(white).Bold(true)
	s.Item.Inactive = base.Foreground(fgMuted)
	s.Item.BorderActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderFocus).
		Foreground(white).
		Padding(0, 1)
	s.Item.BorderInactive = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Foreground(fgMuted).
		Padding(0, 1)

	s.Header = lipgloss.NewStyle().
		Foreground(white).
		Background(primary).
		Bold(true).
		Padding(0, 1)
	s.Footer = base.Foreground(fgSubtle).Background(bgSubtle)
	s.Error = base.Foreground(red)

	s.Help = help.Styles{
		ShortKey:       base.Foreground(fgMuted),
		ShortDesc:      base.Foreground(fgSubtle),
		ShortSeparator: base.Foreground(border),
		Ellipsis:       base.Foreground(border),
		FullKey:        base.Foreground(fgMuted),
		FullDesc:       base.Foreground(fgSubtle),
		FullSeparator:  base.Foreground(border),
	}

	s.Markdown = ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(charmtone.Smoke.Hex()),
			},
		},
		List: ansi.StyleList{
			LevelIndent: defaultListIndent,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(charmtone.Malibu.Hex()),
				Bold:  boolPtr(true),
			},
		},
		Strong: ansi.StylePrimitive{
			Bold: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(secondary.Hex()),
			},
		},
	}

	return s
}

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
