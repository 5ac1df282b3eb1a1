package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName = "vlist"

	defaultWidth      = 40
	defaultHeight     = 10
	defaultTop        = 1
	defaultItemHeight = 2
)

// Item kinds.
const (
	KindText     = "text"
	KindBordered = "bordered"
	KindMarkdown = "markdown"
	KindSpacer   = "spacer"
)

var (
	// ErrUnknownKind is returned for items of an unknown kind.
	ErrUnknownKind = errors.New("unknown item kind")

	// ErrInvalidViewport is returned when the viewport has a negative size.
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrFixedHeight is returned when a height is set on an item kind that
	// measures its own height.
	ErrFixedHeight = errors.New("height is measured from the content")
)

// Viewport is the on-screen area of the list, in cells.
type Viewport struct {
	X      int `json:"x,omitempty" yaml:"x,omitempty"`
	Y      int `json:"y,omitempty" yaml:"y,omitempty"`
	Width  int `json:"width,omitempty" yaml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty"`
}

// IsZero reports whether no field of the viewport is set.
func (v Viewport) IsZero() bool {
	return v == Viewport{}
}

// Item describes a single list item.
type Item struct {
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Height is the height in rows of text and spacer items. Bordered and
	// markdown items measure their content and must leave it unset.
	Height int `json:"height,omitempty" yaml:"height,omitempty"`
}

// Options holds non-layout settings.
type Options struct {
	Debug   bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// Config is the list configuration.
type Config struct {
	Viewport Viewport `json:"viewport" yaml:"viewport"`
	Items    []Item   `json:"items,omitempty" yaml:"items,omitempty"`
	Options  *Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// Default returns the default configuration: twelve text items, two rows
// each, in a 40x10 viewport placed one row from the top.
func Default() *Config {
	names := []string{
		"First", "Second", "Third", "Fourth", "Fifth", "Sixth",
		"Seventh", "Eighth", "Ninth", "Tenth", "Eleventh", "Twelfth",
	}
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{
			Kind:   KindText,
			Text:   name + " item",
			Height: defaultItemHeight,
		}
	}
	return &Config{
		Viewport: Viewport{
			Y:      defaultTop,
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		Items:   items,
		Options: &Options{},
	}
}

// setDefaults fills in unset values.
func (c *Config) setDefaults() {
	if c.Options == nil {
		c.Options = &Options{}
	}
	if c.Viewport.IsZero() {
		c.Viewport = Default().Viewport
	}
	for i := range c.Items {
		if c.Items[i].Kind == "" {
			c.Items[i].Kind = KindText
		}
		switch c.Items[i].Kind {
		case KindText, KindSpacer:
			if c.Items[i].Height == 0 {
				c.Items[i].Height = 1
			}
		}
	}
	if c.Options.LogFile == "" {
		c.Options.LogFile = filepath.Join(dataDir(), appName+".log")
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, c.Viewport.Width, c.Viewport.Height)
	}
	for i, it := range c.Items {
		switch it.Kind {
		case KindText, KindBordered, KindMarkdown, KindSpacer:
		default:
			return fmt.Errorf("item %d: %w: %q", i, ErrUnknownKind, it.Kind)
		}
		if it.Height < 0 {
			return fmt.Errorf("item %d: negative height %d", i, it.Height)
		}
		if it.Height != 0 && (it.Kind == KindBordered || it.Kind == KindMarkdown) {
			return fmt.Errorf("item %d: %s: %w", i, it.Kind, ErrFixedHeight)
		}
	}
	return nil
}

// dataDir returns the directory for files written by the program, like the
// log file.
func dataDir() string {
	xdgDataHome := os.Getenv("XDG_DATA_HOME")
	if xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName)
	}

	// for windows, it should be in `%LOCALAPPDATA%/vlist/`
	// for linux and macOS, it should be in `$HOME/.local/share/vlist/`
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
		return filepath.Join(localAppData, appName)
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// configDir returns the directory of the global configuration file.
func configDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName)
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}
