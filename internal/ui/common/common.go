package common

import (
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/vlist/internal/config"
	"github.com/charmbracelet/vlist/internal/ui/styles"
)

// Common defines common UI options and configurations.
type Common struct {
	Config *config.Config
	Styles *styles.Styles
}

// DefaultCommon returns the default common UI configurations.
func DefaultCommon(cfg *config.Config) *Common {
	sty := styles.DefaultStyles()
	return &Common{
		Config: cfg,
		Styles: &sty,
	}
}

// Viewport returns the configured list viewport as a rectangle.
func (c *Common) Viewport() uv.Rectangle {
	v := c.Config.Viewport
	return uv.Rect(v.X, v.Y, v.Width, v.Height)
}
