package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/vlist/internal/config"
	"github.com/charmbracelet/vlist/internal/ui/common"
	"github.com/charmbracelet/vlist/internal/ui/display"
	"github.com/charmbracelet/vlist/internal/ui/model"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

func init() {
	renderCmd.Flags().IntSliceP("select", "s", nil, "Select the item at this index; repeat to move the selection several times")
	renderCmd.Flags().Int("width", 0, "Width of the frame, defaults to the right edge of the viewport")
	renderCmd.Flags().Int("height", 0, "Height of the frame, defaults to the bottom edge of the viewport")
	renderCmd.Flags().Bool("plain", false, "Print the frame without colors or styles")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single frame of the list",
	Long: `Draw the configured list once and print it to stdout.
Each --select is applied in order, so the frame shows where the list
scrolled to after the last selection.`,
	Example: `
# Print the default list
vlist render

# Select the fifth item, then the last one
vlist render --select 4 --select 11

# Plain text output, for scripts
vlist render --plain
  `,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		selects, _ := cmd.Flags().GetIntSlice("select")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		plain, _ := cmd.Flags().GetBool("plain")

		frame, err := renderFrame(cfg, selects, width, height)
		if err != nil {
			return err
		}

		var w io.Writer = colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
		if plain {
			w = cmd.OutOrStdout()
			frame = ansi.Strip(frame)
		}
		if _, err := fmt.Fprintln(w, frame); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
		return nil
	},
}

// renderFrame draws one frame of the list described by cfg after applying
// each selection in order. A zero width or height covers the viewport.
func renderFrame(cfg *config.Config, selects []int, width, height int) (string, error) {
	com := common.DefaultCommon(cfg)
	viewport := com.Viewport()
	if width <= 0 {
		width = viewport.Max.X
	}
	if height <= 0 {
		height = viewport.Max.Y
	}

	l, err := model.NewList(com, viewport)
	if err != nil {
		return "", fmt.Errorf("failed to create list: %w", err)
	}
	for _, idx := range selects {
		l.SetCurrent(idx)
	}

	d := display.New(width, height)
	if err := l.Draw(d); err != nil {
		return "", fmt.Errorf("failed to draw list: %w", err)
	}

	slog.Info("Rendered list", "current", l.Current(), "offset", l.Offset(), "items", l.Len())
	return d.Render(), nil
}
