package cmd

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/vlist/internal/config"
	"github.com/charmbracelet/vlist/internal/ui/common"
	"github.com/charmbracelet/vlist/internal/ui/model"
	"github.com/charmbracelet/vlist/internal/uiutil"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Browse the list interactively",
	Long: `Start a full screen program showing the configured list.
Use the arrow keys or j and k to move the selection.
When a configuration file is given with --config, changes to it are applied
while the program runs.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	// The program owns the terminal, so logs only go to the file.
	cfg, err := setup(cmd, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	com := common.DefaultCommon(cfg)
	program := tea.NewProgram(
		model.New(com),
		tea.WithContext(ctx),
	)
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		cwd, err := ResolveCwd(cmd)
		if err != nil {
			return err
		}
		go watchConfig(ctx, program, cwd, configPath)
	}

	if _, err := program.Run(); err != nil {
		slog.Error("TUI run error", "error", err)
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}

// watchConfig sends the configuration to program every time the file at path
// changes.
func watchConfig(ctx context.Context, program *tea.Program, cwd, path string) {
	err := config.Watch(ctx, cwd, path,
		func(cfg *config.Config) {
			program.Send(model.ConfigReloadedMsg{Config: cfg})
		},
		func(err error) {
			program.Send(uiutil.InfoMsg{
				Type: uiutil.InfoTypeError,
				Msg:  err.Error(),
				TTL:  uiutil.DefaultStatusTTL,
			})
		},
	)
	if err != nil {
		slog.Error("Failed to watch configuration", "error", err)
	}
}
