package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/vlist/internal/config"
	"github.com/charmbracelet/vlist/internal/log"
	"github.com/charmbracelet/vlist/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().String("cwd", "", "Current working directory")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file to use instead of the default lookup")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")

	rootCmd.AddCommand(
		renderCmd,
		demoCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "vlist",
	Short: "A scrollable single-selection list",
	Long: `vlist draws a vertical list of items inside a fixed viewport and keeps
the selected item in view as the selection moves.
Without a subcommand it starts the interactive demo.`,
	Example: `
# Browse the default list
vlist

# Browse the list described in a configuration file
vlist -c list.yaml

# Print a single frame with the fifth item selected
vlist render --select 4
  `,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

// Execute runs the root command.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		if log.Initialized() {
			slog.Error("Command failed", "error", err)
		}
		os.Exit(1)
	}
}

// setup loads the environment and the configuration and installs the logger.
// Log records are also written to console in debug mode, if it is set.
func setup(cmd *cobra.Command, console io.Writer) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	configPath, _ := cmd.Flags().GetString("config")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, err
	}

	if err := godotenv.Load(filepath.Join(cwd, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load(cwd, configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Options.Debug = true
	}

	log.Setup(cfg.Options.LogFile, cfg.Options.Debug, console)
	return cfg, nil
}

// ResolveCwd returns the working directory from the --cwd flag, or the
// process working directory if it is unset.
func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to read working directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", abs)
	}
	return abs, nil
}
