//go:build !nowindow

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/window"
)

func init() {
	rootCmd.AddCommand(windowCmd)
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there.

Controls:
  Left/Right, A/D  - Move (hold to repeat)
  Up, W, X         - Rotate clockwise
  Down, S          - Soft drop
  Space            - Hard drop
  Enter            - Start / restart after game over
  P/Esc            - Pause
  Q                - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	opts, err := cfg.EngineOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts = append(opts, core.WithLogger(logger))
	if flagSeed != 0 {
		opts = append(opts, core.WithSeed(flagSeed))
	}

	engine, err := core.New(cfg.Grid.Rows, cfg.Grid.Cols, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := window.Run(engine, "Tetris", flagFPS); err != nil {
		closeLog() //nolint:errcheck // Exiting anyway
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
	logger.Info("window closed", "rows_cleared", engine.RowsCleared())
}
