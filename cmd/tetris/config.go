package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file
search and the --difficulty flag are applied.

Search order:
  --config path
  ~/.tui-tetris/configs/tetris.yaml
  ./configs/tetris.yaml
  built-in defaults

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config --defaults > ~/.tui-tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the commented built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	if flagConfigDefaults {
		fmt.Fprint(out, string(config.DefaultYAML()))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprint(out, string(data))
}
