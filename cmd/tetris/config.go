package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after file and TETRIS_* environment overrides.

With --defaults, print the built-in tetris.yaml instead, ready to copy to
~/.arcade/configs/tetris.yaml.

Examples:
  tetris config
  TETRIS_GRAVITY_MS=120 tetris config
  tetris config --defaults > ~/.arcade/configs/tetris.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	fmt.Printf("# source: %s\n", config.ResolvePath(flagConfig))
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(tetris.CurrentConfig()); err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	return enc.Close()
}
