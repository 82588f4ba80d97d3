package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config as YAML",
	Long: `Print the game configuration that 'crossing play' would use, after
the config file search and the difficulty preset are applied.

Config files are searched in this order:
  --config <path>
  ~/.arcade/configs/crossing.yaml
  ./configs/crossing.yaml
  built-in defaults

Examples:
  crossing config
  crossing config --difficulty hard
  crossing config --defaults > ~/.arcade/configs/crossing.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		exitOnError("writing defaults", err)
		return
	}

	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	exitOnError("encoding config", enc.Encode(cfg))
	exitOnError("encoding config", enc.Close())
}
