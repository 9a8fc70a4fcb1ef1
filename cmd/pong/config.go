package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in default configuration as YAML.

Save the output to ~/.pong/configs/pong.yaml or ./configs/pong.yaml and edit
it to change the arena, ball, paddles or physics. Fields you leave out keep
their default values.

With --resolved, prints the configuration the other commands would actually
use after searching --config and the standard locations.

Examples:
  pong config > ~/.pong/configs/pong.yaml
  pong config --resolved
  pong config --resolved --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config (%s): %v\n", source, err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	for _, w := range cfg.Warnings() {
		fmt.Printf("# warning: %s\n", w)
	}
	os.Stdout.Write(out)
}
