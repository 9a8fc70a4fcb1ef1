// pong is a two-player Pong game for the terminal.
//
// Usage:
//
//	pong                     - Play locally (same as 'pong play')
//	pong play                - Play locally, mouse or keyboard
//	pong serve               - Start SSH server for remote play
//	pong sim --ticks <n>     - Run the simulation headless
//	pong history             - Show recorded matches
//	pong config              - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search standard locations)
//	--db <path>         - Match history database (default: ~/.pong/matches.db)
//	--fps <rate>        - Tick rate (default: 60)
//	--log-file <path>   - Write logs to a rotating file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one terminal",
	Long: `Pong is the classic two-paddle game for your terminal.

Move the mouse over the left third of the field to steer the left paddle,
over the right third to steer the right one. W/S and Up/Down work too.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  sim      - Run the simulation without a terminal
  history  - Show recorded matches
  config   - Print the default configuration

Examples:
  pong
  pong --fps 30
  pong serve --ssh :2222
  pong sim --ticks 600
  pong history --plain`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game configuration and applies logging flag overrides.
// Exits on error.
func loadConfig() config.PongConfig {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config (%s): %v\n", source, err)
		os.Exit(1)
	}

	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds the command logger and reports config warnings through it.
// Exits on error.
func newLogger(prefix string, cfg config.PongConfig, fallback io.Writer) (*log.Logger, io.Closer) {
	logger, closer, err := logging.New(prefix, cfg.Log, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}
	return logger, closer
}

// runtimeConfig returns the screen and tick settings for the current terminal.
// Exits if the tick rate is not positive.
func runtimeConfig() core.RuntimeConfig {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
