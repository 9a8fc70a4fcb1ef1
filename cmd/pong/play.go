package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play pong in this terminal",
	Long: `Start a local two-player game.

Controls:
  Mouse      - Left third steers the left paddle, right third the right one
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  P/Space    - Pause
  R          - Restart
  ?          - Toggle help
  Q/Ctrl+C   - Quit

The match is recorded to the history database when you quit or restart.

Examples:
  pong play
  pong play --config ./my-pong.yaml
  pong play --log-file ~/.pong/pong.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	rt := runtimeConfig()

	// The terminal belongs to the game; logs only go to a file if one is set.
	logger, closer := newLogger("pong", cfg, io.Discard)
	defer closer.Close()

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("session started", "fps", rt.TickRate, "width", rt.ScreenW, "height", rt.ScreenH)

	runErr := tui.Run(tui.Options{
		Game:    cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
		Source:  storage.SourceLocal,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	logger.Info("session ended")

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closer.Close()
		os.Exit(1)
	}
}
