package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/loop"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSimTicks    int
	flagSimRealtime bool
	flagSimRecord   bool
	flagSimDraw     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a terminal UI",
	Long: `Serve the ball and advance the game headless, then print the final state.

Nobody moves the paddles, so the simulation shows the ball rallying between
two idle paddles. By default ticks run back to back; --realtime paces them at
--fps and stops early on Ctrl+C.

Examples:
  pong sim --ticks 600
  pong sim --ticks 0 --realtime       # Run until interrupted
  pong sim --ticks 3600 --record      # Save the result to match history
  pong sim --ticks 90 --draw          # Also print the final frame`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to simulate (0 with --realtime runs until interrupted)")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps instead of running back to back")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the result in match history")
	simCmd.Flags().BoolVar(&flagSimDraw, "draw", false, "Print the final frame as plain text")
}

func runSim(_ *cobra.Command, _ []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}
	if flagSimTicks < 0 || (flagSimTicks == 0 && !flagSimRealtime) {
		fmt.Fprintf(os.Stderr, "Error: --ticks must be positive, got %d\n", flagSimTicks)
		os.Exit(1)
	}

	cfg := loadConfig()
	logger, closer := newLogger("pong-sim", cfg, os.Stderr)
	defer closer.Close()

	game := pong.New(cfg)
	game.Kickoff()

	step := func(dt float64) bool {
		res := game.Update(dt)
		if res.Scorer != pong.SideNone {
			s1, s2 := game.Scores()
			logger.Debug("point scored", "tick", game.Tick(), "scorer", res.Scorer, "score1", s1, "score2", s2)
		}
		return flagSimTicks == 0 || game.Tick() < uint64(flagSimTicks)
	}

	driver := loop.NewDriver(flagFPS)
	start := time.Now()
	if flagSimRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		driver.Run(ctx, step)
		stop()
	} else {
		driver.RunTicks(flagSimTicks, step)
	}
	logger.Debug("simulation finished", "ticks", game.Tick(), "wall", time.Since(start))

	printSimResult(game)

	if flagSimDraw {
		rt := runtimeConfig()
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}

	if flagSimRecord {
		recordSim(game, logger)
	}
}

func printSimResult(game *pong.Game) {
	snap := game.Snapshot()
	s1, s2 := game.Scores()

	fmt.Printf("Ticks:         %d (%.2fs simulated)\n", snap.Tick, game.Elapsed())
	fmt.Printf("Score:         %d - %d\n", s1, s2)
	fmt.Printf("Ball:          (%.2f, %.2f) velocity (%.2f, %.2f)\n", snap.BallX, snap.BallY, snap.BallVX, snap.BallVY)
	fmt.Printf("Paddles:       left y=%.2f right y=%.2f\n", snap.Paddle1Y, snap.Paddle2Y)
	fmt.Printf("Longest rally: %d\n", snap.LongestRally)
	fmt.Printf("State hash:    %016x\n", snap.Hash())
}

func recordSim(game *pong.Game, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		return
	}
	defer store.Close()

	s1, s2 := game.Scores()
	id, err := store.SaveMatch(storage.Match{
		Player1:      pong.SideLeft.String(),
		Player2:      pong.SideRight.String(),
		Score1:       s1,
		Score2:       s2,
		Ticks:        int64(game.Tick()),
		Duration:     time.Duration(game.Elapsed() * float64(time.Second)),
		LongestRally: game.LongestRally(),
		Source:       storage.SourceSim,
	})
	if err != nil {
		logger.Warn("could not save match", "error", err)
		return
	}
	fmt.Printf("Recorded:      %s\n", id)
}
