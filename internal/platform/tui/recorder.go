package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// recorderKey stores a session's recorder in its SSH context.
type recorderKey struct{}

// matchRecorder owns the game a session is playing and saves it to match
// history at most once. Bubble Tea copies the Model on every update, so the
// copies share one recorder through a pointer. That lets the server record
// a session whose connection dropped without a quit key.
type matchRecorder struct {
	mu       sync.Mutex
	opts     Options
	logger   *log.Logger
	game     *pong.Game
	recorded bool
}

func newMatchRecorder(opts Options, logger *log.Logger) *matchRecorder {
	r := &matchRecorder{opts: opts, logger: logger}
	r.game = r.newGame()
	return r
}

func (r *matchRecorder) newGame() *pong.Game {
	g := pong.New(r.opts.Game)
	g.Kickoff()
	return g
}

// Game returns the game currently being played.
func (r *matchRecorder) Game() *pong.Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game
}

// Restart records the current game and serves a fresh one.
func (r *matchRecorder) Restart() *pong.Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.save()
	r.game = r.newGame()
	r.recorded = false
	return r.game
}

// Record saves the current game once, if anything was played.
func (r *matchRecorder) Record() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.save()
}

// save requires r.mu.
func (r *matchRecorder) save() {
	g := r.game
	if r.recorded || g.Tick() == 0 {
		return
	}
	r.recorded = true

	s1, s2 := g.Scores()
	match := storage.Match{
		Player1:      r.opts.Player1,
		Player2:      r.opts.Player2,
		Score1:       s1,
		Score2:       s2,
		Ticks:        int64(g.Tick()),
		Duration:     time.Duration(g.Elapsed() * float64(time.Second)),
		LongestRally: g.LongestRally(),
		Source:       r.opts.Source,
	}

	if r.opts.Store == nil {
		r.logger.Info("match finished", "score1", s1, "score2", s2, "ticks", match.Ticks)
		return
	}

	id, err := r.opts.Store.SaveMatch(match)
	if err != nil {
		r.logger.Warn("could not save match", "error", err)
		return
	}
	r.logger.Info("match saved", "id", id, "score1", s1, "score2", s2, "ticks", match.Ticks)
}
