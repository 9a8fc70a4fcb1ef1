// Package pong implements a two-player Pong simulation.
// Player 1 owns the left paddle, player 2 the right one. The game advances
// by a fixed displacement per tick and knows nothing about terminals, timers
// or input devices; the platform layer drives it.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies one half of the arena and the player defending it.
type Side int

const (
	SideNone  Side = iota
	SideLeft       // Player 1
	SideRight      // Player 2
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "player1"
	case SideRight:
		return "player2"
	default:
		return "none"
	}
}

// TickResult describes what happened during one Update call.
type TickResult struct {
	Bounced1   bool // Ball bounced off player 1's paddle
	Bounced2   bool // Ball bounced off player 2's paddle
	WallBounce bool // Vertical velocity was flipped at the top or bottom
	Scorer     Side // Player who scored this tick, SideNone if nobody did
}

// Game owns the ball, both paddles and the arena bounds.
type Game struct {
	ball    Ball
	player1 Paddle
	player2 Paddle
	arena   core.Rect

	serveSpeed float64
	nudgeStep  float64

	tick         uint64
	elapsed      float64 // Sum of dt values passed to Update, in seconds
	rally        int     // Paddle bounces since the last serve
	longestRally int
}

// New creates a game laid out from cfg. The ball rests at the arena center
// until Kickoff or Serve is called. cfg is expected to pass Validate.
func New(cfg config.PongConfig) *Game {
	arena := core.NewRect(cfg.Arena.X, cfg.Arena.Y, cfg.Arena.Width, cfg.Arena.Height)
	center := arena.Center()

	halfW := cfg.Paddles.Width / 2
	p1 := NewPaddle(core.NewVec2(arena.X+cfg.Paddles.Offset+halfW, center.Y), cfg.Paddles.Width, cfg.Paddles.Height)
	p2 := NewPaddle(core.NewVec2(arena.Right()-cfg.Paddles.Offset-halfW, center.Y), cfg.Paddles.Width, cfg.Paddles.Height)
	for _, p := range []*Paddle{&p1, &p2} {
		p.bounceFactor = cfg.Physics.BounceFactor
		p.maxSpeed = cfg.Physics.MaxBallSpeed
	}

	return &Game{
		ball:       NewBall(center, cfg.Ball.Size),
		player1:    p1,
		player2:    p2,
		arena:      arena,
		serveSpeed: cfg.Ball.ServeSpeed,
		nudgeStep:  cfg.Input.NudgeStep,
	}
}

// Kickoff performs the opening serve toward player 2.
func (g *Game) Kickoff() {
	g.Serve(core.NewVec2(g.serveSpeed, 0))
}

// Serve resets the ball to the arena center with the given velocity.
func (g *Game) Serve(velocity core.Vec2) {
	g.ball.Serve(velocity, g.arena.Center())
	g.rally = 0
}

// Update advances the game by one tick.
//
// Motion is tick-based: the ball moves by its velocity once per call no matter
// what dt is. dt is only accumulated into Elapsed.
func (g *Game) Update(dt float64) TickResult {
	var res TickResult

	g.tick++
	g.elapsed += dt

	g.ball.Move()

	// Both paddles are checked every tick, left first.
	res.Bounced1 = g.player1.BounceBall(&g.ball)
	res.Bounced2 = g.player2.BounceBall(&g.ball)
	if res.Bounced1 {
		g.rally++
	}
	if res.Bounced2 {
		g.rally++
	}
	g.longestRally = max(g.longestRally, g.rally)

	// No position clamp: the ball may sit past a wall for a tick.
	if g.ball.Bottom() < g.arena.Y || g.ball.Top() > g.arena.Top() {
		g.ball.Velocity.Y *= -1
		res.WallBounce = true
	}

	if g.ball.Left() < g.arena.X {
		g.player2.Score++
		g.Serve(core.NewVec2(g.serveSpeed, 0))
		res.Scorer = SideRight
	}
	// Compared against the width rather than the right edge; only exact when arena.X == 0.
	if g.ball.Left() > g.arena.W {
		g.player1.Score++
		g.Serve(core.NewVec2(-g.serveSpeed, 0))
		res.Scorer = SideLeft
	}

	return res
}

// Ball returns a copy of the ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// Player1 returns a copy of the left paddle.
func (g *Game) Player1() Paddle {
	return g.player1
}

// Player2 returns a copy of the right paddle.
func (g *Game) Player2() Paddle {
	return g.player2
}

// Arena returns the arena bounds.
func (g *Game) Arena() core.Rect {
	return g.arena
}

// Scores returns both players' scores.
func (g *Game) Scores() (int, int) {
	return g.player1.Score, g.player2.Score
}

// Tick returns the number of Update calls so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Elapsed returns the accumulated dt in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Rally returns the number of paddle bounces since the last serve.
func (g *Game) Rally() int {
	return g.rally
}

// LongestRally returns the longest rally seen in this game.
func (g *Game) LongestRally() int {
	return g.longestRally
}
