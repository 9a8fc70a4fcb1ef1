package pong

import "math"

// Snapshot is a read-only copy of everything a renderer or recorder needs.
type Snapshot struct {
	Tick         uint64
	BallX        float64
	BallY        float64
	BallVX       float64
	BallVY       float64
	Paddle1Y     float64
	Paddle2Y     float64
	PaddleHeight float64
	Score1       int
	Score2       int
	Rally        int
	LongestRally int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		BallX:        g.ball.Position.X,
		BallY:        g.ball.Position.Y,
		BallVX:       g.ball.Velocity.X,
		BallVY:       g.ball.Velocity.Y,
		Paddle1Y:     g.player1.Position.Y,
		Paddle2Y:     g.player2.Position.Y,
		PaddleHeight: g.player1.Height,
		Score1:       g.player1.Score,
		Score2:       g.player2.Score,
		Rally:        g.rally,
		LongestRally: g.longestRally,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their exact bit patterns.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.Paddle1Y)
	h = h*31 + math.Float64bits(snap.Paddle2Y)
	h = h*31 + math.Float64bits(snap.PaddleHeight)
	h = h*31 + uint64(snap.Score1)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score2)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rally)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LongestRally) //#nosec G115 -- hash computation
	return h
}
