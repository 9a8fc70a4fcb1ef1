package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DefaultBounceFactor is the speed multiplier applied on every paddle contact.
const DefaultBounceFactor = 1.1

// Paddle is a player's bat. Position is its center; X never changes after layout.
type Paddle struct {
	Position core.Vec2
	Width    float64
	Height   float64
	Score    int

	bounceFactor float64
	maxSpeed     float64 // 0 = unbounded
}

// NewPaddle creates a paddle centered on center with the default bounce response.
func NewPaddle(center core.Vec2, width, height float64) Paddle {
	return Paddle{
		Position:     center,
		Width:        width,
		Height:       height,
		bounceFactor: DefaultBounceFactor,
	}
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.RectAround(p.Position, p.Width, p.Height)
}

// SetCenterY moves the paddle vertically. The x position is left untouched.
func (p *Paddle) SetCenterY(y float64) {
	p.Position.Y = y
}

// BounceBall reflects the ball if it overlaps the paddle and reports whether it did.
//
// The horizontal velocity is reversed, the whole velocity is scaled by the
// bounce factor and the vertical component gains the contact offset: the
// distance between ball and paddle centers in units of half the paddle height.
// The offset is not clamped, so a ball clipping a paddle corner can gain more
// than one unit of spin.
func (p *Paddle) BounceBall(ball *Ball) bool {
	if !p.Rect().Intersects(ball.Rect()) {
		return false
	}

	v := ball.Velocity
	offset := (ball.Position.Y - p.Position.Y) / (p.Height / 2)
	bounced := core.NewVec2(-v.X, v.Y)
	scaled := bounced.Scale(p.bounceFactor)
	next := core.NewVec2(scaled.X, scaled.Y+offset)

	if p.maxSpeed > 0 {
		if lenSq := next.LenSq(); lenSq > p.maxSpeed*p.maxSpeed {
			next = next.Scale(p.maxSpeed / math.Sqrt(lenSq))
		}
	}

	ball.Velocity = next
	return true
}
