package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Ball is the puck in play. Position is the center of its square bounding box.
type Ball struct {
	Position core.Vec2
	Velocity core.Vec2
	Size     float64
}

// NewBall creates a resting ball of the given size at center.
func NewBall(center core.Vec2, size float64) Ball {
	return Ball{Position: center, Size: size}
}

// Move advances the ball by one tick's worth of velocity.
func (b *Ball) Move() {
	b.Position = b.Position.Add(b.Velocity)
}

// Serve places the ball at center with the given velocity.
// Serving is a reset, not an increment: repeated calls give the same state.
func (b *Ball) Serve(velocity, center core.Vec2) {
	b.Position = center
	b.Velocity = velocity
}

// Left returns the x-coordinate of the ball's left edge.
func (b Ball) Left() float64 {
	return b.Position.X - b.Size/2
}

// Bottom returns the y-coordinate of the ball's bottom edge.
func (b Ball) Bottom() float64 {
	return b.Position.Y - b.Size/2
}

// Top returns the y-coordinate of the ball's top edge.
func (b Ball) Top() float64 {
	return b.Position.Y + b.Size/2
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.RectAround(b.Position, b.Size, b.Size)
}
