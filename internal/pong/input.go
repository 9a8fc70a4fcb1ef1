package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// OnPointerMove positions a paddle from a pointer location in arena coordinates.
//
// A pointer in the left third of the arena drives player 1, one in the right
// third drives player 2, and the middle third is ignored. The paddle center is
// set directly to the pointer's y, clamped to the arena. Returns the side that
// was moved.
func (g *Game) OnPointerMove(x, y float64) Side {
	third := g.arena.W / 3
	switch {
	case x < g.arena.X+third:
		g.player1.SetCenterY(g.clampY(y))
		return SideLeft
	case x > g.arena.Right()-third:
		g.player2.SetCenterY(g.clampY(y))
		return SideRight
	}
	return SideNone
}

// Nudge moves one paddle vertically by dy arena units, clamped to the arena.
func (g *Game) Nudge(side Side, dy float64) {
	switch side {
	case SideLeft:
		g.player1.SetCenterY(g.clampY(g.player1.Position.Y + dy))
	case SideRight:
		g.player2.SetCenterY(g.clampY(g.player2.Position.Y + dy))
	}
}

// ApplyInput applies the keyboard paddle actions collected for one frame.
// Up means increasing y in arena space.
func (g *Game) ApplyInput(in core.InputFrame) {
	step := g.nudgeStep
	if n := in.Count(core.ActionP1Up) - in.Count(core.ActionP1Down); n != 0 {
		g.Nudge(SideLeft, float64(n)*step)
	}
	if n := in.Count(core.ActionP2Up) - in.Count(core.ActionP2Down); n != 0 {
		g.Nudge(SideRight, float64(n)*step)
	}
}

// clampY keeps a paddle center inside the arena's vertical span.
func (g *Game) clampY(y float64) float64 {
	return core.ClampF(y, g.arena.Y, g.arena.Top())
}
