package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┆'
	WallChar   = '─'
)

// Minimum screen size that can show the playfield.
const (
	MinScreenW = 20
	MinScreenH = 6
)

// Render draws the current game state into dst. The renderer only reads state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "terminal too small")
		return
	}

	v := g.Viewport(w, h)

	// Walls
	dst.DrawHLine(0, v.Row-1, w, WallChar, core.ColorGray)
	dst.DrawHLine(0, v.Row+v.Rows, w, WallChar, core.ColorGray)

	// Net
	centerX := v.Col + v.Cols/2
	for y := v.Row; y < v.Row+v.Rows; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	// Paddles
	v.fill(dst, g.player1.Rect(), PaddleChar, core.ColorBrightCyan)
	v.fill(dst, g.player2.Rect(), PaddleChar, core.ColorBrightMagenta)

	// Ball
	v.fill(dst, g.ball.Rect(), BallChar, core.ColorBrightYellow)

	// Scores
	score1Text := fmt.Sprintf("%d", g.player1.Score)
	score2Text := fmt.Sprintf("%d", g.player2.Score)
	dst.DrawTextColored(centerX-3-len(score1Text), 0, score1Text, core.ColorBrightCyan)
	dst.DrawTextColored(centerX-1, 0, ":", core.ColorWhite)
	dst.DrawTextColored(centerX+3, 0, score2Text, core.ColorBrightMagenta)

	// Labels
	dst.DrawTextColored(1, 0, "P1", core.ColorBrightCyan)
	dst.DrawTextColored(w-3, 0, "P2", core.ColorBrightMagenta)

	if g.rally > 1 {
		dst.DrawTextColored(centerX+8, 0, fmt.Sprintf("rally %d", g.rally), core.ColorGray)
	}
}
