package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Screen rows reserved around the playfield by Render.
const (
	headerRows = 2 // Score line and top wall
	footerRows = 1 // Bottom wall
)

// Viewport maps the y-up arena onto a block of y-down terminal cells.
type Viewport struct {
	Arena core.Rect
	Col   int // Left column of the playfield
	Row   int // Top row of the playfield
	Cols  int
	Rows  int
}

// NewViewport creates a mapping of arena onto cols x rows cells at (col, row).
func NewViewport(arena core.Rect, col, row, cols, rows int) Viewport {
	return Viewport{Arena: arena, Col: col, Row: row, Cols: max(cols, 1), Rows: max(rows, 1)}
}

// Viewport returns the playfield mapping Render uses for a w x h screen.
func (g *Game) Viewport(w, h int) Viewport {
	return NewViewport(g.arena, 0, headerRows, w, h-headerRows-footerRows)
}

// ToArena returns the arena point at the center of cell (col, row).
func (v Viewport) ToArena(col, row int) core.Vec2 {
	x := v.Arena.X + (float64(col-v.Col)+0.5)*v.Arena.W/float64(v.Cols)
	y := v.Arena.Top() - (float64(row-v.Row)+0.5)*v.Arena.H/float64(v.Rows)
	return core.NewVec2(x, y)
}

// Contains reports whether the cell lies inside the playfield.
func (v Viewport) Contains(col, row int) bool {
	return col >= v.Col && col < v.Col+v.Cols && row >= v.Row && row < v.Row+v.Rows
}

// CellSpan returns the block of cells covered by r. Anything overlapping the
// arena gets at least one cell so thin objects stay visible.
func (v Viewport) CellSpan(r core.Rect) (col, row, w, h int) {
	cols, rows := float64(v.Cols), float64(v.Rows)

	c0 := int(math.Floor((r.X - v.Arena.X) * cols / v.Arena.W))
	c1 := int(math.Ceil((r.Right() - v.Arena.X) * cols / v.Arena.W))
	r0 := int(math.Floor((v.Arena.Top() - r.Top()) * rows / v.Arena.H))
	r1 := int(math.Ceil((v.Arena.Top() - r.Y) * rows / v.Arena.H))

	return v.Col + c0, v.Row + r0, max(c1-c0, 1), max(r1-r0, 1)
}

// fill draws r clipped to the playfield.
func (v Viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	col, row, w, h := v.CellSpan(r)

	left := max(col, v.Col)
	top := max(row, v.Row)
	right := min(col+w, v.Col+v.Cols)
	bottom := min(row+h, v.Row+v.Rows)
	if right <= left || bottom <= top {
		return
	}
	dst.FillCells(left, top, right-left, bottom-top, ch, c)
}
