package tui

import (
	"math"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/body"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/session"
)

// Viewport maps arena units onto screen cells.
type Viewport struct {
	Cols, Rows int
	sx, sy     float64
}

// NewViewport fits an arena of w by h units into cols by rows cells.
func NewViewport(w, h float64, cols, rows int) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return Viewport{Cols: cols, Rows: rows, sx: float64(cols) / w, sy: float64(rows) / h}
}

// Cell returns the cell containing p.
func (v Viewport) Cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

// World returns the arena point at the centre of a cell.
func (v Viewport) World(col, row int) core.Vec2 {
	return core.V((float64(col)+0.5)/v.sx, (float64(row)+0.5)/v.sy)
}

// Rect returns the cells covered by a shape centred at p. Every shape covers
// at least one cell.
func (v Viewport) Rect(p core.Vec2, s body.Shape) core.Rect {
	w, h := s.W, s.H
	if s.IsCircle() {
		w, h = 2*s.Radius, 2*s.Radius
	}
	x0, y0 := v.Cell(core.V(p.X-w/2, p.Y-h/2))
	x1 := int(math.Ceil((p.X + w/2) * v.sx))
	y1 := int(math.Ceil((p.Y + h/2) * v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// glyph picks the rune and color a body is drawn with.
func glyph(b session.BodyView) (rune, core.Color) {
	switch r := b.Role.(type) {
	case body.Ground:
		return '█', core.ColorGreen
	case body.Platform:
		return '▀', core.ColorWhite
	case body.Wall:
		return '│', core.ColorGray
	case body.Plank:
		return '=', core.ColorYellow
	case body.Projectile:
		return '●', core.ColorBrightRed
	case body.Destructible:
		if r.Kind == body.Wood {
			return '▓', core.ColorBrown
		}
		switch b.HitPoints {
		case 1:
			return '░', core.ColorRed
		case 2:
			return '▒', core.ColorOrange
		}
		return '█', core.ColorGray
	}
	return '?', core.ColorDefault
}

// DrawBodies paints bodies in handle order.
func DrawBodies(s *core.Screen, v Viewport, bodies []session.BodyView) {
	for _, b := range bodies {
		if _, ok := b.Role.(body.Wall); ok {
			continue
		}
		r, c := glyph(b)
		s.DrawRect(v.Rect(b.Position, b.Shape), r, c)
	}
}

// DrawCannon paints the barrel along the aim and the trajectory preview.
func DrawCannon(s *core.Screen, v Viewport, cannon session.Cannon, aim session.Aim, preview []core.Vec2) {
	for _, p := range preview {
		x, y := v.Cell(p)
		s.SetColored(x, y, '·', core.ColorCyan)
	}
	x0, y0 := v.Cell(cannon.Pivot)
	x1, y1 := v.Cell(cannon.Muzzle(aim.Angle))
	s.DrawLine(x0, y0, x1, y1, '*', core.ColorBlue)
	s.SetColored(x0, y0, '◉', core.ColorBlue)
}

// DrawBanner writes a centered message across the middle of the arena.
func DrawBanner(s *core.Screen, text string) {
	s.DrawTextCentered(s.Height()/3, " "+text+" ", core.ColorBrightYellow)
}
