package core

import (
	"strings"
)

// Cell is a single character on the Screen with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a row-major character grid the presentation layer draws the arena
// into. Drawing is clipped at the edges.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions. The content is cleared when they change.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetColored places a colored rune at (x, y).
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes text to the right of (x, y).
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text, c)
}

// DrawRect fills r.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := max(r.Y, 0); y < min(r.Bottom(), s.height); y++ {
		for x := max(r.X, 0); x < min(r.Right(), s.width); x++ {
			s.cells[y*s.width+x] = Cell{Rune: fill, Color: c}
		}
	}
}

// DrawLine plots the cells between two points, both ends included.
func (s *Screen) DrawLine(x0, y0, x1, y1 int, r rune, c Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		s.SetColored(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// String returns the runes as plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)
	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
