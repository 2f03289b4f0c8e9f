package core

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cell is a single character cell with its foreground color.
type Cell struct {
	Rune rune
	Fg   colorful.Color
}

// blank is the cell a cleared screen is filled with.
var blank = Cell{Rune: ' ', Fg: ColorWhite}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the renderer to
// draw using simple rune operations while the platform handles display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a rune at the given position using the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Fg: ColorWhite})
}

// SetCell places a colored cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg colorful.Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Fg: fg})
		i++
	}
}

// FillRect fills a rectangular area with the given rune and color.
func (s *Screen) FillRect(r Rect, fill rune, fg colorful.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: fill, Fg: fg})
		}
	}
}

// Flip mirrors the region r on both axes in place.
func (s *Screen) Flip(r Rect) {
	src := s.region(r)
	for y := range src {
		for x := range src[y] {
			s.SetCell(r.Right()-1-x, r.Bottom()-1-y, src[y][x])
		}
	}
}

// Shift moves the contents of region r by (dx, dy); uncovered cells are blanked.
func (s *Screen) Shift(r Rect, dx, dy int) {
	src := s.region(r)
	s.FillRect(r, ' ', ColorWhite)
	for y := range src {
		for x := range src[y] {
			nx, ny := r.X+x+dx, r.Y+y+dy
			if r.Contains(nx, ny) {
				s.SetCell(nx, ny, src[y][x])
			}
		}
	}
}

// MapColors replaces the foreground of every cell in r with fn(x, y, fg).
func (s *Screen) MapColors(r Rect, fn func(x, y int, fg colorful.Color) colorful.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := s.GetCell(x, y)
			c.Fg = fn(x, y, c.Fg)
			s.SetCell(x, y, c)
		}
	}
}

// region copies the cells of r; out-of-bounds cells come back blank.
func (s *Screen) region(r Rect) [][]Cell {
	out := make([][]Cell, max(r.H, 0))
	for y := range out {
		out[y] = make([]Cell, max(r.W, 0))
		for x := range out[y] {
			out[y][x] = s.GetCell(r.X+x, r.Y+y)
		}
	}
	return out
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
