// Package render draws computed layouts for inspection: box outlines on a
// character grid, a lipgloss table of geometry, or plain indented text.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-flex/internal/layout"
)

// continuation marks the second cell of a wide rune.
const continuation rune = 0

// widths ignores the East Asian locale so box-drawing runes stay one cell.
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Grid is a fixed-size 2D grid of runes.
type Grid struct {
	cells  []rune
	width  int
	height int
}

// NewGrid creates a grid of the given size filled with spaces.
func NewGrid(width, height int) *Grid {
	width = max(0, width)
	height = max(0, height)

	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Width returns the grid width in columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in rows.
func (g *Grid) Height() int {
	return g.height
}

// Rect returns the grid bounds as a Rect starting at (0, 0).
func (g *Grid) Rect() layout.Rect {
	return layout.NewRect(0, 0, g.width, g.height)
}

func (g *Grid) idx(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.width + x
}

// Rune returns the rune at (x, y), or 0 when out of bounds or when the cell
// continues a wide rune to its left.
func (g *Grid) Rune(x, y int) rune {
	i := g.idx(x, y)
	if i < 0 {
		return 0
	}
	return g.cells[i]
}

// SetRune places r at (x, y). Wide runes take two cells; one that does not
// fit before the right edge becomes a space. Wide runes partly overwritten
// are cleared.
func (g *Grid) SetRune(x, y int, r rune) {
	i := g.idx(x, y)
	if i < 0 {
		return
	}
	w := runeWidth(r)

	g.clearWide(x, y)
	if w == 2 {
		if x+1 >= g.width {
			g.cells[i] = ' '
			return
		}
		g.clearWide(x+1, y)
		g.cells[i] = r
		g.cells[i+1] = continuation
		return
	}
	g.cells[i] = r
}

// clearWide blanks the wide rune covering (x, y), if any.
func (g *Grid) clearWide(x, y int) {
	i := g.idx(x, y)
	switch {
	case g.cells[i] == continuation:
		g.cells[i] = ' '
		if x > 0 {
			g.cells[i-1] = ' '
		}
	case runeWidth(g.cells[i]) == 2:
		g.cells[i] = ' '
		if x+1 < g.width {
			g.cells[i+1] = ' '
		}
	}
}

// SetString writes s starting at (x, y) without wrapping, dropping cells
// outside clip. It returns the display width consumed.
func (g *Grid) SetString(x, y int, s string, clip layout.Rect) int {
	clip = clip.Intersect(g.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	cur := x
	for _, r := range s {
		w := runeWidth(r)
		if cur >= clip.Right() {
			break
		}
		if cur >= clip.X && cur+w <= clip.Right() {
			g.SetRune(cur, y, r)
		}
		cur += w
	}
	return cur - x
}

// Fill sets every cell of rect to r.
func (g *Grid) Fill(rect layout.Rect, r rune) {
	rect = rect.Intersect(g.Rect())
	w := runeWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x += w {
			g.SetRune(x, y, r)
		}
	}
}

// String returns the grid as newline-separated rows with trailing spaces
// removed.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.cells[y*g.width : (y+1)*g.width]
		line := make([]rune, 0, len(row))
		for _, r := range row {
			if r != continuation {
				line = append(line, r)
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
	}
	return sb.String()
}

// runeWidth reports the cell width of r, treating zero-width and control
// runes as one cell so every rune stays visible on the grid.
func runeWidth(r rune) int {
	if r == continuation {
		return 0
	}
	if w := widths.RuneWidth(r); w > 1 {
		return 2
	}
	return 1
}
