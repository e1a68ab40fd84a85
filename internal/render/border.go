package render

import (
	"fmt"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/layout"
)

// BorderStyle selects the box-drawing characters used for outlines.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// ParseBorder maps a config border name onto a style.
func ParseBorder(name string) (BorderStyle, error) {
	switch name {
	case config.BorderSingle:
		return BorderSingle, nil
	case config.BorderDouble:
		return BorderDouble, nil
	case config.BorderRounded, "":
		return BorderRounded, nil
	case config.BorderThick:
		return BorderThick, nil
	}
	return BorderRounded, fmt.Errorf("unknown border %q", name)
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// DrawBox outlines rect on the grid. Positions come from the full rect;
// only cells inside clip are drawn. Rects smaller than 2x2 are skipped.
func DrawBox(g *Grid, rect layout.Rect, border BorderStyle, clip layout.Rect) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	chars := border.Chars()

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	set := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			g.SetRune(x, y, r)
		}
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}

// DrawTitle writes title into the top edge of rect, one cell in from the
// left corner, truncated to the space between the corners.
func DrawTitle(g *Grid, rect layout.Rect, title string, clip layout.Rect) {
	if title == "" || rect.Width < 3 || rect.Height < 1 {
		return
	}
	inner := layout.NewRect(rect.X+1, rect.Y, rect.Width-2, 1).Intersect(clip)
	g.SetString(rect.X+1, rect.Y, title, inner)
}
