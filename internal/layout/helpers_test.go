package layout

import "math"

// newTestNode creates a node for tests. Tests set style fields directly
// before the first Calculate, when the node is dirty anyway.
func newTestNode(style Style) *Node {
	return NewNode(style)
}

// sized returns a default style with a fixed width and height.
func sized(w, h int) Style {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return s
}

// textMeasure behaves like a run of n single-cell characters that wrap at
// the available width.
func textMeasure(n int, calls *int) MeasureFunc {
	return func(_ *Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size {
		if calls != nil {
			*calls++
		}
		length := float64(n)
		w := length
		if widthMode != MeasureUndefined && width < w {
			w = math.Floor(width)
		}
		if widthMode == MeasureExactly {
			w = width
		}
		if w <= 0 {
			return Size{Width: 0, Height: length}
		}
		return Size{Width: w, Height: math.Ceil(length / w)}
	}
}

// collectLayouts returns the layouts of the subtree in pre-order.
func collectLayouts(n *Node) []Layout {
	out := []Layout{n.Layout()}
	for _, child := range n.children {
		out = append(out, collectLayouts(child)...)
	}
	return out
}
