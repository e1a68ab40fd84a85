package layout

import "math"

// snapEpsilon absorbs float noise before snapping, so that 10.4999999
// and 10.5 land on the same cell.
const snapEpsilon = 1e-6

// snap rounds an absolute float coordinate to the nearest cell boundary.
func snap(v float64) int {
	v = finiteOr(v, 0)
	return int(math.Floor(math.Round(v/snapEpsilon)*snapEpsilon + 0.5))
}

// roundLayout converts the float geometry of the subtree into integer
// cells and publishes it as each node's Layout.
//
// Edges are rounded in root coordinates and sizes are taken as the
// difference of rounded edges, so adjacent boxes that touch in floats
// still touch after rounding and sizes sum without drift.
func roundLayout(n *Node, parentX, parentY float64, parentCellX, parentCellY int) {
	st := &n.state
	absX := parentX + finiteOr(st.position[axisRow], 0)
	absY := parentY + finiteOr(st.position[axisColumn], 0)

	left, top := snap(absX), snap(absY)
	right := snap(absX + orZero(st.dims[axisRow]))
	bottom := snap(absY + orZero(st.dims[axisColumn]))

	abs := Rect{X: left, Y: top, Width: max(0, right-left), Height: max(0, bottom-top)}
	bounds := abs.Translate(-parentCellX, -parentCellY)

	border := roundSides(st.border)
	padding := roundSides(st.padding)

	n.layout = Layout{
		Bounds:        bounds,
		ContentBounds: bounds.Inset(border.Add(padding)),
		Absolute:      abs,
		Margin:        roundSides(st.margin),
		Border:        border,
		Padding:       padding,
		HadOverflow:   st.hadOverflow,
		computed:      true,
	}

	for _, child := range n.children {
		roundLayout(child, absX, absY, left, top)
	}
}

func roundSides(s sides) Insets {
	return Insets{
		Top:    snap(s[EdgeTop]),
		Right:  snap(s[EdgeRight]),
		Bottom: snap(s[EdgeBottom]),
		Left:   snap(s[EdgeLeft]),
	}
}
