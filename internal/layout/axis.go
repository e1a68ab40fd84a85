package layout

// Edge names a physical side of a box.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// axis is a physical layout axis. It doubles as the index of the matching
// dimension in [2]float64 pairs (width, height).
type axis uint8

const (
	axisRow    axis = iota // horizontal
	axisColumn             // vertical
)

func (a axis) isRow() bool {
	return a == axisRow
}

func (a axis) cross() axis {
	if a == axisRow {
		return axisColumn
	}
	return axisRow
}

// leading returns the physical edge where the axis starts.
func (a axis) leading() Edge {
	if a == axisRow {
		return EdgeLeft
	}
	return EdgeTop
}

// trailing returns the physical edge where the axis ends.
func (a axis) trailing() Edge {
	if a == axisRow {
		return EdgeRight
	}
	return EdgeBottom
}

// mainAxis maps a container direction onto its flow axis.
func mainAxis(d Direction) axis {
	if d == Column || d == ColumnReverse {
		return axisColumn
	}
	return axisRow
}

func isReverse(d Direction) bool {
	return d == RowReverse || d == ColumnReverse
}

// sides holds resolved per-edge float values indexed by Edge.
type sides [4]float64

func (s sides) leading(a axis) float64 {
	return s[a.leading()]
}

func (s sides) trailing(a axis) float64 {
	return s[a.trailing()]
}

// sum returns the total on both ends of an axis.
func (s sides) sum(a axis) float64 {
	return s[a.leading()] + s[a.trailing()]
}

func (s sides) add(o sides) sides {
	return sides{s[0] + o[0], s[1] + o[1], s[2] + o[2], s[3] + o[3]}
}
