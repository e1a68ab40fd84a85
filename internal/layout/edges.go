package layout

// Edges holds per-side style values for margin, padding, border and
// position offsets.
//
// Start and End are logical edges. They resolve onto Left and Right; no
// text-direction flipping is performed. When a physical edge and its logical
// counterpart are both set, the physical value wins.
type Edges struct {
	Top, Right, Bottom, Left Value
	Start, End               Value
}

// EdgeAll creates Edges with the same cell count on all sides.
func EdgeAll(n int) Edges {
	return EdgeValue(Fixed(n))
}

// EdgeValue creates Edges with the same Value on all sides.
func EdgeValue(v Value) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: Fixed(v), Right: Fixed(h), Bottom: Fixed(v), Left: Fixed(h)}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: Fixed(t), Right: Fixed(r), Bottom: Fixed(b), Left: Fixed(l)}
}

// Get returns the effective Value for a physical edge.
func (e Edges) Get(edge Edge) Value {
	switch edge {
	case EdgeLeft:
		if e.Left.IsDefined() {
			return e.Left
		}
		return e.Start
	case EdgeRight:
		if e.Right.IsDefined() {
			return e.Right
		}
		return e.End
	case EdgeTop:
		return e.Top
	case EdgeBottom:
		return e.Bottom
	}
	return Value{}
}

// IsZero reports whether no edge is set.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// Insets are resolved per-side cell counts reported in Layout.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Horizontal returns the sum of Left and Right.
func (i Insets) Horizontal() int {
	return i.Left + i.Right
}

// Vertical returns the sum of Top and Bottom.
func (i Insets) Vertical() int {
	return i.Top + i.Bottom
}

// IsZero returns true if all inset values are zero.
func (i Insets) IsZero() bool {
	return i.Top == 0 && i.Right == 0 && i.Bottom == 0 && i.Left == 0
}

// Add returns the per-side sum of two insets.
func (i Insets) Add(o Insets) Insets {
	return Insets{
		Top:    i.Top + o.Top,
		Right:  i.Right + o.Right,
		Bottom: i.Bottom + o.Bottom,
		Left:   i.Left + o.Left,
	}
}
