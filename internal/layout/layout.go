package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Bounds is the border box relative to the parent's border box.
	Bounds Rect

	// ContentBounds is Bounds inset by border and padding, in the same
	// coordinate frame as Bounds. Children are placed inside it.
	ContentBounds Rect

	// Absolute is Bounds translated into root coordinates. Renderers draw
	// against it directly.
	Absolute Rect

	// Resolved edge sizes in cells.
	Margin  Insets
	Border  Insets
	Padding Insets

	// HadOverflow is set when in-flow children did not fit inside the
	// content box on either axis.
	HadOverflow bool

	computed bool
}

// IsUnset reports whether the layout was never computed or was reset
// because the node left its tree.
func (l Layout) IsUnset() bool {
	return !l.computed
}

// Size returns the width and height of the border box.
func (l Layout) Size() (width, height int) {
	return l.Bounds.Width, l.Bounds.Height
}
