// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/layout"
)

// Node is an element of the layout tree.
type Node = layout.Node

// Style holds the layout properties for a node.
type Style = layout.Style

// Layout holds the computed geometry of a node.
type Layout = layout.Layout

// Stats describes the work done by one Calculate pass.
type Stats = layout.Stats

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// Wrap controls whether children may break onto multiple lines.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapLines   = layout.WrapLines
	WrapReverse = layout.WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children or lines are placed on the cross axis.
type Align = layout.Align

const (
	AlignAuto         = layout.AlignAuto
	AlignStart        = layout.AlignStart
	AlignEnd          = layout.AlignEnd
	AlignCenter       = layout.AlignCenter
	AlignStretch      = layout.AlignStretch
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
	AlignSpaceEvenly  = layout.AlignSpaceEvenly
)

// PositionType selects normal flow or out-of-flow positioning.
type PositionType = layout.PositionType

const (
	Relative = layout.Relative
	Absolute = layout.Absolute
)

// Overflow describes how content larger than the box is treated.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// Value represents a dimension value (undefined, auto, fixed or percent).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitUndefined = layout.UnitUndefined
	UnitFixed     = layout.UnitFixed
	UnitPercent   = layout.UnitPercent
	UnitAuto      = layout.UnitAuto
)

// MeasureMode describes how a measured dimension is constrained.
type MeasureMode = layout.MeasureMode

const (
	MeasureUndefined = layout.MeasureUndefined
	MeasureExactly   = layout.MeasureExactly
	MeasureAtMost    = layout.MeasureAtMost
)

// MeasureFunc reports the content size of a leaf node.
type MeasureFunc = layout.MeasureFunc

// Size is a width/height pair in cells.
type Size = layout.Size

// Rect is a box on the cell grid.
type Rect = layout.Rect

// Point is an x/y cell coordinate.
type Point = layout.Point

// Edges holds per-side style values.
type Edges = layout.Edges

// Edge names a physical side of a box.
type Edge = layout.Edge

const (
	EdgeLeft   = layout.EdgeLeft
	EdgeTop    = layout.EdgeTop
	EdgeRight  = layout.EdgeRight
	EdgeBottom = layout.EdgeBottom
)

// Insets are resolved per-side cell counts.
type Insets = layout.Insets

// Unconstrained can be passed to Calculate for a dimension with no limit.
const Unconstrained = layout.Unconstrained

// NewNode creates a node with the given style. New nodes are dirty.
func NewNode(style Style) *Node {
	return layout.NewNode(style)
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// Fixed creates a Value with a fixed cell count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Length creates a fixed Value that may be fractional.
func Length(cells float64) Value {
	return layout.Length(cells)
}

// Percent creates a Value representing a percentage of the containing block.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Undefined creates an unset Value.
func Undefined() Value {
	return layout.Undefined()
}

// ParseValue parses "auto", "50%", "12" or "12.5".
func ParseValue(s string) (Value, error) {
	return layout.ParseValue(s)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same cell count on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeValue creates Edges with the same Value on all sides.
func EdgeValue(v Value) Edges {
	return layout.EdgeValue(v)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Calculate performs flexbox layout on the tree rooted at root. Pass
// Unconstrained for a dimension that should size to content.
func Calculate(root *Node, availableWidth, availableHeight float64) {
	layout.Calculate(root, availableWidth, availableHeight)
}

// CalculateWithStats is Calculate that also reports the work performed.
func CalculateWithStats(root *Node, availableWidth, availableHeight float64) Stats {
	return layout.CalculateWithStats(root, availableWidth, availableHeight)
}

// SetContext stores a caller-owned value on the node.
func SetContext[T any](n *Node, v T) {
	layout.SetContext(n, v)
}

// ContextOf returns the node's context value if it holds a T.
func ContextOf[T any](n *Node) (T, bool) {
	return layout.ContextOf[T](n)
}

// SetLogger routes the engine's debug output to l. Passing nil silences it.
func SetLogger(l *zap.Logger) {
	debug.SetLogger(l)
}
