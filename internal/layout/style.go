package layout

import "math"

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	Column                         // Children laid out top-to-bottom
	RowReverse                     // Children laid out right-to-left
	ColumnReverse                  // Children laid out bottom-to-top
)

// Wrap controls whether children may break onto multiple lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota // Single line; children shrink or overflow
	WrapLines               // Break onto new lines stacked along the cross axis
	WrapReverse             // Like WrapLines, lines stacked from the cross end
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children (AlignItems, AlignSelf) or lines
// (AlignContent) are positioned on the cross axis.
type Align uint8

const (
	AlignAuto         Align = iota // AlignSelf: inherit; AlignItems: stretch; AlignContent: start
	AlignStart                     // Align to start of cross axis
	AlignEnd                       // Align to end of cross axis
	AlignCenter                    // Center on cross axis
	AlignStretch                   // Stretch to fill cross axis
	AlignSpaceBetween              // AlignContent only
	AlignSpaceAround               // AlignContent only
	AlignSpaceEvenly               // AlignContent only
)

// PositionType selects normal flow or out-of-flow positioning.
type PositionType uint8

const (
	Relative PositionType = iota // In flow; Position offsets nudge the box after layout
	Absolute                     // Out of flow; placed against the parent's content box
)

// Overflow describes how content larger than the box is treated.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll // Children are measured unconstrained along the scroll axis
)

// Style contains all layout properties for a node.
//
// Style is a plain value: comparing two styles with == tells whether a
// change needs a relayout.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// AspectRatio is width divided by height. Zero disables it.
	AspectRatio float64

	// Flex container properties
	Direction      Direction
	Wrap           Wrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   Align
	Gap            int // Space between children and between wrapped lines

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value   // Hypothetical main size before grow/shrink
	AlignSelf  Align   // Override parent's AlignItems (AlignAuto = inherit)

	// Spacing
	Margin  Edges
	Padding Edges
	Border  Edges

	// Positioning
	PositionType PositionType
	Position     Edges

	Overflow Overflow

	// Atomic removes the node from layout entirely: it occupies no space
	// and resolves to a zero-size box.
	Atomic bool
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
	}
}

func (s *Style) dimension(a axis) Value {
	if a == axisRow {
		return s.Width
	}
	return s.Height
}

func (s *Style) minDimension(a axis) Value {
	if a == axisRow {
		return s.MinWidth
	}
	return s.MinHeight
}

func (s *Style) maxDimension(a axis) Value {
	if a == axisRow {
		return s.MaxWidth
	}
	return s.MaxHeight
}

// resolvedDimension returns the style size on an axis, or undefined.
func (s *Style) resolvedDimension(a axis, ownerSize float64) float64 {
	v := s.dimension(a).resolve(ownerSize)
	if isDefined(v) && v < 0 {
		return 0
	}
	return v
}

// aspectRatio returns a usable ratio or undefined.
func (s *Style) aspectRatio() float64 {
	r := s.AspectRatio
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return undefined
	}
	return r
}

// margin resolves one margin edge. Percentages resolve against the owner's
// width, as in CSS; auto margins resolve to zero here.
func (s *Style) margin(e Edge, ownerWidth float64) float64 {
	return finiteOr(s.Margin.Get(e).Resolve(ownerWidth, 0), 0)
}

func (s *Style) margins(ownerWidth float64) sides {
	return sides{
		s.margin(EdgeLeft, ownerWidth),
		s.margin(EdgeTop, ownerWidth),
		s.margin(EdgeRight, ownerWidth),
		s.margin(EdgeBottom, ownerWidth),
	}
}

func (s *Style) marginIsAuto(e Edge) bool {
	return s.Margin.Get(e).IsAuto()
}

func (s *Style) padding(ownerWidth float64) sides {
	return nonNegativeSides(s.Padding, ownerWidth)
}

func (s *Style) border(ownerWidth float64) sides {
	return nonNegativeSides(s.Border, ownerWidth)
}

func (s *Style) paddingAndBorder(ownerWidth float64) sides {
	return s.padding(ownerWidth).add(s.border(ownerWidth))
}

func nonNegativeSides(e Edges, ownerWidth float64) sides {
	var out sides
	for edge := EdgeLeft; edge <= EdgeBottom; edge++ {
		out[edge] = orZero(e.Get(edge).Resolve(ownerWidth, 0))
	}
	return out
}

// offset resolves a position offset against the containing block size on
// the edge's axis. An indeterminate containing block makes a percentage
// contribute zero.
func (s *Style) offset(e Edge, containing float64) (float64, bool) {
	v := s.Position.Get(e)
	switch v.Unit {
	case UnitFixed:
		return v.Amount, true
	case UnitPercent:
		if !isDefined(containing) {
			return 0, true
		}
		return containing * v.Amount / 100.0, true
	default:
		return 0, false
	}
}

// relativeOffset returns how far a relatively positioned box moves along
// an axis: the leading offset if set, otherwise the negated trailing one.
func (s *Style) relativeOffset(a axis, containing float64) float64 {
	if v, ok := s.offset(a.leading(), containing); ok {
		return v
	}
	if v, ok := s.offset(a.trailing(), containing); ok {
		return -v
	}
	return 0
}

// alignFor returns the effective cross-axis alignment of child inside a
// container with this style.
func (s *Style) alignFor(child *Style) Align {
	align := child.AlignSelf
	if align == AlignAuto {
		align = s.AlignItems
	}
	switch align {
	case AlignAuto, AlignSpaceBetween, AlignSpaceAround, AlignSpaceEvenly:
		return AlignStretch
	}
	return align
}

func (s *Style) isFlexible() bool {
	return s.PositionType == Relative && (s.FlexGrow > 0 || s.FlexShrink > 0)
}

func (s *Style) inFlow() bool {
	return !s.Atomic && s.PositionType != Absolute
}

// boundAxisWithinMinMax clamps value to the style's min/max on an axis.
// When min exceeds max, min wins.
func (s *Style) boundAxisWithinMinMax(a axis, value, axisSize float64) float64 {
	minV := s.minDimension(a).resolve(axisSize)
	maxV := s.maxDimension(a).resolve(axisSize)
	if isDefined(maxV) && maxV >= 0 && value > maxV {
		value = maxV
	}
	if isDefined(minV) && minV >= 0 && value < minV {
		value = minV
	}
	return value
}

// boundAxis additionally keeps the value above the node's padding+border.
func (s *Style) boundAxis(a axis, value, axisSize, ownerWidth float64) float64 {
	return maxDefined(s.boundAxisWithinMinMax(a, value, axisSize), s.paddingAndBorder(ownerWidth).sum(a))
}

// normalized replaces NaN amounts so that == comparison stays meaningful.
func (s Style) normalized() Style {
	fix := func(f float64) float64 {
		if math.IsNaN(f) {
			return 0
		}
		return f
	}
	fixValue := func(v *Value) {
		if math.IsNaN(v.Amount) || math.IsInf(v.Amount, 0) {
			*v = Value{}
		}
	}
	fixEdges := func(e *Edges) {
		for _, v := range []*Value{&e.Top, &e.Right, &e.Bottom, &e.Left, &e.Start, &e.End} {
			fixValue(v)
		}
	}

	s.AspectRatio = fix(s.AspectRatio)
	s.FlexGrow = fix(s.FlexGrow)
	s.FlexShrink = fix(s.FlexShrink)
	for _, v := range []*Value{&s.Width, &s.Height, &s.MinWidth, &s.MinHeight, &s.MaxWidth, &s.MaxHeight, &s.FlexBasis} {
		fixValue(v)
	}
	fixEdges(&s.Margin)
	fixEdges(&s.Padding)
	fixEdges(&s.Border)
	fixEdges(&s.Position)
	return s
}
