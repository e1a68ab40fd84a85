package layout

import "testing"

func TestCalculate_FlexGrow(t *testing.T) {
	parent := newTestNode(sized(100, 50))
	parent.style.Direction = Row

	// Fixed child
	fixed := newTestNode(sized(30, 50))

	// Growing child
	growing := newTestNode(sized(0, 50)) // Start at 0
	growing.style.FlexGrow = 1

	parent.AddChild(fixed, growing)
	Calculate(parent, 200, 200)

	// Fixed child should stay at 30
	if fixed.layout.Bounds.Width != 30 {
		t.Errorf("fixed width = %d, want 30", fixed.layout.Bounds.Width)
	}

	// Growing child should expand to fill remaining space (100 - 30 = 70)
	if growing.layout.Bounds.Width != 70 {
		t.Errorf("growing width = %d, want 70", growing.layout.Bounds.Width)
	}
	if growing.layout.Bounds.X != 30 {
		t.Errorf("growing.X = %d, want 30", growing.layout.Bounds.X)
	}
}

func TestCalculate_FlexGrow_ProportionalDistribution(t *testing.T) {
	parent := newTestNode(sized(100, 50))

	child1 := newTestNode(sized(0, 50))
	child1.style.FlexGrow = 1

	child2 := newTestNode(sized(0, 50))
	child2.style.FlexGrow = 3

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 200)

	// Child1 should get 1/4 of space (25), child2 should get 3/4 (75)
	if child1.layout.Bounds.Width != 25 {
		t.Errorf("child1 width = %d, want 25", child1.layout.Bounds.Width)
	}
	if child2.layout.Bounds.Width != 75 {
		t.Errorf("child2 width = %d, want 75", child2.layout.Bounds.Width)
	}
}

func TestCalculate_FlexGrow_EqualThirds(t *testing.T) {
	parent := newTestNode(sized(32, 16))

	var children []*Node
	for range 3 {
		child := newTestNode(DefaultStyle())
		child.style.FlexGrow = 1
		children = append(children, child)
	}
	parent.AddChild(children...)
	Calculate(parent, 32, 16)

	want := []Rect{
		NewRect(0, 0, 11, 16),
		NewRect(11, 0, 10, 16),
		NewRect(21, 0, 11, 16),
	}
	for i, child := range children {
		if child.layout.Bounds != want[i] {
			t.Errorf("child[%d].Bounds = %+v, want %+v", i, child.layout.Bounds, want[i])
		}
	}
}

func TestCalculate_FlexGrow_FractionalSum(t *testing.T) {
	type tc struct {
		grows  []float64
		widths []int
	}

	tests := map[string]tc{
		"half": {
			grows:  []float64{0.5},
			widths: []int{50},
		},
		"two quarters": {
			grows:  []float64{0.25, 0.25},
			widths: []int{25, 25},
		},
		"sum of one fills": {
			grows:  []float64{0.5, 0.5},
			widths: []int{50, 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newTestNode(sized(100, 10))
			var children []*Node
			for _, g := range tt.grows {
				child := newTestNode(sized(0, 10))
				child.style.FlexGrow = g
				children = append(children, child)
			}
			parent.AddChild(children...)
			Calculate(parent, 100, 10)

			for i, child := range children {
				if child.layout.Bounds.Width != tt.widths[i] {
					t.Errorf("child[%d].Width = %d, want %d", i, child.layout.Bounds.Width, tt.widths[i])
				}
			}
		})
	}
}

func TestCalculate_FlexBasis_Column(t *testing.T) {
	parent := newTestNode(sized(32, 16))
	parent.style.Direction = Column

	first := newTestNode(DefaultStyle())
	first.style.FlexGrow = 1
	first.style.FlexBasis = Fixed(8)

	second := newTestNode(DefaultStyle())
	second.style.FlexGrow = 1

	parent.AddChild(first, second)
	Calculate(parent, 32, 16)

	if first.layout.Bounds != NewRect(0, 0, 32, 12) {
		t.Errorf("first.Bounds = %+v, want {0 0 32 12}", first.layout.Bounds)
	}
	if second.layout.Bounds != NewRect(0, 12, 32, 4) {
		t.Errorf("second.Bounds = %+v, want {0 12 32 4}", second.layout.Bounds)
	}
}

func TestCalculate_FlexBasis_Percent(t *testing.T) {
	parent := newTestNode(sized(80, 10))

	child := newTestNode(DefaultStyle())
	child.style.FlexBasis = Percent(25)
	child.style.Width = Fixed(60) // basis wins over width

	parent.AddChild(child)
	Calculate(parent, 80, 10)

	if child.layout.Bounds.Width != 20 {
		t.Errorf("child.Width = %d, want 20", child.layout.Bounds.Width)
	}
}

func TestCalculate_FlexShrink(t *testing.T) {
	parent := newTestNode(sized(100, 50))

	// Children that together exceed parent width
	child1 := newTestNode(sized(60, 50))
	child2 := newTestNode(sized(60, 50))

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 200)

	// Total = 120, available = 100, overflow = 20
	// Each should shrink by 10 (equal shrink factors and bases)
	if child1.layout.Bounds.Width != 50 {
		t.Errorf("child1 width = %d, want 50", child1.layout.Bounds.Width)
	}
	if child2.layout.Bounds.Width != 50 {
		t.Errorf("child2 width = %d, want 50", child2.layout.Bounds.Width)
	}
	if child2.layout.Bounds.X != 50 {
		t.Errorf("child2.X = %d, want 50", child2.layout.Bounds.X)
	}
	if parent.layout.HadOverflow {
		t.Error("parent.HadOverflow = true, want false after shrinking")
	}
}

func TestCalculate_FlexShrink_ProportionalDistribution(t *testing.T) {
	parent := newTestNode(sized(100, 50))

	child1 := newTestNode(sized(60, 50))
	child1.style.FlexShrink = 1

	child2 := newTestNode(sized(60, 50))
	child2.style.FlexShrink = 3

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 200)

	// Shrink weights are shrink*basis: 60 and 180. Overflow 20 splits 5/15.
	if child1.layout.Bounds.Width != 55 {
		t.Errorf("child1 width = %d, want 55", child1.layout.Bounds.Width)
	}
	if child2.layout.Bounds.Width != 45 {
		t.Errorf("child2 width = %d, want 45", child2.layout.Bounds.Width)
	}
}

func TestCalculate_FlexShrink_BasisWeighted(t *testing.T) {
	parent := newTestNode(sized(60, 10))

	small := newTestNode(sized(20, 10))
	large := newTestNode(sized(60, 10))

	parent.AddChild(small, large)
	Calculate(parent, 60, 10)

	// Overflow 20 is split 1:3 by basis.
	if small.layout.Bounds.Width != 15 {
		t.Errorf("small width = %d, want 15", small.layout.Bounds.Width)
	}
	if large.layout.Bounds.Width != 45 {
		t.Errorf("large width = %d, want 45", large.layout.Bounds.Width)
	}
}

func TestCalculate_NoShrinkOverflows(t *testing.T) {
	parent := newTestNode(sized(30, 10))

	child := newTestNode(sized(50, 10))
	child.style.FlexShrink = 0

	parent.AddChild(child)
	Calculate(parent, 30, 10)

	if child.layout.Bounds.Width != 50 {
		t.Errorf("child width = %d, want 50", child.layout.Bounds.Width)
	}
	if !parent.layout.HadOverflow {
		t.Error("parent.HadOverflow = false, want true")
	}
}

func TestCalculate_WithGap(t *testing.T) {
	parent := newTestNode(sized(100, 50))
	parent.style.Gap = 10

	child1 := newTestNode(sized(20, 50))
	child2 := newTestNode(sized(20, 50))
	child3 := newTestNode(sized(20, 50))

	parent.AddChild(child1, child2, child3)
	Calculate(parent, 100, 50)

	// Positions: 0, 20+10=30, 30+20+10=60
	for i, want := range []int{0, 30, 60} {
		got := parent.Child(i).layout.Bounds.X
		if got != want {
			t.Errorf("child[%d].X = %d, want %d", i, got, want)
		}
	}
}

func TestCalculate_GapReducesGrowSpace(t *testing.T) {
	parent := newTestNode(sized(22, 5))
	parent.style.Gap = 2

	a := newTestNode(DefaultStyle())
	a.style.FlexGrow = 1
	b := newTestNode(DefaultStyle())
	b.style.FlexGrow = 1

	parent.AddChild(a, b)
	Calculate(parent, 22, 5)

	if a.layout.Bounds != NewRect(0, 0, 10, 5) {
		t.Errorf("a.Bounds = %+v, want {0 0 10 5}", a.layout.Bounds)
	}
	if b.layout.Bounds != NewRect(12, 0, 10, 5) {
		t.Errorf("b.Bounds = %+v, want {12 0 10 5}", b.layout.Bounds)
	}
}

func TestCalculate_MinWidth_Constraint(t *testing.T) {
	parent := newTestNode(sized(100, 50))

	child := newTestNode(DefaultStyle())
	child.style.Width = Fixed(10)
	child.style.MinWidth = Fixed(30)

	parent.AddChild(child)
	Calculate(parent, 100, 50)

	if child.layout.Bounds.Width != 30 {
		t.Errorf("child width = %d, want 30 (min)", child.layout.Bounds.Width)
	}
}

func TestCalculate_MaxWidth_Constraint(t *testing.T) {
	parent := newTestNode(sized(100, 50))

	child := newTestNode(DefaultStyle())
	child.style.FlexGrow = 1
	child.style.MaxWidth = Fixed(40)

	parent.AddChild(child)
	Calculate(parent, 100, 50)

	if child.layout.Bounds.Width != 40 {
		t.Errorf("child width = %d, want 40 (max)", child.layout.Bounds.Width)
	}
}

func TestCalculate_MinMax_FlexGrow(t *testing.T) {
	parent := newTestNode(sized(100, 50))

	capped := newTestNode(DefaultStyle())
	capped.style.FlexGrow = 1
	capped.style.MaxWidth = Fixed(20)

	free := newTestNode(DefaultStyle())
	free.style.FlexGrow = 1

	parent.AddChild(capped, free)
	stats := CalculateWithStats(parent, 100, 50)

	// The capped item freezes at 20 and the rest goes to its sibling.
	if capped.layout.Bounds.Width != 20 {
		t.Errorf("capped width = %d, want 20", capped.layout.Bounds.Width)
	}
	if free.layout.Bounds != NewRect(20, 0, 80, 50) {
		t.Errorf("free.Bounds = %+v, want {20 0 80 50}", free.layout.Bounds)
	}
	if stats.FreezeIterations < 2 {
		t.Errorf("FreezeIterations = %d, want at least 2", stats.FreezeIterations)
	}
}

func TestCalculate_MinMax_FlexShrink(t *testing.T) {
	parent := newTestNode(sized(100, 50))

	floor := newTestNode(sized(60, 50))
	floor.style.MinWidth = Fixed(55)

	other := newTestNode(sized(60, 50))

	parent.AddChild(floor, other)
	Calculate(parent, 100, 50)

	if floor.layout.Bounds.Width != 55 {
		t.Errorf("floor width = %d, want 55", floor.layout.Bounds.Width)
	}
	if other.layout.Bounds.Width != 45 {
		t.Errorf("other width = %d, want 45", other.layout.Bounds.Width)
	}
}

func TestCalculate_MinHeight_Column(t *testing.T) {
	parent := newTestNode(sized(50, 100))
	parent.style.Direction = Column

	child := newTestNode(DefaultStyle())
	child.style.Height = Fixed(5)
	child.style.MinHeight = Fixed(20)

	parent.AddChild(child)
	Calculate(parent, 50, 100)

	if child.layout.Bounds.Height != 20 {
		t.Errorf("child height = %d, want 20", child.layout.Bounds.Height)
	}
}

func TestCalculate_MinMax_MinWins(t *testing.T) {
	parent := newTestNode(sized(100, 50))

	child := newTestNode(DefaultStyle())
	child.style.Width = Fixed(10)
	child.style.MinWidth = Fixed(20)
	child.style.MaxWidth = Fixed(15)

	parent.AddChild(child)
	Calculate(parent, 100, 50)

	if child.layout.Bounds.Width != 20 {
		t.Errorf("child width = %d, want 20 (min beats max)", child.layout.Bounds.Width)
	}
}

func TestCalculate_PaddingFloorsSize(t *testing.T) {
	parent := newTestNode(sized(10, 10))

	child := newTestNode(DefaultStyle())
	child.style.Width = Fixed(2)
	child.style.Padding = EdgeSymmetric(0, 3)

	parent.AddChild(child)
	Calculate(parent, 10, 10)

	if child.layout.Bounds.Width != 6 {
		t.Errorf("child width = %d, want 6 (padding floor)", child.layout.Bounds.Width)
	}
}

func TestCalculate_Wrap(t *testing.T) {
	type tc struct {
		wrap         Wrap
		alignContent Align
		gap          int
		positions    []Point
	}

	tests := map[string]tc{
		"wrap starts new line": {
			wrap:      WrapLines,
			positions: []Point{{0, 0}, {12, 0}, {0, 5}},
		},
		"gap between items and lines": {
			wrap:      WrapLines,
			gap:       1,
			positions: []Point{{0, 0}, {13, 0}, {0, 6}},
		},
		"align content end": {
			wrap:         WrapLines,
			alignContent: AlignEnd,
			positions:    []Point{{0, 10}, {12, 10}, {0, 15}},
		},
		"align content center": {
			wrap:         WrapLines,
			alignContent: AlignCenter,
			positions:    []Point{{0, 5}, {12, 5}, {0, 10}},
		},
		"align content space between": {
			wrap:         WrapLines,
			alignContent: AlignSpaceBetween,
			positions:    []Point{{0, 0}, {12, 0}, {0, 15}},
		},
		"wrap reverse stacks from the end": {
			wrap:      WrapReverse,
			positions: []Point{{0, 15}, {12, 15}, {0, 10}},
		},
		"no wrap shrinks on one line": {
			wrap:      NoWrap,
			positions: []Point{{0, 0}, {10, 0}, {20, 0}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newTestNode(sized(30, 20))
			parent.style.Wrap = tt.wrap
			parent.style.AlignContent = tt.alignContent
			parent.style.Gap = tt.gap

			var children []*Node
			for range 3 {
				children = append(children, newTestNode(sized(12, 5)))
			}
			parent.AddChild(children...)
			Calculate(parent, 30, 20)

			for i, child := range children {
				got := child.layout.Bounds.Origin()
				if got != tt.positions[i] {
					t.Errorf("child[%d] position = %+v, want %+v", i, got, tt.positions[i])
				}
			}
		})
	}
}

func TestCalculate_Wrap_AlignContentStretch(t *testing.T) {
	parent := newTestNode(sized(30, 20))
	parent.style.Wrap = WrapLines
	parent.style.AlignContent = AlignStretch

	var children []*Node
	for range 3 {
		child := newTestNode(DefaultStyle())
		child.style.Width = Fixed(12)
		children = append(children, child)
	}
	parent.AddChild(children...)
	Calculate(parent, 30, 20)

	want := []Rect{
		NewRect(0, 0, 12, 10),
		NewRect(12, 0, 12, 10),
		NewRect(0, 10, 12, 10),
	}
	for i, child := range children {
		if child.layout.Bounds != want[i] {
			t.Errorf("child[%d].Bounds = %+v, want %+v", i, child.layout.Bounds, want[i])
		}
	}
}

func TestCalculate_Wrap_OversizedItemGetsOwnLine(t *testing.T) {
	parent := newTestNode(sized(10, 20))
	parent.style.Wrap = WrapLines

	big := newTestNode(sized(15, 3))
	big.style.FlexShrink = 0
	small := newTestNode(sized(4, 3))

	parent.AddChild(big, small)
	Calculate(parent, 10, 20)

	if big.layout.Bounds != NewRect(0, 0, 15, 3) {
		t.Errorf("big.Bounds = %+v, want {0 0 15 3}", big.layout.Bounds)
	}
	if small.layout.Bounds != NewRect(0, 3, 4, 3) {
		t.Errorf("small.Bounds = %+v, want {0 3 4 3}", small.layout.Bounds)
	}
}
