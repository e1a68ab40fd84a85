package layout

import "slices"

// Node represents an element in the layout tree.
//
// A node exclusively owns its children; their order is the main-axis flow
// order. The parent pointer is non-owning and is only walked to propagate
// dirty flags.
type Node struct {
	// Configuration (user-set)
	style    Style
	children []*Node
	measure  MeasureFunc
	context  any
	dirtied  func(*Node)

	// Computed (set by layout engine)
	layout Layout

	// Internal state
	dirty        bool  // Needs recalculation
	parent       *Node // Back-pointer for dirty propagation
	state        nodeState
	measureCache *measureCache
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	n := &Node{
		style: style.normalized(),
		dirty: true, // New nodes need layout
	}
	n.state.reset()
	return n
}

// Style returns a copy of the node's style.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle replaces the style. The node is only marked dirty when the new
// style differs from the current one.
func (n *Node) SetStyle(style Style) {
	style = style.normalized()
	if style == n.style {
		return
	}
	atomicChanged := style.Atomic != n.style.Atomic
	n.style = style
	n.markDirty()

	// Flow membership changed, so every sibling may move.
	if atomicChanged && n.parent != nil {
		for _, sibling := range n.parent.children {
			if sibling != n {
				sibling.markDirty()
			}
		}
	}
}

// UpdateStyle applies fn to a copy of the style and stores the result
// through SetStyle.
func (n *Node) UpdateStyle(fn func(*Style)) {
	style := n.style
	fn(&style)
	n.SetStyle(style)
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index i, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the children in flow order. The slice is a copy.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// AddChild appends children and marks this node dirty.
// It panics if a child already belongs to another node.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		n.adopt(child)
		n.children = append(n.children, child)
	}
	if len(children) > 0 {
		n.markDirty()
	}
}

// InsertChild inserts child at index, clamped to [0, ChildCount()].
func (n *Node) InsertChild(child *Node, index int) {
	n.adopt(child)
	index = max(0, min(index, len(n.children)))
	n.children = slices.Insert(n.children, index, child)
	n.markDirty()
}

func (n *Node) adopt(child *Node) {
	if child == nil {
		panic("layout: nil child")
	}
	if child.parent != nil {
		panic("layout: child already has a parent; remove it first")
	}
	if child == n {
		panic("layout: node cannot be its own child")
	}
	child.parent = n
}

// RemoveChild removes a child by pointer and marks dirty. The removed
// node's layout is reset so it never reports stale geometry.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	n.detach(child)
	n.markDirty()
	return true
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, child := range n.children {
		n.detach(child)
	}
	n.children = nil
	n.markDirty()
}

func (n *Node) detach(child *Node) {
	child.parent = nil
	child.layout = Layout{}
	child.state.reset()
	child.markDirty()
}

// SetMeasureFunc installs the content measurement capability. It is only
// consulted while the node has no children. Passing nil removes it.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	if fn == nil && n.measure == nil {
		return
	}
	n.measure = fn
	n.MarkDirty()
}

// HasMeasureFunc reports whether a measurement capability is installed.
func (n *Node) HasMeasureFunc() bool {
	return n.measure != nil
}

// SetDirtiedFunc registers fn to be called each time the node goes from
// clean to dirty.
func (n *Node) SetDirtiedFunc(fn func(*Node)) {
	n.dirtied = fn
}

// MarkDirty tells the engine that the node's content changed. Cached
// measurements are dropped and the node and its ancestors are marked dirty.
func (n *Node) MarkDirty() {
	if n.measureCache != nil {
		n.measureCache.purge()
	}
	n.markDirty()
}

// markDirty marks this node and all ancestors as needing recalculation.
func (n *Node) markDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
		if node.dirtied != nil {
			node.dirtied(node)
		}
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// Layout returns the last computed layout.
func (n *Node) Layout() Layout {
	return n.layout
}

// Setters below are shorthands for UpdateStyle.

func (n *Node) SetWidth(v Value)     { n.UpdateStyle(func(s *Style) { s.Width = v }) }
func (n *Node) SetHeight(v Value)    { n.UpdateStyle(func(s *Style) { s.Height = v }) }
func (n *Node) SetMinWidth(v Value)  { n.UpdateStyle(func(s *Style) { s.MinWidth = v }) }
func (n *Node) SetMinHeight(v Value) { n.UpdateStyle(func(s *Style) { s.MinHeight = v }) }
func (n *Node) SetMaxWidth(v Value)  { n.UpdateStyle(func(s *Style) { s.MaxWidth = v }) }
func (n *Node) SetMaxHeight(v Value) { n.UpdateStyle(func(s *Style) { s.MaxHeight = v }) }
func (n *Node) SetFlexGrow(f float64) {
	n.UpdateStyle(func(s *Style) { s.FlexGrow = f })
}
func (n *Node) SetFlexShrink(f float64) {
	n.UpdateStyle(func(s *Style) { s.FlexShrink = f })
}
func (n *Node) SetFlexBasis(v Value) { n.UpdateStyle(func(s *Style) { s.FlexBasis = v }) }
func (n *Node) SetDirection(d Direction) {
	n.UpdateStyle(func(s *Style) { s.Direction = d })
}
func (n *Node) SetWrap(w Wrap) { n.UpdateStyle(func(s *Style) { s.Wrap = w }) }
func (n *Node) SetJustifyContent(j Justify) {
	n.UpdateStyle(func(s *Style) { s.JustifyContent = j })
}
func (n *Node) SetAlignItems(a Align)   { n.UpdateStyle(func(s *Style) { s.AlignItems = a }) }
func (n *Node) SetAlignSelf(a Align)    { n.UpdateStyle(func(s *Style) { s.AlignSelf = a }) }
func (n *Node) SetAlignContent(a Align) { n.UpdateStyle(func(s *Style) { s.AlignContent = a }) }
func (n *Node) SetGap(gap int)          { n.UpdateStyle(func(s *Style) { s.Gap = gap }) }
func (n *Node) SetMargin(e Edges)       { n.UpdateStyle(func(s *Style) { s.Margin = e }) }
func (n *Node) SetPadding(e Edges)      { n.UpdateStyle(func(s *Style) { s.Padding = e }) }
func (n *Node) SetBorder(e Edges)       { n.UpdateStyle(func(s *Style) { s.Border = e }) }
func (n *Node) SetPosition(e Edges)     { n.UpdateStyle(func(s *Style) { s.Position = e }) }
func (n *Node) SetPositionType(p PositionType) {
	n.UpdateStyle(func(s *Style) { s.PositionType = p })
}
func (n *Node) SetAspectRatio(r float64) {
	n.UpdateStyle(func(s *Style) { s.AspectRatio = r })
}
func (n *Node) SetOverflow(o Overflow) { n.UpdateStyle(func(s *Style) { s.Overflow = o }) }
func (n *Node) SetAtomic(atomic bool)  { n.UpdateStyle(func(s *Style) { s.Atomic = atomic }) }
