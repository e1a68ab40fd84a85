package layout

import (
	"math"
	"testing"
)

func TestNode_Children(t *testing.T) {
	parent := newTestNode(DefaultStyle())
	a := newTestNode(DefaultStyle())
	b := newTestNode(DefaultStyle())
	c := newTestNode(DefaultStyle())

	parent.AddChild(a, c)
	parent.InsertChild(b, 1)

	if got := parent.ChildCount(); got != 3 {
		t.Fatalf("ChildCount() = %d, want 3", got)
	}
	for i, want := range []*Node{a, b, c} {
		if got := parent.Child(i); got != want {
			t.Errorf("Child(%d) = %p, want %p", i, got, want)
		}
		if want.Parent() != parent {
			t.Errorf("Child(%d).Parent() is not the parent", i)
		}
	}
	if parent.Child(-1) != nil || parent.Child(3) != nil {
		t.Error("Child() out of range should return nil")
	}

	children := parent.Children()
	children[0] = nil
	if parent.Child(0) != a {
		t.Error("Children() must return a copy")
	}
}

func TestNode_InsertChildClampsIndex(t *testing.T) {
	type tc struct {
		index    int
		expected int
	}

	tests := map[string]tc{
		"negative goes first": {index: -4, expected: 0},
		"middle":              {index: 1, expected: 1},
		"past the end goes last": {
			index:    10,
			expected: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newTestNode(DefaultStyle())
			parent.AddChild(newTestNode(DefaultStyle()), newTestNode(DefaultStyle()))
			child := newTestNode(DefaultStyle())
			parent.InsertChild(child, tt.index)

			if got := parent.Child(tt.expected); got != child {
				t.Errorf("inserted child not at index %d", tt.expected)
			}
		})
	}
}

func TestNode_AdoptPanics(t *testing.T) {
	type tc struct {
		setup func() (parent, child *Node)
	}

	tests := map[string]tc{
		"nil child": {
			setup: func() (*Node, *Node) {
				return newTestNode(DefaultStyle()), nil
			},
		},
		"child with a parent": {
			setup: func() (*Node, *Node) {
				owner := newTestNode(DefaultStyle())
				child := newTestNode(DefaultStyle())
				owner.AddChild(child)
				return newTestNode(DefaultStyle()), child
			},
		},
		"self": {
			setup: func() (*Node, *Node) {
				n := newTestNode(DefaultStyle())
				return n, n
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent, child := tt.setup()
			defer func() {
				if recover() == nil {
					t.Error("AddChild did not panic")
				}
			}()
			parent.AddChild(child)
		})
	}
}

func TestNode_RemoveChild(t *testing.T) {
	parent := newTestNode(sized(20, 10))
	child := newTestNode(sized(5, 5))
	parent.AddChild(child)
	Calculate(parent, 20, 10)

	if child.Layout().IsUnset() {
		t.Fatal("child layout should be computed")
	}

	if !parent.RemoveChild(child) {
		t.Fatal("RemoveChild() = false, want true")
	}
	if parent.RemoveChild(child) {
		t.Error("second RemoveChild() = true, want false")
	}
	if child.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if !child.Layout().IsUnset() {
		t.Errorf("removed child layout = %+v, want unset", child.Layout())
	}
	if !parent.IsDirty() {
		t.Error("parent should be dirty after RemoveChild")
	}

	// A removed node can join another tree.
	other := newTestNode(sized(8, 8))
	other.AddChild(child)
	Calculate(other, 8, 8)
	if child.Layout().Bounds != NewRect(0, 0, 5, 5) {
		t.Errorf("child.Bounds = %+v, want {0 0 5 5}", child.Layout().Bounds)
	}
}

func TestNode_RemoveAllChildren(t *testing.T) {
	parent := newTestNode(sized(20, 10))
	a := newTestNode(sized(5, 5))
	b := newTestNode(sized(5, 5))
	parent.AddChild(a, b)
	Calculate(parent, 20, 10)

	parent.RemoveAllChildren()
	if parent.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d, want 0", parent.ChildCount())
	}
	for _, child := range []*Node{a, b} {
		if child.Parent() != nil || !child.Layout().IsUnset() {
			t.Error("removed child kept its parent or layout")
		}
	}
	if !parent.IsDirty() {
		t.Error("parent should be dirty")
	}
}

func TestNode_DirtyPropagation(t *testing.T) {
	root := newTestNode(sized(40, 20))
	branch := newTestNode(DefaultStyle())
	leaf := newTestNode(sized(4, 4))
	sibling := newTestNode(sized(4, 4))
	branch.AddChild(leaf)
	root.AddChild(branch, sibling)

	Calculate(root, 40, 20)
	for i, n := range []*Node{root, branch, leaf, sibling} {
		if n.IsDirty() {
			t.Errorf("node %d dirty after Calculate", i)
		}
	}

	leaf.SetWidth(Fixed(6))
	for i, n := range []*Node{root, branch, leaf} {
		if !n.IsDirty() {
			t.Errorf("node %d clean after a descendant changed", i)
		}
	}
	if sibling.IsDirty() {
		t.Error("sibling should stay clean")
	}

	Calculate(root, 40, 20)
	if w, _ := leaf.Layout().Size(); w != 6 {
		t.Errorf("leaf width = %d, want 6", w)
	}
}

func TestNode_DirtiedCallback(t *testing.T) {
	root := newTestNode(sized(20, 10))
	leaf := newTestNode(sized(4, 4))
	root.AddChild(leaf)
	Calculate(root, 20, 10)

	calls := 0
	root.SetDirtiedFunc(func(n *Node) {
		if n != root {
			t.Errorf("callback got %p, want root", n)
		}
		calls++
	})

	leaf.SetWidth(Fixed(5))
	leaf.SetHeight(Fixed(5))
	if calls != 1 {
		t.Errorf("calls = %d, want 1 while already dirty", calls)
	}

	Calculate(root, 20, 10)
	leaf.MarkDirty()
	if calls != 2 {
		t.Errorf("calls = %d, want 2 after the next change", calls)
	}
}

func TestNode_SetStyleUnchanged(t *testing.T) {
	n := newTestNode(sized(10, 10))
	Calculate(n, 20, 20)

	n.SetStyle(n.Style())
	if n.IsDirty() {
		t.Error("equal style should not dirty the node")
	}

	// NaN fields compare equal after normalization.
	n.UpdateStyle(func(s *Style) { s.FlexGrow = math.NaN() })
	Calculate(n, 20, 20)
	n.UpdateStyle(func(s *Style) { s.FlexGrow = math.NaN() })
	if n.IsDirty() {
		t.Error("NaN FlexGrow should not dirty the node twice")
	}

	n.SetHeight(Fixed(12))
	if !n.IsDirty() {
		t.Error("changed style should dirty the node")
	}
}

func TestNode_SetMeasureFunc(t *testing.T) {
	n := newTestNode(DefaultStyle())
	Calculate(n, 10, 10)

	n.SetMeasureFunc(nil)
	if n.IsDirty() {
		t.Error("clearing an absent measure func should not dirty")
	}

	n.SetMeasureFunc(textMeasure(3, nil))
	if !n.HasMeasureFunc() || !n.IsDirty() {
		t.Error("installing a measure func should dirty the node")
	}
}

func TestNode_AtomicToggle(t *testing.T) {
	root := newTestNode(sized(30, 5))
	a := newTestNode(sized(10, 5))
	b := newTestNode(sized(10, 5))
	c := newTestNode(sized(10, 5))
	root.AddChild(a, b, c)
	Calculate(root, 30, 5)

	if c.Layout().Bounds.X != 20 {
		t.Fatalf("c.X = %d, want 20", c.Layout().Bounds.X)
	}

	b.SetAtomic(true)
	if !a.IsDirty() || !c.IsDirty() {
		t.Error("siblings should be dirty after an atomic toggle")
	}
	Calculate(root, 30, 5)

	if c.Layout().Bounds.X != 10 {
		t.Errorf("c.X = %d, want 10", c.Layout().Bounds.X)
	}
	if b.Layout().Bounds != (Rect{}) {
		t.Errorf("atomic b.Bounds = %+v, want zero", b.Layout().Bounds)
	}

	b.SetAtomic(false)
	Calculate(root, 30, 5)
	if c.Layout().Bounds.X != 20 {
		t.Errorf("c.X = %d, want 20 after restoring b", c.Layout().Bounds.X)
	}
	if b.Layout().Bounds != NewRect(10, 0, 10, 5) {
		t.Errorf("b.Bounds = %+v, want {10 0 10 5}", b.Layout().Bounds)
	}
}

func TestNode_AtomicRoot(t *testing.T) {
	root := newTestNode(sized(30, 5))
	root.style.Atomic = true
	child := newTestNode(sized(10, 5))
	root.AddChild(child)
	Calculate(root, 30, 5)

	if root.Layout().Bounds != (Rect{}) || child.Layout().Bounds != (Rect{}) {
		t.Errorf("atomic root produced %+v / %+v, want zero boxes", root.Layout().Bounds, child.Layout().Bounds)
	}
	if root.IsDirty() || child.IsDirty() {
		t.Error("atomic subtree should be clean after Calculate")
	}
}

func TestNode_Context(t *testing.T) {
	type widget struct{ name string }

	n := newTestNode(DefaultStyle())
	if _, ok := ContextOf[*widget](n); ok {
		t.Error("ContextOf on an empty node returned ok")
	}

	SetContext(n, &widget{name: "sidebar"})
	w, ok := ContextOf[*widget](n)
	if !ok || w.name != "sidebar" {
		t.Errorf("ContextOf() = %v, %v, want sidebar", w, ok)
	}
	if _, ok := ContextOf[string](n); ok {
		t.Error("ContextOf with the wrong type returned ok")
	}

	// Context is opaque to layout.
	Calculate(n, 5, 5)
	if w, _ := ContextOf[*widget](n); w == nil || w.name != "sidebar" {
		t.Error("context lost after Calculate")
	}

	n.ClearContext()
	if _, ok := ContextOf[*widget](n); ok {
		t.Error("ContextOf after ClearContext returned ok")
	}
}
