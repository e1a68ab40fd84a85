// Package flex is a flexbox layout engine for character-cell grids.
//
// Users build a tree of [Node] values, each carrying a [Style], and call
// [Calculate] with the size of the terminal. Every node then reports an
// integer [Layout]: its border box relative to its parent, its content box,
// and its position in root coordinates.
//
//	root := flex.NewNode(flex.DefaultStyle())
//	root.SetDirection(flex.Column)
//	header := flex.NewNode(flex.DefaultStyle())
//	header.SetHeight(flex.Fixed(3))
//	body := flex.NewNode(flex.DefaultStyle())
//	body.SetFlexGrow(1)
//	root.AddChild(header, body)
//	flex.Calculate(root, 80, 24)
//
// Leaves with intrinsic content, such as text, install a [MeasureFunc].
// Layout is incremental: style and tree changes mark nodes dirty, and the
// next Calculate only revisits what changed.
package flex
