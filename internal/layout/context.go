package layout

// SetContext stores a caller-owned value on the node. The engine never
// reads it; it travels with the node across Calculate calls.
func SetContext[T any](n *Node, v T) {
	n.context = v
}

// ContextOf returns the node's context value if it holds a T.
func ContextOf[T any](n *Node) (T, bool) {
	v, ok := n.context.(T)
	return v, ok
}

// ClearContext removes any context value from the node.
func (n *Node) ClearContext() {
	n.context = nil
}
