// Package layout implements a pure-Go flexbox layout engine for terminal UIs.
//
// It supports row/column directions (and their reverses), wrapping, justify
// and align modes, padding, margin, border, gap, min/max constraints,
// percentage and fixed dimensions, aspect ratios, absolute positioning and
// intrinsic sizing through measure callbacks. Types are re-exported through
// the root flex package for public consumption.
//
// The main entry point is [Calculate], which takes a [Node] tree and
// computes integer [Rect] boxes for each node. Geometry is computed in
// floats and snapped to cells in a final pass.
//
// Calculate is incremental: style and structure changes mark the node and
// its ancestors dirty, and clean subtrees reuse their cached layout.
// Calling Calculate twice with the same inputs yields the same result.
package layout
