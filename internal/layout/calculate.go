package layout

import (
	"math"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-flex/internal/debug"
)

// Unconstrained can be passed to Calculate for a dimension with no limit.
// Any negative or NaN value is treated the same way.
const Unconstrained = -1.0

// generations numbers Calculate passes. Cached results carry the generation
// that produced them, so a dirty node is recomputed once per pass.
var generations atomic.Uint64

// Stats describes the work done by one Calculate pass.
type Stats struct {
	Generation       uint64
	NodesVisited     int
	LayoutCacheHits  int
	MeasureCalls     int
	MeasureCacheHits int
	FreezeIterations int
}

// calc carries per-pass state through the recursion.
type calc struct {
	generation uint64
	log        *zap.Logger
	debug      bool
	stats      Stats
}

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout populated.
// Only dirty nodes are recalculated (incremental layout).
//
// availableWidth and availableHeight specify the root constraint
// (typically the terminal size). Pass Unconstrained to size a dimension
// purely from content.
func Calculate(root *Node, availableWidth, availableHeight float64) {
	CalculateWithStats(root, availableWidth, availableHeight)
}

// CalculateWithStats is Calculate that also reports how much work the
// pass performed.
func CalculateWithStats(root *Node, availableWidth, availableHeight float64) Stats {
	if root == nil {
		return Stats{}
	}

	log := debug.Logger()
	c := &calc{
		generation: generations.Add(1),
		log:        log,
		debug:      log.Core().Enabled(zapcore.DebugLevel),
	}
	c.stats.Generation = c.generation

	availW := normalizeAvailable(availableWidth)
	availH := normalizeAvailable(availableHeight)

	if root.style.Atomic {
		zeroOut(root)
	} else {
		// For the root node, resolve its width/height constraints against
		// the available space. Child nodes instead receive their size from
		// the parent's flex calculations.
		style := &root.style
		margin := style.margins(availW)
		width, widthMode := rootDimension(style, axisRow, availW, margin.sum(axisRow))
		height, heightMode := rootDimension(style, axisColumn, availH, margin.sum(axisColumn))

		if ratio := style.aspectRatio(); isDefined(ratio) {
			widthSet := isDefined(style.resolvedDimension(axisRow, availW))
			heightSet := isDefined(style.resolvedDimension(axisColumn, availH))
			switch {
			case widthSet && !heightSet:
				height = (width-margin.sum(axisRow))/ratio + margin.sum(axisColumn)
				heightMode = MeasureExactly
			case heightSet && !widthSet:
				width = (height-margin.sum(axisColumn))*ratio + margin.sum(axisRow)
				widthMode = MeasureExactly
			}
		}

		c.layoutNode(root, width, height, widthMode, heightMode, availW, availH, true)
		root.state.position = [2]float64{
			margin[EdgeLeft] + style.relativeOffset(axisRow, availW),
			margin[EdgeTop] + style.relativeOffset(axisColumn, availH),
		}
	}

	roundLayout(root, 0, 0, 0, 0)

	if c.debug {
		c.log.Debug("layout calculated",
			zap.Uint64("generation", c.generation),
			zap.Float64("available_width", finiteOr(availW, -1)),
			zap.Float64("available_height", finiteOr(availH, -1)),
			zap.Int("nodes_visited", c.stats.NodesVisited),
			zap.Int("layout_cache_hits", c.stats.LayoutCacheHits),
			zap.Int("measure_calls", c.stats.MeasureCalls),
			zap.Int("measure_cache_hits", c.stats.MeasureCacheHits),
			zap.Int("freeze_iterations", c.stats.FreezeIterations),
		)
	}
	return c.stats
}

func normalizeAvailable(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return undefined
	}
	return v
}

// rootDimension picks the constraint the root is laid out with on one axis.
func rootDimension(style *Style, a axis, available, margin float64) (float64, MeasureMode) {
	if size := style.resolvedDimension(a, available); isDefined(size) {
		return size + margin, MeasureExactly
	}
	if maxSize := style.maxDimension(a).resolve(available); isDefined(maxSize) && maxSize >= 0 {
		return minDefined(maxSize+margin, available), MeasureAtMost
	}
	if isDefined(available) {
		return available, MeasureExactly
	}
	return undefined, MeasureUndefined
}

// layoutNode computes (or reuses) the size of n for the given constraints.
// With performLayout set, the node's children are positioned as well and
// the node becomes clean.
//
// availableWidth and availableHeight include the node's margins.
func (c *calc) layoutNode(n *Node, availableWidth, availableHeight float64, widthMode, heightMode MeasureMode, ownerWidth, ownerHeight float64, performLayout bool) {
	st := &n.state
	in := constraints{
		availableWidth:  availableWidth,
		availableHeight: availableHeight,
		widthMode:       widthMode,
		heightMode:      heightMode,
		ownerWidth:      ownerWidth,
		ownerHeight:     ownerHeight,
	}

	// A dirty node drops everything cached before this pass. Results
	// produced earlier in the same pass stay usable.
	needToVisit := n.dirty && st.generation != c.generation
	if needToVisit {
		st.invalidate()
	}

	if entry, ok := st.cached(in, performLayout); ok && !needToVisit {
		st.measured = [2]float64{entry.width, entry.height}
		c.stats.LayoutCacheHits++
	} else {
		c.stats.NodesVisited++
		c.layoutImpl(n, in, performLayout)
		st.remember(cacheEntry{in: in, width: st.measured[axisRow], height: st.measured[axisColumn]}, performLayout)
	}

	if performLayout {
		st.dims = st.measured
		n.dirty = false
	}
	st.generation = c.generation
}

// layoutImpl dispatches on the kind of node being sized.
func (c *calc) layoutImpl(n *Node, in constraints, performLayout bool) {
	style := &n.style
	st := &n.state

	margin := style.margins(in.ownerWidth)
	border := style.border(in.ownerWidth)
	padding := style.padding(in.ownerWidth)
	if performLayout {
		st.margin, st.border, st.padding = margin, border, padding
		st.hadOverflow = false
	}
	pb := padding.add(border)

	switch {
	case n.measure != nil && len(n.children) == 0:
		c.measureLeaf(n, in, margin, pb)
	case len(n.children) == 0:
		sizeEmpty(n, in, margin)
	case !performLayout && sizeFixed(n, in, margin):
		// Both dimensions are already known; children are not needed.
	default:
		fc := newFlexContainer(n, in, margin, pb)
		c.layoutFlex(fc, performLayout)
	}

	st.measured[axisRow] = orZero(st.measured[axisRow])
	st.measured[axisColumn] = orZero(st.measured[axisColumn])
}

// measureLeaf sizes a node through its MeasureFunc.
func (c *calc) measureLeaf(n *Node, in constraints, margin, pb sides) {
	style := &n.style
	st := &n.state
	avail := [2]float64{in.availableWidth, in.availableHeight}
	modes := [2]MeasureMode{in.widthMode, in.heightMode}
	owner := [2]float64{in.ownerWidth, in.ownerHeight}

	if modes[axisRow] == MeasureExactly && modes[axisColumn] == MeasureExactly {
		for _, a := range [2]axis{axisRow, axisColumn} {
			st.measured[a] = style.boundAxis(a, avail[a]-margin.sum(a), owner[a], in.ownerWidth)
		}
		return
	}

	var inner [2]float64
	for _, a := range [2]axis{axisRow, axisColumn} {
		inner[a] = avail[a]
		if isDefined(inner[a]) {
			inner[a] = math.Max(0, inner[a]-margin.sum(a)-pb.sum(a))
		}
	}

	key := measureKey{
		width:      measureArg(inner[axisRow], modes[axisRow]),
		widthMode:  modes[axisRow],
		height:     measureArg(inner[axisColumn], modes[axisColumn]),
		heightMode: modes[axisColumn],
	}
	size := c.measure(n, key)
	content := [2]float64{size.Width, size.Height}

	for _, a := range [2]axis{axisRow, axisColumn} {
		v := content[a] + pb.sum(a)
		if modes[a] == MeasureExactly {
			v = avail[a] - margin.sum(a)
		}
		st.measured[a] = style.boundAxis(a, v, owner[a], in.ownerWidth)
	}
}

// measure invokes the node's MeasureFunc unless a cached result satisfies key.
func (c *calc) measure(n *Node, key measureKey) Size {
	if n.measureCache == nil {
		n.measureCache = newMeasureCache()
	}
	if size, ok := n.measureCache.lookup(key); ok {
		c.stats.MeasureCacheHits++
		return size
	}

	size := sanitizeMeasured(n.measure(n, key.width, key.widthMode, key.height, key.heightMode))
	n.measureCache.store(key, size)
	c.stats.MeasureCalls++

	if c.debug {
		c.log.Debug("measured leaf",
			zap.Float64("width", finiteOr(key.width, -1)),
			zap.Stringer("width_mode", key.widthMode),
			zap.Float64("height", finiteOr(key.height, -1)),
			zap.Stringer("height_mode", key.heightMode),
			zap.Float64("result_width", size.Width),
			zap.Float64("result_height", size.Height),
		)
	}
	return size
}

// sizeEmpty sizes a container without children or measure capability:
// exact constraints are honored, otherwise it collapses to its padding
// and border.
func sizeEmpty(n *Node, in constraints, margin sides) {
	style := &n.style
	avail := [2]float64{in.availableWidth, in.availableHeight}
	modes := [2]MeasureMode{in.widthMode, in.heightMode}
	owner := [2]float64{in.ownerWidth, in.ownerHeight}
	pb := style.paddingAndBorder(in.ownerWidth)

	for _, a := range [2]axis{axisRow, axisColumn} {
		v := pb.sum(a)
		if modes[a] == MeasureExactly {
			v = avail[a] - margin.sum(a)
		}
		n.state.measured[a] = style.boundAxis(a, v, owner[a], in.ownerWidth)
	}
}

// sizeFixed handles measure-only passes whose constraints already fix the
// size. It reports false when the children must be consulted.
func sizeFixed(n *Node, in constraints, margin sides) bool {
	avail := [2]float64{in.availableWidth, in.availableHeight}
	modes := [2]MeasureMode{in.widthMode, in.heightMode}
	owner := [2]float64{in.ownerWidth, in.ownerHeight}

	for _, a := range [2]axis{axisRow, axisColumn} {
		fixed := modes[a] == MeasureExactly ||
			(modes[a] == MeasureAtMost && isDefined(avail[a]) && avail[a]-margin.sum(a) <= 0)
		if !fixed {
			return false
		}
	}

	for _, a := range [2]axis{axisRow, axisColumn} {
		v := avail[a] - margin.sum(a)
		if !isDefined(v) || (modes[a] == MeasureAtMost && v < 0) {
			v = 0
		}
		n.state.measured[a] = n.style.boundAxis(a, v, owner[a], in.ownerWidth)
	}
	return true
}

// zeroOut collapses an atomic subtree to empty boxes at the origin.
func zeroOut(n *Node) {
	st := &n.state
	st.position = [2]float64{}
	st.dims = [2]float64{}
	st.measured = [2]float64{}
	st.margin, st.border, st.padding = sides{}, sides{}, sides{}
	st.hadOverflow = false
	st.invalidate()
	n.dirty = false
	for _, child := range n.children {
		zeroOut(child)
	}
}
