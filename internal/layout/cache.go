package layout

// maxSizingEntries bounds the per-node cache of measure-only passes.
const maxSizingEntries = 8

// constraints is the input of one layoutNode call.
type constraints struct {
	availableWidth  float64
	availableHeight float64
	widthMode       MeasureMode
	heightMode      MeasureMode
	ownerWidth      float64
	ownerHeight     float64
}

func (c constraints) matches(o constraints) bool {
	return c.widthMode == o.widthMode && c.heightMode == o.heightMode &&
		sameFloat(c.availableWidth, o.availableWidth) &&
		sameFloat(c.availableHeight, o.availableHeight) &&
		sameFloat(c.ownerWidth, o.ownerWidth) &&
		sameFloat(c.ownerHeight, o.ownerHeight)
}

// cacheEntry is the measured border-box size produced for constraints.
type cacheEntry struct {
	in            constraints
	width, height float64
}

// nodeState is engine-private scratch space stored on each node.
type nodeState struct {
	// Geometry of the last layout, in floats, relative to the parent's
	// border box.
	position [2]float64
	dims     [2]float64
	measured [2]float64

	margin, border, padding sides
	hadOverflow             bool

	flexBasis           float64
	flexBasisGeneration uint64

	// generation is the last Calculate pass that visited the node.
	generation uint64

	layoutEntry    cacheEntry
	hasLayoutEntry bool
	sizing         [maxSizingEntries]cacheEntry
	sizingCount    int
	sizingNext     int
}

func (s *nodeState) reset() {
	*s = nodeState{}
	s.flexBasis = undefined
	s.measured = [2]float64{undefined, undefined}
}

// invalidate drops cached results computed before the node became dirty.
func (s *nodeState) invalidate() {
	s.hasLayoutEntry = false
	s.sizingCount = 0
	s.sizingNext = 0
}

// cached returns a previously computed size for in.
func (s *nodeState) cached(in constraints, performLayout bool) (cacheEntry, bool) {
	if s.hasLayoutEntry && s.layoutEntry.in.matches(in) {
		return s.layoutEntry, true
	}
	if performLayout {
		return cacheEntry{}, false
	}
	for i := 0; i < s.sizingCount; i++ {
		if s.sizing[i].in.matches(in) {
			return s.sizing[i], true
		}
	}
	return cacheEntry{}, false
}

func (s *nodeState) remember(e cacheEntry, performLayout bool) {
	if performLayout {
		s.layoutEntry = e
		s.hasLayoutEntry = true
		return
	}
	s.sizing[s.sizingNext] = e
	s.sizingNext = (s.sizingNext + 1) % maxSizingEntries
	s.sizingCount = min(s.sizingCount+1, maxSizingEntries)
}
