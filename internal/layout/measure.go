package layout

import (
	"math"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// MeasureMode describes how a measured dimension is constrained.
type MeasureMode uint8

const (
	// MeasureUndefined leaves the dimension unconstrained. The size passed
	// alongside it is +Inf.
	MeasureUndefined MeasureMode = iota
	// MeasureExactly requires the result to be exactly the given size.
	MeasureExactly
	// MeasureAtMost treats the given size as an upper bound.
	MeasureAtMost
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureExactly:
		return "exactly"
	case MeasureAtMost:
		return "at-most"
	default:
		return "undefined"
	}
}

// Size is a width/height pair in cells.
type Size struct {
	Width, Height float64
}

// MeasureFunc reports the content size of a leaf node under the given
// constraints. It must be pure with respect to its arguments: results are
// cached per node and reused until the node is marked dirty with MarkDirty.
type MeasureFunc func(n *Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size

// measureCacheSize bounds the number of remembered constraint tuples per node.
const measureCacheSize = 16

type measureKey struct {
	width      float64
	widthMode  MeasureMode
	height     float64
	heightMode MeasureMode
}

// measureCache memoizes MeasureFunc results for one node.
type measureCache struct {
	entries *simplelru.LRU[measureKey, Size]
}

func newMeasureCache() *measureCache {
	entries, err := simplelru.NewLRU[measureKey, Size](measureCacheSize, nil)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &measureCache{entries: entries}
}

// lookup returns a cached result whose constraints satisfy key.
func (c *measureCache) lookup(key measureKey) (Size, bool) {
	if size, ok := c.entries.Get(key); ok {
		return size, true
	}
	for _, cached := range c.entries.Keys() {
		size, ok := c.entries.Peek(cached)
		if !ok {
			continue
		}
		if axisSatisfied(key.widthMode, key.width, cached.widthMode, cached.width, size.Width) &&
			axisSatisfied(key.heightMode, key.height, cached.heightMode, cached.height, size.Height) {
			c.entries.Get(cached)
			return size, true
		}
	}
	return Size{}, false
}

func (c *measureCache) store(key measureKey, size Size) {
	c.entries.Add(key, size)
}

func (c *measureCache) purge() {
	c.entries.Purge()
}

func (c *measureCache) len() int {
	return c.entries.Len()
}

// axisSatisfied reports whether a result measured under (cachedMode,
// cachedSize) is valid for a request under (mode, size).
func axisSatisfied(mode MeasureMode, size float64, cachedMode MeasureMode, cachedSize, result float64) bool {
	if mode == cachedMode && sameBound(size, cachedSize) {
		return true
	}
	switch mode {
	case MeasureExactly:
		// The earlier result already had exactly the requested size.
		return sameBound(size, result)
	case MeasureAtMost:
		switch cachedMode {
		case MeasureUndefined:
			return result <= size+epsilon
		case MeasureAtMost:
			return cachedSize > size && result <= size+epsilon
		case MeasureExactly:
			return sameBound(size, cachedSize)
		}
	}
	return false
}

func sameBound(a, b float64) bool {
	return a == b || math.Abs(a-b) < epsilon
}

// sanitizeMeasured keeps a misbehaving MeasureFunc from leaking NaN,
// infinities or negative sizes into the layout.
func sanitizeMeasured(s Size) Size {
	return Size{Width: orZero(s.Width), Height: orZero(s.Height)}
}

// measureArg converts an engine dimension to the value handed to a
// MeasureFunc: unconstrained dimensions become +Inf.
func measureArg(size float64, mode MeasureMode) float64 {
	if mode == MeasureUndefined || !isDefined(size) {
		return math.Inf(1)
	}
	return math.Max(0, size)
}
