package layout

// flexItem is the per-pass working state of one in-flow child.
type flexItem struct {
	node  *Node
	style *Style

	margin sides

	// basis is the flex base size; hypothetical is basis clamped by
	// min/max. Neither includes margins.
	basis        float64
	hypothetical float64
	// minMain is the child's padding+border on the main axis, the
	// smallest main size it can take.
	minMain float64

	target    float64
	violation float64
	frozen    bool

	mainPos float64
}

func newFlexItem(fc *flexContainer, child *Node) flexItem {
	cs := &child.style
	main := fc.main
	minMain := cs.paddingAndBorder(fc.inner[axisRow]).sum(main)
	basis := child.state.flexBasis
	return flexItem{
		node:         child,
		style:        cs,
		margin:       cs.margins(fc.inner[axisRow]),
		basis:        basis,
		hypothetical: maxDefined(cs.boundAxisWithinMinMax(main, basis, fc.inner[main]), minMain),
		minMain:      minMain,
	}
}

// flexLine is a run of items laid out together along the main axis.
// Items are referenced by their index range [start, end).
type flexLine struct {
	start, end int

	// consumed is the outer hypothetical size of the items plus gaps.
	consumed  float64
	totalGrow float64

	remaining float64
	cross     float64
	offset    float64
}

// buildLines breaks items into lines. Without wrapping everything lands on
// a single line. With wrapping, an item that would push the line past
// availableMain starts a new one, unless the current line is still empty.
func buildLines(items []flexItem, main axis, availableMain, gap float64, wrap bool) []flexLine {
	var lines []flexLine
	start := 0
	for start < len(items) {
		line := flexLine{start: start}
		i := start
		for ; i < len(items); i++ {
			it := &items[i]
			outer := it.hypothetical + it.margin.sum(main)
			if i > start {
				outer += gap
			}
			if wrap && i > start && isDefined(availableMain) && line.consumed+outer > availableMain+epsilon {
				break
			}
			line.consumed += outer
			if it.style.FlexGrow > 0 {
				line.totalGrow += it.style.FlexGrow
			}
		}
		line.end = i
		lines = append(lines, line)
		start = i
	}
	return lines
}
