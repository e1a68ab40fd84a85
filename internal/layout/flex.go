package layout

import "math"

// flexContainer holds the resolved properties of a node while its
// children are laid out. Pairs are indexed by axis (width, height).
type flexContainer struct {
	node    *Node
	style   *Style
	main    axis
	cross   axis
	reverse bool
	wrap    bool
	gap     float64

	margin sides
	pb     sides

	avail [2]float64 // outer constraint, margins included
	modes [2]MeasureMode
	owner [2]float64

	// inner is the space available to children, clamped by the node's own
	// min/max. It may be undefined.
	inner    [2]float64
	minInner [2]float64
	maxInner [2]float64
}

func newFlexContainer(n *Node, in constraints, margin, pb sides) *flexContainer {
	s := &n.style
	main := mainAxis(s.Direction)
	fc := &flexContainer{
		node:    n,
		style:   s,
		main:    main,
		cross:   main.cross(),
		reverse: isReverse(s.Direction),
		wrap:    s.Wrap != NoWrap,
		gap:     float64(max(0, s.Gap)),
		margin:  margin,
		pb:      pb,
		avail:   [2]float64{in.availableWidth, in.availableHeight},
		modes:   [2]MeasureMode{in.widthMode, in.heightMode},
		owner:   [2]float64{in.ownerWidth, in.ownerHeight},
	}

	for _, a := range [2]axis{axisRow, axisColumn} {
		fc.minInner[a] = s.minDimension(a).resolve(fc.owner[a]) - pb.sum(a)
		fc.maxInner[a] = s.maxDimension(a).resolve(fc.owner[a]) - pb.sum(a)

		inner := fc.avail[a] - margin.sum(a) - pb.sum(a)
		if isDefined(inner) {
			inner = maxDefined(minDefined(inner, fc.maxInner[a]), fc.minInner[a])
			inner = math.Max(0, inner)
		}
		fc.inner[a] = inner
	}
	return fc
}

// layoutFlex runs the flex algorithm over n's children: flex basis, line
// breaking, flexible length resolution, main axis justification, then (when
// performing layout) cross axis alignment and absolute children.
func (c *calc) layoutFlex(fc *flexContainer, performLayout bool) {
	n := fc.node

	var flow, absolutes []*Node
	for _, child := range n.children {
		switch {
		case child.style.Atomic:
			zeroOut(child)
		case child.style.PositionType == Absolute:
			absolutes = append(absolutes, child)
		default:
			flow = append(flow, child)
		}
	}

	items := make([]flexItem, len(flow))
	for i, child := range flow {
		c.computeFlexBasis(fc, child)
		items[i] = newFlexItem(fc, child)
	}

	lines := buildLines(items, fc.main, fc.inner[fc.main], fc.gap, fc.wrap)
	multiLine := len(lines) > 1

	overflow := false
	maxLineMain := fc.pb.sum(fc.main)
	totalCross := 0.0
	for li := range lines {
		line := &lines[li]
		lineItems := items[line.start:line.end]

		availMain := fc.lineMainSpace(line)
		remaining, iterations := resolveFlexibleLengths(lineItems, fc.main, availMain, fc.gap, fc.inner[fc.main])
		line.remaining = remaining
		c.stats.FreezeIterations += iterations
		if remaining < -epsilon {
			overflow = true
		}

		for i := range lineItems {
			c.layoutItem(fc, &lineItems[i], multiLine, performLayout)
		}

		maxLineMain = math.Max(maxLineMain, fc.justifyLine(line, lineItems, availMain))
		line.cross = fc.naturalLineCross(lineItems)
		totalCross += line.cross
	}
	if len(lines) > 1 {
		totalCross += fc.gap * float64(len(lines)-1)
	}

	fc.setMeasured(maxLineMain, totalCross)
	if !performLayout {
		return
	}

	st := &n.state
	innerCross := math.Max(0, st.measured[fc.cross]-fc.pb.sum(fc.cross))
	if totalCross > innerCross+epsilon {
		overflow = true
	}
	st.hadOverflow = overflow

	fc.alignLines(lines, innerCross)
	for li := range lines {
		line := &lines[li]
		for i := line.start; i < line.end; i++ {
			c.alignItemCross(fc, &items[i], line)
		}
	}

	innerMain := [2]float64{
		math.Max(0, st.measured[axisRow]-fc.pb.sum(axisRow)),
		math.Max(0, st.measured[axisColumn]-fc.pb.sum(axisColumn)),
	}
	for i := range items {
		it := &items[i]
		child := it.node
		pos := it.mainPos
		if fc.reverse {
			pos = st.measured[fc.main] - pos - child.state.measured[fc.main]
		}
		child.state.position[fc.main] = pos
		for _, a := range [2]axis{axisRow, axisColumn} {
			child.state.position[a] += it.style.relativeOffset(a, innerMain[a])
		}
	}

	for _, child := range absolutes {
		c.layoutAbsolute(fc, child)
	}
}

// lineMainSpace returns the main size the line's items are resolved
// against. A container that is not sized exactly on the main axis sizes
// to its content unless both it and its items can grow.
func (fc *flexContainer) lineMainSpace(line *flexLine) float64 {
	avail := fc.inner[fc.main]
	if fc.modes[fc.main] == MeasureExactly {
		return avail
	}
	minInner, maxInner := fc.minInner[fc.main], fc.maxInner[fc.main]
	switch {
	case isDefined(minInner) && line.consumed < minInner:
		return minInner
	case isDefined(maxInner) && line.consumed > maxInner:
		return maxInner
	case !isDefined(avail) || line.totalGrow == 0 || fc.style.FlexGrow == 0:
		return line.consumed
	}
	return avail
}

// resolveFlexibleLengths distributes the line's free space over its items,
// freezing items that hit a min/max bound until the distribution settles.
// It returns the space left over (negative on overflow) and the number of
// iterations it took.
func resolveFlexibleLengths(items []flexItem, main axis, availableMain, gap, mainOwner float64) (float64, int) {
	gaps := gap * float64(max(0, len(items)-1))

	used := gaps
	for i := range items {
		it := &items[i]
		it.target = it.hypothetical
		it.frozen = false
		used += it.hypothetical + it.margin.sum(main)
	}
	if !isDefined(availableMain) {
		return 0, 0
	}

	growing := used < availableMain
	for i := range items {
		it := &items[i]
		factor := it.style.FlexShrink
		if growing {
			factor = it.style.FlexGrow
		}
		if factor <= 0 ||
			(growing && it.basis > it.hypothetical) ||
			(!growing && it.basis < it.hypothetical) {
			it.frozen = true
		}
	}

	iterations := 0
	for iterations <= len(items) {
		free := availableMain - gaps
		factors, unfrozen := 0.0, 0
		for i := range items {
			it := &items[i]
			free -= it.margin.sum(main)
			if it.frozen {
				free -= it.target
				continue
			}
			free -= it.basis
			unfrozen++
			if growing {
				factors += it.style.FlexGrow
			} else {
				factors += it.style.FlexShrink * it.basis
			}
		}
		if unfrozen == 0 {
			break
		}
		iterations++

		// Grow factors summing below one only hand out that fraction of
		// the free space.
		denominator := factors
		if growing {
			denominator = math.Max(factors, 1)
		}

		totalViolation := 0.0
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			size := it.basis
			if denominator > 0 {
				if growing {
					size += free * it.style.FlexGrow / denominator
				} else {
					size += free * it.style.FlexShrink * it.basis / denominator
				}
			}
			clamped := it.style.boundAxisWithinMinMax(main, size, mainOwner)
			clamped = math.Max(math.Max(clamped, it.minMain), 0)
			it.violation = clamped - size
			it.target = clamped
			totalViolation += it.violation
		}

		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			switch {
			case math.Abs(totalViolation) < epsilon:
				it.frozen = true
			case totalViolation > 0 && it.violation > 0:
				it.frozen = true
			case totalViolation < 0 && it.violation < 0:
				it.frozen = true
			}
		}
	}

	remaining := availableMain - gaps
	for i := range items {
		remaining -= items[i].target + items[i].margin.sum(main)
	}
	return remaining, iterations
}

// layoutItem lays out one item at its resolved main size. Items that will
// be stretched on the cross axis are only measured here; alignItemCross
// lays them out for real.
func (c *calc) layoutItem(fc *flexContainer, it *flexItem, multiLine, performLayout bool) {
	cs := it.style
	main, cross := fc.main, fc.cross

	var size [2]float64
	var modes [2]MeasureMode
	size[main], modes[main] = it.target+it.margin.sum(main), MeasureExactly

	crossStyle := cs.resolvedDimension(cross, fc.inner[cross])
	// An explicit cross size wins; the ratio only fills in a missing one.
	switch ratio := cs.aspectRatio(); {
	case isDefined(crossStyle):
		size[cross], modes[cross] = crossStyle+it.margin.sum(cross), MeasureExactly
	case isDefined(ratio):
		crossSize := it.target * ratio
		if main.isRow() {
			crossSize = it.target / ratio
		}
		size[cross], modes[cross] = crossSize+it.margin.sum(cross), MeasureExactly
	case !multiLine && fc.stretchesCross(it) &&
		fc.modes[cross] == MeasureExactly && isDefined(fc.inner[cross]):
		size[cross], modes[cross] = fc.inner[cross], MeasureExactly
	default:
		size[cross], modes[cross] = fc.inner[cross], MeasureUndefined
		if isDefined(fc.inner[cross]) {
			modes[cross] = MeasureAtMost
		}
	}

	constrainMaxSizeForMode(cs, main, fc.inner[main], it.margin, &modes[main], &size[main])
	constrainMaxSizeForMode(cs, cross, fc.inner[cross], it.margin, &modes[cross], &size[cross])

	deferred := fc.needsStretch(it)
	c.layoutNode(it.node, size[axisRow], size[axisColumn], modes[axisRow], modes[axisColumn],
		fc.inner[axisRow], fc.inner[axisColumn], performLayout && !deferred)
}

// stretchesCross reports whether the item is aligned with stretch and has
// no auto margins on the cross axis.
func (fc *flexContainer) stretchesCross(it *flexItem) bool {
	cs := it.style
	if cs.marginIsAuto(fc.cross.leading()) || cs.marginIsAuto(fc.cross.trailing()) {
		return false
	}
	return fc.style.alignFor(cs) == AlignStretch
}

// needsStretch reports whether the item's cross size comes from its line.
func (fc *flexContainer) needsStretch(it *flexItem) bool {
	return fc.stretchesCross(it) &&
		!isDefined(it.style.resolvedDimension(fc.cross, fc.inner[fc.cross])) &&
		!isDefined(it.style.aspectRatio())
}

// naturalLineCross returns the largest outer cross size on the line.
func (fc *flexContainer) naturalLineCross(items []flexItem) float64 {
	size := 0.0
	for i := range items {
		it := &items[i]
		size = math.Max(size, it.node.state.measured[fc.cross]+it.margin.sum(fc.cross))
	}
	return size
}

// setMeasured sizes the container from its constraints, or from its
// content where the constraints leave room.
func (fc *flexContainer) setMeasured(maxLineMain, totalCross float64) {
	s := fc.style
	st := &fc.node.state
	content := [2]float64{}
	content[fc.main] = maxLineMain
	content[fc.cross] = totalCross + fc.pb.sum(fc.cross)

	for _, a := range [2]axis{axisRow, axisColumn} {
		var v float64
		switch mode := fc.modes[a]; {
		case mode == MeasureExactly:
			v = s.boundAxis(a, fc.avail[a]-fc.margin.sum(a), fc.owner[a], fc.owner[axisRow])
		case mode == MeasureUndefined || s.Overflow != OverflowScroll:
			v = s.boundAxis(a, content[a], fc.owner[a], fc.owner[axisRow])
		default:
			v = math.Min(fc.inner[a]+fc.pb.sum(a), s.boundAxisWithinMinMax(a, content[a], fc.owner[a]))
			v = math.Max(v, fc.pb.sum(a))
		}
		st.measured[a] = v
	}
}
