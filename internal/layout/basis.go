package layout

import "math"

// computeFlexBasis stores the child's flex base size in its state.
//
// The basis comes from, in order: an explicit FlexBasis, an explicit main
// size, or the child's content measured against the container. It never
// drops below the child's padding and border.
func (c *calc) computeFlexBasis(fc *flexContainer, child *Node) {
	cs := &child.style
	st := &child.state
	main := fc.main
	inner := fc.inner
	mainPB := cs.paddingAndBorder(inner[axisRow]).sum(main)

	if basis := cs.FlexBasis.resolve(inner[main]); isDefined(basis) {
		st.flexBasis = math.Max(basis, mainPB)
		st.flexBasisGeneration = c.generation
		return
	}
	if size := cs.resolvedDimension(main, inner[main]); isDefined(size) {
		st.flexBasis = math.Max(size, mainPB)
		st.flexBasisGeneration = c.generation
		return
	}

	margin := cs.margins(inner[axisRow])
	size := [2]float64{undefined, undefined}
	var modes [2]MeasureMode
	for _, a := range [2]axis{axisRow, axisColumn} {
		if d := cs.resolvedDimension(a, inner[a]); isDefined(d) {
			size[a], modes[a] = d+margin.sum(a), MeasureExactly
		}
	}

	// Constrain the measurement to the container, except along an axis the
	// container scrolls.
	scroll := fc.style.Overflow == OverflowScroll
	if (!scroll || !main.isRow()) && !isDefined(size[axisRow]) && isDefined(inner[axisRow]) {
		size[axisRow], modes[axisRow] = inner[axisRow], MeasureAtMost
	}
	if (!scroll || main.isRow()) && !isDefined(size[axisColumn]) && isDefined(inner[axisColumn]) {
		size[axisColumn], modes[axisColumn] = inner[axisColumn], MeasureAtMost
	}

	ratio := cs.aspectRatio()
	if isDefined(ratio) {
		switch {
		case !main.isRow() && modes[axisRow] == MeasureExactly:
			size[axisColumn] = (size[axisRow]-margin.sum(axisRow))/ratio + margin.sum(axisColumn)
			modes[axisColumn] = MeasureExactly
		case main.isRow() && modes[axisColumn] == MeasureExactly:
			size[axisRow] = (size[axisColumn]-margin.sum(axisColumn))*ratio + margin.sum(axisRow)
			modes[axisRow] = MeasureExactly
		}
	}

	// A stretched child already knows its cross size when the container's
	// cross size is exact, which matters for content that wraps.
	cross := fc.cross
	it := &flexItem{style: cs}
	if isDefined(inner[cross]) && fc.modes[cross] == MeasureExactly &&
		modes[cross] != MeasureExactly && fc.stretchesCross(it) {
		size[cross], modes[cross] = inner[cross], MeasureExactly
		if isDefined(ratio) {
			if cross.isRow() {
				size[axisColumn] = (size[axisRow]-margin.sum(axisRow))/ratio + margin.sum(axisColumn)
			} else {
				size[axisRow] = (size[axisColumn]-margin.sum(axisColumn))*ratio + margin.sum(axisRow)
			}
			modes[main] = MeasureExactly
		}
	}

	constrainMaxSizeForMode(cs, axisRow, inner[axisRow], margin, &modes[axisRow], &size[axisRow])
	constrainMaxSizeForMode(cs, axisColumn, inner[axisColumn], margin, &modes[axisColumn], &size[axisColumn])

	c.layoutNode(child, size[axisRow], size[axisColumn], modes[axisRow], modes[axisColumn],
		inner[axisRow], inner[axisColumn], false)

	st.flexBasis = math.Max(st.measured[main], mainPB)
	st.flexBasisGeneration = c.generation
}

// constrainMaxSizeForMode tightens a constraint by the style's max size on
// the axis. An unconstrained axis becomes AtMost the maximum.
func constrainMaxSizeForMode(s *Style, a axis, ownerSize float64, margin sides, mode *MeasureMode, size *float64) {
	maxSize := s.maxDimension(a).resolve(ownerSize)
	if !isDefined(maxSize) || maxSize < 0 {
		return
	}
	maxSize += margin.sum(a)

	switch *mode {
	case MeasureExactly, MeasureAtMost:
		if !isDefined(*size) || *size > maxSize {
			*size = maxSize
		}
	default:
		*mode = MeasureAtMost
		*size = maxSize
	}
}
