package layout

import "math"

// justifyLine positions the line's items along the main axis and returns
// the main extent of the line including the container's padding and
// border. Positions are measured from the leading edge of the flow, which
// is the physical trailing edge for reversed directions.
func (fc *flexContainer) justifyLine(line *flexLine, items []flexItem, availableMain float64) float64 {
	main := fc.main
	lead, trail := main.leading(), main.trailing()
	if fc.reverse {
		lead, trail = trail, lead
	}

	remaining := line.remaining
	if !isDefined(availableMain) {
		remaining = 0
	}
	if fc.modes[main] == MeasureAtMost && remaining > 0 {
		// A content-sized container has no slack to hand out beyond what
		// its min size demands.
		if minInner := fc.minInner[main]; isDefined(minInner) {
			remaining = math.Max(0, minInner-(availableMain-remaining))
		} else {
			remaining = 0
		}
	}

	autoMargins := 0
	for i := range items {
		if items[i].style.marginIsAuto(lead) {
			autoMargins++
		}
		if items[i].style.marginIsAuto(trail) {
			autoMargins++
		}
	}

	leading, between := 0.0, fc.gap
	count := float64(len(items))
	if autoMargins == 0 {
		switch fc.style.JustifyContent {
		case JustifyEnd:
			leading = remaining
		case JustifyCenter:
			leading = remaining / 2
		case JustifySpaceBetween:
			if remaining > 0 && len(items) > 1 {
				between += remaining / (count - 1)
			}
		case JustifySpaceAround:
			if remaining > 0 {
				leading = remaining / (2 * count)
				between += remaining / count
			} else {
				leading = remaining / 2
			}
		case JustifySpaceEvenly:
			if remaining > 0 {
				leading = remaining / (count + 1)
				between += leading
			} else {
				leading = remaining / 2
			}
		}
	}

	// Auto margins soak up positive free space before justification and
	// collapse to zero otherwise.
	autoShare := 0.0
	if autoMargins > 0 && remaining > 0 {
		autoShare = remaining / float64(autoMargins)
	}

	pos := fc.pb[lead] + leading
	for i := range items {
		it := &items[i]
		if i > 0 {
			pos += between
		}
		if it.style.marginIsAuto(lead) {
			pos += autoShare
		}
		pos += it.margin[lead]
		it.mainPos = pos
		pos += it.node.state.measured[main] + it.margin[trail]
		if it.style.marginIsAuto(trail) {
			pos += autoShare
		}
	}
	return pos + fc.pb[trail]
}

// alignLines sizes and offsets the lines within the container's inner
// cross size according to AlignContent.
func (fc *flexContainer) alignLines(lines []flexLine, innerCross float64) {
	if len(lines) == 0 {
		return
	}
	if !fc.wrap {
		lines[0].offset = 0
		lines[0].cross = innerCross
		return
	}

	count := float64(len(lines))
	total := fc.gap * (count - 1)
	for i := range lines {
		total += lines[i].cross
	}
	remaining := innerCross - total

	leading, extra, between := 0.0, 0.0, fc.gap
	switch fc.style.AlignContent {
	case AlignEnd:
		leading = remaining
	case AlignCenter:
		leading = remaining / 2
	case AlignStretch:
		if remaining > 0 {
			extra = remaining / count
		}
	case AlignSpaceBetween:
		if remaining > 0 && len(lines) > 1 {
			between += remaining / (count - 1)
		}
	case AlignSpaceAround:
		if remaining > 0 {
			leading = remaining / (2 * count)
			between += remaining / count
		} else {
			leading = remaining / 2
		}
	case AlignSpaceEvenly:
		if remaining > 0 {
			leading = remaining / (count + 1)
			between += leading
		} else {
			leading = remaining / 2
		}
	}

	pos := leading
	for i := range lines {
		lines[i].cross += extra
		lines[i].offset = pos
		pos += lines[i].cross + between
	}

	if fc.style.Wrap == WrapReverse {
		for i := range lines {
			lines[i].offset = innerCross - lines[i].offset - lines[i].cross
		}
	}
}

// alignItemCross places an item on the cross axis within its line,
// relaying it out at the line's cross size when it stretches.
func (c *calc) alignItemCross(fc *flexContainer, it *flexItem, line *flexLine) {
	child := it.node
	cs := it.style
	main, cross := fc.main, fc.cross
	start := fc.pb.leading(cross) + line.offset

	if fc.needsStretch(it) {
		var size [2]float64
		modes := [2]MeasureMode{MeasureExactly, MeasureExactly}
		size[main] = child.state.measured[main] + it.margin.sum(main)
		size[cross] = line.cross
		constrainMaxSizeForMode(cs, cross, fc.inner[cross], it.margin, &modes[cross], &size[cross])
		c.layoutNode(child, size[axisRow], size[axisColumn], modes[axisRow], modes[axisColumn],
			fc.inner[axisRow], fc.inner[axisColumn], true)
		child.state.position[cross] = start + it.margin.leading(cross)
		return
	}

	remaining := line.cross - child.state.measured[cross] - it.margin.sum(cross)
	leadAuto := cs.marginIsAuto(cross.leading())
	trailAuto := cs.marginIsAuto(cross.trailing())

	offset := 0.0
	switch {
	case leadAuto && trailAuto:
		offset = math.Max(0, remaining/2)
	case trailAuto:
		offset = 0
	case leadAuto:
		offset = math.Max(0, remaining)
	default:
		switch fc.style.alignFor(cs) {
		case AlignEnd:
			offset = remaining
		case AlignCenter:
			offset = remaining / 2
		}
	}
	child.state.position[cross] = start + offset + it.margin.leading(cross)
}
