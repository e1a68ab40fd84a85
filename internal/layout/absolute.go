package layout

import "math"

// layoutAbsolute sizes and places an out-of-flow child against the
// container's content box.
//
// Offsets on both sides of an axis stretch the child between them unless
// it has an explicit size. A single offset anchors it to that side. With
// no offset the child is placed by the container's justification on the
// main axis and by its alignment on the cross axis.
func (c *calc) layoutAbsolute(fc *flexContainer, child *Node) {
	cs := &child.style
	st := &fc.node.state

	var block [2]float64
	for _, a := range [2]axis{axisRow, axisColumn} {
		block[a] = math.Max(0, st.measured[a]-fc.pb.sum(a))
	}
	margin := cs.margins(block[axisRow])

	size := [2]float64{undefined, undefined}
	for _, a := range [2]axis{axisRow, axisColumn} {
		if d := cs.resolvedDimension(a, block[a]); isDefined(d) {
			size[a] = d
		} else {
			lead, hasLead := cs.offset(a.leading(), block[a])
			trail, hasTrail := cs.offset(a.trailing(), block[a])
			if hasLead && hasTrail {
				size[a] = math.Max(0, block[a]-lead-trail-margin.sum(a))
			}
		}
		if isDefined(size[a]) {
			size[a] = cs.boundAxis(a, size[a], block[a], block[axisRow])
		}
	}

	if ratio := cs.aspectRatio(); isDefined(ratio) {
		switch {
		case isDefined(size[axisRow]) && !isDefined(size[axisColumn]):
			size[axisColumn] = cs.boundAxis(axisColumn, size[axisRow]/ratio, block[axisColumn], block[axisRow])
		case isDefined(size[axisColumn]) && !isDefined(size[axisRow]):
			size[axisRow] = cs.boundAxis(axisRow, size[axisColumn]*ratio, block[axisRow], block[axisRow])
		}
	}

	if !isDefined(size[axisRow]) || !isDefined(size[axisColumn]) {
		var avail [2]float64
		var modes [2]MeasureMode
		for _, a := range [2]axis{axisRow, axisColumn} {
			switch {
			case isDefined(size[a]):
				avail[a], modes[a] = size[a]+margin.sum(a), MeasureExactly
			case a == axisRow && block[a] > 0:
				// Wrapping content stays within the containing block.
				avail[a], modes[a] = block[a], MeasureAtMost
			default:
				avail[a], modes[a] = undefined, MeasureUndefined
			}
		}
		c.layoutNode(child, avail[axisRow], avail[axisColumn], modes[axisRow], modes[axisColumn],
			block[axisRow], block[axisColumn], false)
		for _, a := range [2]axis{axisRow, axisColumn} {
			if !isDefined(size[a]) {
				size[a] = child.state.measured[a]
			}
		}
	}

	c.layoutNode(child, size[axisRow]+margin.sum(axisRow), size[axisColumn]+margin.sum(axisColumn),
		MeasureExactly, MeasureExactly, block[axisRow], block[axisColumn], true)

	for _, a := range [2]axis{axisRow, axisColumn} {
		childSize := child.state.measured[a]
		base := fc.pb.leading(a)

		if lead, ok := cs.offset(a.leading(), block[a]); ok {
			child.state.position[a] = base + lead + margin.leading(a)
			continue
		}
		if trail, ok := cs.offset(a.trailing(), block[a]); ok {
			child.state.position[a] = base + block[a] - trail - margin.trailing(a) - childSize
			continue
		}

		free := block[a] - childSize - margin.sum(a)
		offset := 0.0
		if a == fc.main {
			switch fc.style.JustifyContent {
			case JustifyCenter, JustifySpaceAround, JustifySpaceEvenly:
				offset = free / 2
			case JustifyEnd:
				offset = free
			}
			if fc.reverse {
				offset = free - offset
			}
		} else {
			switch fc.style.alignFor(cs) {
			case AlignCenter:
				offset = free / 2
			case AlignEnd:
				offset = free
			}
			if fc.style.Wrap == WrapReverse {
				offset = free - offset
			}
		}
		child.state.position[a] = base + offset + margin.leading(a)
	}
}
