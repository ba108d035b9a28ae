package vlist

// OffsetForAlignment implements Layout. The total size is taken after
// measuring index, so the bound reflects real data up to that point
// rather than the pre-measurement estimate. Results below zero or past
// the scrollable end are possible when content is shorter than the
// viewport; clamping is the caller's job.
func (l *VariableLayout) OffsetForAlignment(index int, align Align, scrollOffset, viewport int) int {
	item := l.Metadata(index)
	total := l.EstimatedTotalSize()

	maxOffset := min(total-viewport, item.Offset)
	minOffset := max(0, item.End()-viewport)

	return alignedOffset(align, scrollOffset, minOffset, maxOffset)
}

// alignedOffset picks the scroll offset for an item whose fully-visible
// scroll positions span [minOffset, maxOffset].
func alignedOffset(align Align, scrollOffset, minOffset, maxOffset int) int {
	switch align {
	case AlignStart:
		return maxOffset
	case AlignEnd:
		return minOffset
	case AlignCenter:
		return midpoint(minOffset, maxOffset)
	default: // AlignAuto
		if scrollOffset >= minOffset && scrollOffset <= maxOffset {
			return scrollOffset
		}
		if abs(maxOffset-scrollOffset) < abs(scrollOffset-minOffset) {
			return maxOffset
		}
		return minOffset
	}
}

// midpoint returns minOffset + (maxOffset-minOffset)/2 rounding halves up.
func midpoint(minOffset, maxOffset int) int {
	d := maxOffset - minOffset
	if d > 0 {
		return minOffset + (d+1)/2
	}
	return minOffset + d/2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
