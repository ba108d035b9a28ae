package vlist

// StartIndexForOffset implements Layout. When the measured range already
// reaches the target offset it binary searches the cache; otherwise it
// probes forward with doubling strides, measuring as it goes, then binary
// searches the final bracket. Either way the number of measurements is
// logarithmic in the distance covered.
func (l *VariableLayout) StartIndexForOffset(offset int) int {
	if l.count == 0 {
		return 0
	}
	lastOffset := 0
	if l.lastMeasured >= 0 {
		lastOffset = l.items[l.lastMeasured].Offset
	}
	if lastOffset >= offset {
		return l.binarySearch(0, max(0, l.lastMeasured), offset)
	}
	return l.exponentialSearch(max(0, l.lastMeasured), offset)
}

// binarySearch finds the largest index in [low, high] whose offset does
// not exceed offset. Probing through Metadata keeps the invariant that
// every inspected entry is measured.
func (l *VariableLayout) binarySearch(low, high, offset int) int {
	for low <= high {
		mid := low + (high-low)/2
		current := l.Metadata(mid).Offset
		switch {
		case current == offset:
			return mid
		case current < offset:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	if low > 0 {
		return low - 1
	}
	return 0
}

// exponentialSearch extends the measured range toward offset with
// doubling strides, then hands the bracket to binarySearch.
func (l *VariableLayout) exponentialSearch(index, offset int) int {
	interval := 1
	for index < l.count && l.Metadata(index).Offset < offset {
		index += interval
		interval *= 2
	}
	return l.binarySearch(index/2, min(index, l.count-1), offset)
}

// StopIndexForStart implements Layout. The walk is linear in the number
// of items that fit the viewport, not in the collection size.
func (l *VariableLayout) StopIndexForStart(start, scrollOffset, viewport int) int {
	if l.count == 0 {
		return 0
	}
	maxOffset := scrollOffset + viewport
	offset := l.Metadata(start).End()
	stop := start
	for stop < l.count-1 && offset < maxOffset {
		stop++
		offset += l.Metadata(stop).Size
	}
	return stop
}
