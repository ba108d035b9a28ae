package vlist

import "fmt"

// VariableLayout positions items of non-uniform, initially-unknown size.
// Sizes are pulled from a SizeFunc on demand and cached; the cache only
// ever extends forward from the last measured index, so repeated lookups
// never redo work.
type VariableLayout struct {
	count  int
	sizeOf SizeFunc

	estimatedItemSize int

	// items is valid through lastMeasured. Entries beyond the watermark
	// may hold stale values from before an invalidation; they are
	// overwritten by the forward fill before being read again.
	items        []ItemMetadata
	lastMeasured int
}

// NewVariableLayout creates a layout for count items sized by sizeOf.
// Panics if sizeOf is nil: the size function is part of the construction
// contract, not a per-call input.
func NewVariableLayout(count int, sizeOf SizeFunc) *VariableLayout {
	if sizeOf == nil {
		panic(fmt.Sprintf("vlist: NewVariableLayout called with nil SizeFunc (count=%d)", count))
	}
	return &VariableLayout{
		count:             count,
		sizeOf:            sizeOf,
		estimatedItemSize: DefaultEstimatedItemSize,
		items:             make([]ItemMetadata, count),
		lastMeasured:      -1,
	}
}

// EstimatedItemSize sets the assumed size of unmeasured items.
func (l *VariableLayout) EstimatedItemSize(size int) *VariableLayout {
	l.estimatedItemSize = size
	return l
}

// Count returns the total number of items.
func (l *VariableLayout) Count() int {
	return l.count
}

// LastMeasuredIndex returns the highest index with cached metadata,
// or -1 if nothing has been measured.
func (l *VariableLayout) LastMeasuredIndex() int {
	return l.lastMeasured
}

// Metadata implements Layout. The first request for an unmeasured index
// measures every item from the watermark through index, in order, so
// offsets stay an exact cumulative sum.
func (l *VariableLayout) Metadata(index int) ItemMetadata {
	if index > l.lastMeasured {
		offset := 0
		if l.lastMeasured >= 0 {
			offset = l.items[l.lastMeasured].End()
		}
		for i := l.lastMeasured + 1; i <= index; i++ {
			size := l.sizeOf(i)
			l.items[i] = ItemMetadata{Offset: offset, Size: size}
			offset += size
		}
		l.lastMeasured = index
	}
	return l.items[index]
}

// EstimatedTotalSize implements Layout. Only the last measured entry is
// consulted; unmeasured items contribute the configured estimate.
func (l *VariableLayout) EstimatedTotalSize() int {
	measured := 0
	if l.lastMeasured >= 0 {
		measured = l.items[l.lastMeasured].End()
	}
	return measured + (l.count-l.lastMeasured-1)*l.estimatedItemSize
}

// InvalidateAfter implements Layout. It only lowers the watermark; stale
// entries stay in place and are recomputed by the next forward fill.
func (l *VariableLayout) InvalidateAfter(index int) {
	l.lastMeasured = min(l.lastMeasured, index-1)
}

// SetSizeFunc replaces the size function. Already-measured items keep
// their cached sizes: a new function alone does not rewrite history.
// Call InvalidateAfter to force remeasurement.
func (l *VariableLayout) SetSizeFunc(sizeOf SizeFunc) {
	if sizeOf == nil {
		panic("vlist: SetSizeFunc called with nil SizeFunc")
	}
	l.sizeOf = sizeOf
}

// SetCount changes the number of items. The measured prefix survives a
// grow; a shrink drops measurements past the new end.
func (l *VariableLayout) SetCount(count int) {
	if count == l.count {
		return
	}
	if count > len(l.items) {
		items := make([]ItemMetadata, count)
		copy(items, l.items)
		l.items = items
	} else {
		l.items = l.items[:count]
	}
	l.count = count
	l.lastMeasured = min(l.lastMeasured, count-1)
}
