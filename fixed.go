package vlist

// FixedLayout positions items of one uniform size. Everything the
// variable engine searches for has a closed form here: offset is
// index times size, lookup is a division.
type FixedLayout struct {
	count    int
	itemSize int
}

// NewFixedLayout creates a layout for count items of itemSize each.
func NewFixedLayout(count, itemSize int) *FixedLayout {
	if itemSize <= 0 {
		panic("vlist: NewFixedLayout called with non-positive item size")
	}
	return &FixedLayout{count: count, itemSize: itemSize}
}

// Count returns the total number of items.
func (l *FixedLayout) Count() int {
	return l.count
}

// ItemSize returns the uniform item size.
func (l *FixedLayout) ItemSize() int {
	return l.itemSize
}

// Metadata implements Layout.
func (l *FixedLayout) Metadata(index int) ItemMetadata {
	return ItemMetadata{Offset: index * l.itemSize, Size: l.itemSize}
}

// EstimatedTotalSize implements Layout. With uniform sizes the estimate
// is exact.
func (l *FixedLayout) EstimatedTotalSize() int {
	return l.count * l.itemSize
}

// StartIndexForOffset implements Layout.
func (l *FixedLayout) StartIndexForOffset(offset int) int {
	if l.count == 0 {
		return 0
	}
	return max(0, min(l.count-1, offset/l.itemSize))
}

// StopIndexForStart implements Layout.
func (l *FixedLayout) StopIndexForStart(start, scrollOffset, viewport int) int {
	if l.count == 0 {
		return 0
	}
	startOffset := start * l.itemSize
	visible := ceilDiv(scrollOffset+viewport-startOffset, l.itemSize)
	return max(start, min(l.count-1, start+visible-1))
}

// OffsetForAlignment implements Layout.
func (l *FixedLayout) OffsetForAlignment(index int, align Align, scrollOffset, viewport int) int {
	item := l.Metadata(index)
	total := l.EstimatedTotalSize()

	maxOffset := min(total-viewport, item.Offset)
	minOffset := max(0, item.End()-viewport)

	return alignedOffset(align, scrollOffset, minOffset, maxOffset)
}

// InvalidateAfter implements Layout. Fixed layouts hold no cache.
func (l *FixedLayout) InvalidateAfter(index int) {}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
