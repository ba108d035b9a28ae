// Package vlist provides list virtualization for terminal UIs: it renders
// only the visible slice of a very large ordered collection, measuring item
// sizes lazily instead of up front.
package vlist

// Direction specifies the scroll axis.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Align specifies where a target item lands in the viewport when
// scrolling to it.
type Align int

const (
	// AlignAuto scrolls the minimum distance that makes the item fully
	// visible, or not at all if it already is.
	AlignAuto Align = iota
	// AlignStart pins the item's leading edge to the viewport start.
	AlignStart
	// AlignCenter centers the item in the viewport.
	AlignCenter
	// AlignEnd pins the item's trailing edge to the viewport end.
	AlignEnd
)

// DefaultEstimatedItemSize is the assumed size of unmeasured items.
const DefaultEstimatedItemSize = 50

// SizeFunc reports the size of the item at index along the scroll axis
// (rows for vertical lists, columns for horizontal). It must return a
// positive value.
type SizeFunc func(index int) int

// ItemMetadata is the position of one item along the scroll axis.
// Offset is the cumulative size of all preceding items.
type ItemMetadata struct {
	Offset int
	Size   int
}

// End returns the offset just past the item.
func (m ItemMetadata) End() int {
	return m.Offset + m.Size
}

// Layout positions items along a single scroll axis. Two implementations
// exist: VariableLayout measures lazily and caches; FixedLayout is the
// closed-form specialization for uniform sizes. A Layout is owned by one
// list and must not be shared or called concurrently.
type Layout interface {
	// Count returns the total number of items.
	Count() int

	// Metadata returns offset and size for index. Indices outside
	// [0, Count()) are a caller error.
	Metadata(index int) ItemMetadata

	// EstimatedTotalSize returns the measured total plus an estimate
	// for items not yet measured.
	EstimatedTotalSize() int

	// StartIndexForOffset returns the largest index whose offset does
	// not exceed offset, clamped to [0, Count()-1].
	StartIndexForOffset(offset int) int

	// StopIndexForStart returns the last index needed to fill the
	// viewport when start is the first rendered item.
	StopIndexForStart(start, scrollOffset, viewport int) int

	// OffsetForAlignment returns the scroll offset that satisfies align
	// for index. The result may be negative when the content is shorter
	// than the viewport; callers clamp.
	OffsetForAlignment(index int, align Align, scrollOffset, viewport int) int

	// InvalidateAfter discards cached measurements at and after index.
	InvalidateAfter(index int)
}

// VisibleRange returns the inclusive index range a renderer must draw for
// the given scroll position, widened by overscan items on each side.
// Returns (0, -1) for an empty layout.
func VisibleRange(l Layout, scrollOffset, viewport, overscan int) (start, stop int) {
	count := l.Count()
	if count == 0 {
		return 0, -1
	}
	start = l.StartIndexForOffset(scrollOffset)
	stop = l.StopIndexForStart(start, scrollOffset, viewport)
	start = max(0, start-overscan)
	stop = min(count-1, stop+overscan)
	return start, stop
}
