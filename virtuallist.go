package vlist

// VirtualList renders only visible items from a large dataset.
// Rows may have different heights: positions come from a Layout, which
// measures rows lazily, so a million-row list pays only for what is on
// screen. Scrolling is cell-granular, not row-granular, so tall rows can
// be partially visible at either edge of the viewport. Lists scroll
// vertically by default; Direction(Horizontal) places items side by
// side and scrolls in columns, with the size function measuring widths.
type VirtualList[T any] struct {
	Base

	items      []T
	render     func(item T, index int) Component
	heightOf   func(item T, index int) int // nil means fixed itemHeight
	itemHeight int

	layout   Layout
	variable *VariableLayout // non-nil when layout is variable

	// Viewport state
	direction    Direction
	scrollOffset int // cells scrolled from the leading edge of the content
	viewportH    int
	viewportW    int
	overscan     int

	// Cached visible components (recreated on scroll)
	visible      []Component
	visibleStart int
	visibleStop  int

	// Scratch row buffer for clipping partially visible rows
	scratch *Buffer

	// Decoration
	border     *BorderStyle
	background *Color
	padding    int
}

// NewVirtualList creates a virtual list whose rows all have the same
// fixed height. Positions are closed-form; nothing is ever measured.
func NewVirtualList[T any](items []T, itemHeight int, render func(T, int) Component) *VirtualList[T] {
	v := &VirtualList[T]{
		items:       items,
		render:      render,
		itemHeight:  itemHeight,
		layout:      NewFixedLayout(len(items), itemHeight),
		visibleStop: -1,
	}
	v.style = DefaultStyle()
	return v
}

// NewVariableList creates a virtual list whose row heights come from
// heightOf. heightOf must return a positive number of rows; it is called
// lazily, at most once per row between invalidations.
func NewVariableList[T any](items []T, heightOf func(T, int) int, render func(T, int) Component) *VirtualList[T] {
	if heightOf == nil {
		panic("vlist: NewVariableList called with nil height function")
	}
	v := &VirtualList[T]{
		items:       items,
		render:      render,
		heightOf:    heightOf,
		visibleStop: -1,
	}
	v.variable = NewVariableLayout(len(items), v.sizeOf)
	v.layout = v.variable
	v.style = DefaultStyle()
	return v
}

// sizeOf adapts the item-typed height function to the Layout's SizeFunc.
func (v *VirtualList[T]) sizeOf(index int) int {
	return v.heightOf(v.items[index], index)
}

// Layout returns the layout positioning this list's rows.
func (v *VirtualList[T]) Layout() Layout {
	return v.layout
}

// Items returns the current items.
func (v *VirtualList[T]) Items() []T {
	return v.items
}

// Len returns total item count.
func (v *VirtualList[T]) Len() int {
	return len(v.items)
}

// SetItems replaces the item list. Cached measurements are discarded:
// new data means new heights.
func (v *VirtualList[T]) SetItems(items []T) *VirtualList[T] {
	v.items = items
	if v.variable != nil {
		v.variable.SetCount(len(items))
		v.variable.InvalidateAfter(0)
	} else {
		v.layout = NewFixedLayout(len(items), v.itemHeight)
	}
	v.settle()
	return v
}

// InvalidateAfter discards cached row heights at and after index. Call
// it when rows from index on may have changed height.
func (v *VirtualList[T]) InvalidateAfter(index int) *VirtualList[T] {
	v.layout.InvalidateAfter(index)
	v.settle()
	return v
}

// ScrollOffset returns the current scroll position in cells.
func (v *VirtualList[T]) ScrollOffset() int {
	return v.scrollOffset
}

// MaxScroll returns the largest useful scroll offset. The value is based
// on the estimated total size, so it settles as more rows are measured.
func (v *VirtualList[T]) MaxScroll() int {
	return max(0, v.layout.EstimatedTotalSize()-v.viewportExtent())
}

// viewportExtent is the viewport size along the scroll axis.
func (v *VirtualList[T]) viewportExtent() int {
	if v.direction == Horizontal {
		return v.viewportW
	}
	return v.viewportH
}

// ScrollTo scrolls to the given cell offset, clamped to the content.
func (v *VirtualList[T]) ScrollTo(offset int) *VirtualList[T] {
	offset = v.clampOffset(offset)
	if v.scrollOffset != offset {
		v.scrollOffset = offset
		v.settle()
	}
	return v
}

// ScrollBy scrolls by delta cells (positive = toward the end).
func (v *VirtualList[T]) ScrollBy(delta int) *VirtualList[T] {
	return v.ScrollTo(v.scrollOffset + delta)
}

// ScrollToItem scrolls so the item at index satisfies align.
func (v *VirtualList[T]) ScrollToItem(index int, align Align) *VirtualList[T] {
	if len(v.items) == 0 {
		return v
	}
	index = max(0, min(len(v.items)-1, index))
	return v.ScrollTo(v.layout.OffsetForAlignment(index, align, v.scrollOffset, v.viewportExtent()))
}

// VisibleRange returns the inclusive range of row indices currently
// rendered, overscan included. Returns (0, -1) when nothing is visible.
func (v *VirtualList[T]) VisibleRange() (start, stop int) {
	return v.visibleStart, v.visibleStop
}

func (v *VirtualList[T]) clampOffset(offset int) int {
	return max(0, min(v.MaxScroll(), offset))
}

// settle rebuilds the visible window, then re-clamps: measuring the
// window can shrink the estimated total below the current offset, in
// which case the offset snaps back and the window is rebuilt once more.
func (v *VirtualList[T]) settle() {
	v.rebuildVisible()
	if c := v.clampOffset(v.scrollOffset); c != v.scrollOffset {
		v.scrollOffset = c
		v.rebuildVisible()
	}
}

// rebuildVisible recreates components for the rows in view.
func (v *VirtualList[T]) rebuildVisible() {
	start, stop := VisibleRange(v.layout, v.scrollOffset, v.viewportExtent(), v.overscan)
	v.visibleStart, v.visibleStop = start, stop

	needed := stop - start + 1
	if needed < 0 {
		needed = 0
	}
	if cap(v.visible) < needed {
		v.visible = make([]Component, needed)
	} else {
		v.visible = v.visible[:needed]
	}

	for i := 0; i < needed; i++ {
		idx := start + i
		comp := v.render(v.items[idx], idx)
		if v.direction == Horizontal {
			comp.SetConstraints(v.layout.Metadata(idx).Size, v.viewportH)
		} else {
			comp.SetConstraints(v.viewportW, v.layout.Metadata(idx).Size)
		}
		v.visible[i] = comp
	}
}

// SetConstraints implements Component.
func (v *VirtualList[T]) SetConstraints(width, height int) {
	v.Base.SetConstraints(width, height)

	innerW := width
	innerH := height
	if v.border != nil {
		innerW -= 2
		innerH -= 2
	}
	innerW -= v.padding * 2
	innerH -= v.padding * 2
	innerW = max(1, innerW)
	innerH = max(1, innerH)

	v.viewportW = innerW
	v.viewportH = innerH
	v.scrollOffset = v.clampOffset(v.scrollOffset)
	v.settle()

	v.width = width
	v.height = height
}

// Render implements Component.
func (v *VirtualList[T]) Render(buf *Buffer, x, y int) {
	if v.background != nil {
		buf.FillRect(x, y, v.width, v.height, NewCell(' ', DefaultStyle().Background(*v.background)))
	}
	if v.border != nil {
		buf.DrawBorder(x, y, v.width, v.height, *v.border, v.style)
	}

	contentX := x + v.padding
	contentY := y + v.padding
	if v.border != nil {
		contentX++
		contentY++
	}

	for i, comp := range v.visible {
		idx := v.visibleStart + i
		m := v.layout.Metadata(idx)
		v.renderItem(buf, comp, m, contentX, contentY)
	}

	if v.layout.EstimatedTotalSize() > v.viewportExtent() {
		v.renderScrollbar(buf, x, y)
	}
}

// renderItem draws one item, clipping the part scrolled out of the
// viewport. The item is rendered into a scratch buffer and only the
// visible slice of its rows (or columns, for horizontal lists) is
// copied out.
func (v *VirtualList[T]) renderItem(buf *Buffer, comp Component, m ItemMetadata, contentX, contentY int) {
	lead := m.Offset - v.scrollOffset // item position relative to the viewport's leading edge

	src := 0
	dst := lead
	n := m.Size
	if lead < 0 {
		src = -lead
		dst = 0
		n -= src
	}
	if lead+m.Size > v.viewportExtent() {
		n -= lead + m.Size - v.viewportExtent()
	}
	if n <= 0 {
		return
	}

	if v.direction == Horizontal {
		// The copy spans the scratch buffer's full height, so it must
		// match the viewport exactly; width only needs to fit the item.
		if v.scratch == nil {
			v.scratch = NewBuffer(m.Size, v.viewportH)
		} else if v.scratch.Height() != v.viewportH || v.scratch.Width() < m.Size {
			v.scratch.Resize(m.Size, v.viewportH)
		} else {
			v.scratch.Clear()
		}
		comp.Render(v.scratch, 0, 0)
		buf.CopyCols(contentX+dst, contentY, v.scratch, src, n)
		return
	}

	if v.scratch == nil {
		v.scratch = NewBuffer(v.viewportW, m.Size)
	} else if v.scratch.Width() != v.viewportW || v.scratch.Height() < m.Size {
		v.scratch.Resize(v.viewportW, m.Size)
	} else {
		v.scratch.Clear()
	}
	comp.Render(v.scratch, 0, 0)
	buf.CopyRows(contentX, contentY+dst, v.scratch, src, n)
}

// renderScrollbar draws a scrollbar sized from the estimated total, so
// the thumb refines as measurement fills in. Vertical lists get a bar
// along the right edge, horizontal lists along the bottom.
func (v *VirtualList[T]) renderScrollbar(buf *Buffer, x, y int) {
	length := v.viewportExtent()
	if length < 1 || len(v.items) == 0 {
		return
	}

	total := v.layout.EstimatedTotalSize()
	thumbSize := max(1, length*length/total)
	thumbPos := 0
	if maxScroll := total - length; maxScroll > 0 {
		thumbPos = (length - thumbSize) * v.scrollOffset / maxScroll
	}

	trackStyle := DefaultStyle().Foreground(BrightBlack)
	thumbStyle := DefaultStyle().Foreground(White)

	if v.direction == Horizontal {
		sbY := y + v.height - 1
		sbLeft := x + v.padding
		if v.border != nil {
			sbY--
			sbLeft++
		}
		for i := 0; i < length; i++ {
			buf.Set(sbLeft+i, sbY, NewCell('─', trackStyle))
		}
		for i := 0; i < thumbSize; i++ {
			buf.Set(sbLeft+thumbPos+i, sbY, NewCell('━', thumbStyle))
		}
		return
	}

	sbX := x + v.width - 1
	sbTop := y + v.padding
	if v.border != nil {
		sbX--
		sbTop++
	}
	for i := 0; i < length; i++ {
		buf.Set(sbX, sbTop+i, NewCell('│', trackStyle))
	}
	for i := 0; i < thumbSize; i++ {
		buf.Set(sbX, sbTop+thumbPos+i, NewCell('┃', thumbStyle))
	}
}

// --- Fluent API ---

// Overscan sets how many extra rows are rendered past each viewport edge.
func (v *VirtualList[T]) Overscan(n int) *VirtualList[T] {
	v.overscan = max(0, n)
	return v
}

// Direction sets the scroll axis. Horizontal lists place items side by
// side; the size function then measures widths instead of heights.
func (v *VirtualList[T]) Direction(d Direction) *VirtualList[T] {
	if v.direction != d {
		v.direction = d
		v.settle()
	}
	return v
}

// EstimatedRowHeight sets the assumed height of unmeasured rows.
// Has no effect on fixed-height lists.
func (v *VirtualList[T]) EstimatedRowHeight(h int) *VirtualList[T] {
	if v.variable != nil {
		v.variable.EstimatedItemSize(h)
	}
	return v
}

func (v *VirtualList[T]) Border(b BorderStyle) *VirtualList[T] {
	v.border = &b
	return v
}

func (v *VirtualList[T]) Background(c Color) *VirtualList[T] {
	v.background = &c
	return v
}

func (v *VirtualList[T]) Padding(p int) *VirtualList[T] {
	v.padding = p
	return v
}
