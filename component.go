package vlist

// Component is the interface row content implements.
type Component interface {
	// SetConstraints tells the component how much space it has.
	SetConstraints(width, height int)

	// Size returns the actual size after layout.
	Size() (width, height int)

	// Render draws the component into the buffer at the given position.
	Render(buf *Buffer, x, y int)
}

// Base provides common functionality for components.
// Embed this in component structs.
type Base struct {
	style         Style
	width, height int
	constraintW   int
	constraintH   int
}

// SetConstraints is called by the parent to report available space.
func (b *Base) SetConstraints(width, height int) {
	b.constraintW = width
	b.constraintH = height
}

// Constraints returns the current constraints.
func (b *Base) Constraints() (width, height int) {
	return b.constraintW, b.constraintH
}

// Size returns the actual size.
func (b *Base) Size() (width, height int) {
	return b.width, b.height
}

// GetStyle returns the component's style.
func (b *Base) GetStyle() Style {
	return b.style
}

// SetStyle sets the component's style.
func (b *Base) SetStyle(s Style) {
	b.style = s
}
