package vlist

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// TextComponent displays a single line of text.
type TextComponent struct {
	Base
	text string
}

// Text creates a new text component with the given string.
func Text(s string) *TextComponent {
	t := &TextComponent{text: s}
	t.style = DefaultStyle()
	return t
}

// Textf creates a new text component with printf-style formatting.
func Textf(format string, args ...any) *TextComponent {
	return Text(fmt.Sprintf(format, args...))
}

// SetText updates the text content.
func (t *TextComponent) SetText(text string) *TextComponent {
	t.text = text
	return t
}

// GetText returns the text content.
func (t *TextComponent) GetText() string {
	return t.text
}

// SetConstraints implements Component.
func (t *TextComponent) SetConstraints(width, height int) {
	t.Base.SetConstraints(width, height)
	t.width = min(runewidth.StringWidth(t.text), width)
	t.height = min(1, height)
}

// Render implements Component.
func (t *TextComponent) Render(buf *Buffer, x, y int) {
	if t.height == 0 || t.width == 0 {
		return
	}
	buf.WriteString(x, y, t.width, t.text, t.style)
}

// --- Fluent API for styling ---

// Bold makes the text bold.
func (t *TextComponent) Bold() *TextComponent {
	t.style.Attr = t.style.Attr.With(AttrBold)
	return t
}

// Dim makes the text dim.
func (t *TextComponent) Dim() *TextComponent {
	t.style.Attr = t.style.Attr.With(AttrDim)
	return t
}

// Fg sets the foreground color.
func (t *TextComponent) Fg(c Color) *TextComponent {
	t.style.FG = c
	return t
}

// Bg sets the background color.
func (t *TextComponent) Bg(c Color) *TextComponent {
	t.style.BG = c
	return t
}

// Style sets the complete style.
func (t *TextComponent) Style(s Style) *TextComponent {
	t.style = s
	return t
}
