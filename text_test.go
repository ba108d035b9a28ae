package vlist

import "testing"

func TestTextComponent(t *testing.T) {
	t.Run("FluentStyling", func(t *testing.T) {
		tc := Text("err").Bold().Fg(Red).Bg(Blue)
		tc.SetConstraints(10, 1)

		buf := NewBuffer(10, 1)
		tc.Render(buf, 0, 0)

		cell := buf.Get(0, 0)
		if cell.Rune != 'e' {
			t.Errorf("expected 'e', got %q", cell.Rune)
		}
		if !cell.Style.Attr.Has(AttrBold) {
			t.Errorf("expected bold attribute")
		}
		if cell.Style.Attr.Has(AttrDim) {
			t.Errorf("unexpected dim attribute")
		}
		if cell.Style.FG != Red || cell.Style.BG != Blue {
			t.Errorf("expected red on blue, got %v on %v", cell.Style.FG, cell.Style.BG)
		}
	})

	t.Run("StyleThenAttrs", func(t *testing.T) {
		tc := Text("x").Style(DefaultStyle().Inverse()).Dim()
		if !tc.GetStyle().Attr.Has(AttrInverse) || !tc.GetStyle().Attr.Has(AttrDim) {
			t.Errorf("expected inverse and dim, got %v", tc.GetStyle().Attr)
		}
	})

	t.Run("SizeFromConstraints", func(t *testing.T) {
		tc := Textf("item %d", 42)
		tc.SetConstraints(5, 3)

		if w, h := tc.Constraints(); w != 5 || h != 3 {
			t.Errorf("expected constraints (5, 3), got (%d, %d)", w, h)
		}
		// "item 42" is 7 cells wide but only 5 fit; text is one row tall.
		if w, h := tc.Size(); w != 5 || h != 1 {
			t.Errorf("expected size (5, 1), got (%d, %d)", w, h)
		}
	})

	t.Run("SetText", func(t *testing.T) {
		tc := Text("before").SetText("after")
		if got := tc.GetText(); got != "after" {
			t.Errorf("expected %q, got %q", "after", got)
		}
	})
}
