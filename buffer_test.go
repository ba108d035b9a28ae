package vlist

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("WriteStringClips", func(t *testing.T) {
		buf := NewBuffer(10, 2)
		n := buf.WriteString(0, 0, 5, "hello world", DefaultStyle())
		if n != 5 {
			t.Errorf("expected 5 cells written, got %d", n)
		}
		if got := buf.Line(0); got != "hello" {
			t.Errorf("expected %q, got %q", "hello", got)
		}
	})

	t.Run("WriteStringWideRunes", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		n := buf.WriteString(0, 0, 10, "日本語", DefaultStyle())
		if n != 6 {
			t.Errorf("expected 6 cells for three wide runes, got %d", n)
		}
		if got := buf.Get(0, 0).Rune; got != '日' {
			t.Errorf("expected wide rune in first cell, got %q", got)
		}
		if got := buf.Get(1, 0).Rune; got != 0 {
			t.Errorf("expected continuation cell, got %q", got)
		}
		if got := buf.Get(2, 0).Rune; got != '本' {
			t.Errorf("expected second rune at column 2, got %q", got)
		}
	})

	t.Run("WideRuneDoesNotSplit", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		// Three cells of budget: the second wide rune needs two and
		// must be dropped whole.
		n := buf.WriteString(0, 0, 3, "日本", DefaultStyle())
		if n != 2 {
			t.Errorf("expected 2 cells written, got %d", n)
		}
	})

	t.Run("CopyRowsClipsBothSides", func(t *testing.T) {
		dst := NewBuffer(5, 3)
		src := NewBuffer(5, 4)
		src.WriteString(0, 1, 5, "aaa", DefaultStyle())
		src.WriteString(0, 2, 5, "bbb", DefaultStyle())

		dst.CopyRows(0, 0, src, 1, 2)
		if got := dst.Line(0); got != "aaa" {
			t.Errorf("expected %q, got %q", "aaa", got)
		}
		if got := dst.Line(1); got != "bbb" {
			t.Errorf("expected %q, got %q", "bbb", got)
		}

		// Source rows out of range are skipped, not wrapped.
		dst.Clear()
		dst.CopyRows(0, 0, src, 3, 5)
		if got := dst.Line(1); got != "" {
			t.Errorf("expected blank line, got %q", got)
		}
	})

	t.Run("CopyColsClipsBothSides", func(t *testing.T) {
		dst := NewBuffer(4, 2)
		src := NewBuffer(6, 2)
		src.WriteString(0, 0, 6, "abcdef", DefaultStyle())

		dst.CopyCols(0, 0, src, 2, 2)
		if got := dst.Line(0); got != "cd" {
			t.Errorf("expected %q, got %q", "cd", got)
		}

		// Source columns out of range are skipped, not wrapped.
		dst.Clear()
		dst.CopyCols(0, 0, src, 5, 3)
		if got := dst.Line(0); got != "f" {
			t.Errorf("expected %q, got %q", "f", got)
		}
	})

	t.Run("ResizeDiscardsContent", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.WriteString(0, 0, 4, "abcd", DefaultStyle())

		buf.Resize(6, 3)
		if buf.Width() != 6 || buf.Height() != 3 {
			t.Errorf("expected 6x3, got %dx%d", buf.Width(), buf.Height())
		}
		if got := buf.Line(0); got != "" {
			t.Errorf("expected cleared buffer, got %q", got)
		}
	})

	t.Run("ResizeToSameSizeKeepsContent", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.WriteString(0, 0, 4, "abcd", DefaultStyle())

		buf.Resize(4, 2)
		if got := buf.Line(0); got != "abcd" {
			t.Errorf("expected %q, got %q", "abcd", got)
		}
	})

	t.Run("SetOutOfBoundsIgnored", func(t *testing.T) {
		buf := NewBuffer(3, 3)
		buf.Set(-1, 0, NewCell('x', DefaultStyle()))
		buf.Set(0, 99, NewCell('x', DefaultStyle()))
		if got := buf.String(); got != "   \n   \n   " {
			t.Errorf("expected blank buffer, got %q", got)
		}
	})

	t.Run("DrawBorder", func(t *testing.T) {
		buf := NewBuffer(4, 3)
		buf.DrawBorder(0, 0, 4, 3, BorderSingle, DefaultStyle())
		want := "┌──┐\n│  │\n└──┘"
		if got := buf.String(); got != want {
			t.Errorf("expected\n%s\ngot\n%s", want, got)
		}
	})
}
