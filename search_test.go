package vlist

import "testing"

func TestStartIndexForOffset(t *testing.T) {
	t.Run("ExhaustiveOverExactTotal", func(t *testing.T) {
		sizes := func(i int) int { return i%5 + 1 }
		l := NewVariableLayout(200, sizes)
		l.Metadata(199)
		total := l.EstimatedTotalSize()

		want := 0
		for o := 0; o < total; o++ {
			for l.Metadata(want).End() <= o {
				want++
			}
			if got := l.StartIndexForOffset(o); got != want {
				t.Fatalf("StartIndexForOffset(%d) = %d, want %d", o, got, want)
			}
		}
	})

	t.Run("ZeroAndNegativeOffsets", func(t *testing.T) {
		l := NewVariableLayout(10, func(i int) int { return 5 })
		if got := l.StartIndexForOffset(0); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
		if got := l.StartIndexForOffset(-100); got != 0 {
			t.Errorf("expected 0 for negative offset, got %d", got)
		}
	})

	t.Run("BeyondContentClampsToLast", func(t *testing.T) {
		l := NewVariableLayout(10, func(i int) int { return 5 })
		if got := l.StartIndexForOffset(10_000); got != 9 {
			t.Errorf("expected 9, got %d", got)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		l := NewVariableLayout(0, func(i int) int { return 5 })
		if got := l.StartIndexForOffset(42); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("ExponentialProbeIntoUnmeasured", func(t *testing.T) {
		calls := 0
		l := NewVariableLayout(1_000_000, func(i int) int {
			calls++
			return 10
		})

		got := l.StartIndexForOffset(5_000_000)
		if got != 500_000 {
			t.Errorf("expected index 500000, got %d", got)
		}
		// The probe doubles its stride, so the number of measurements is
		// bounded by the bracket it lands in, not the whole collection.
		if calls > 2*got+2 {
			t.Errorf("probe measured %d items for target index %d", calls, got)
		}
		if calls >= 1_000_000 {
			t.Errorf("probe measured the entire collection")
		}
	})

	t.Run("MeasuredPathUsesBinarySearchOnly", func(t *testing.T) {
		calls := 0
		l := NewVariableLayout(1000, func(i int) int {
			calls++
			return 4
		})
		l.Metadata(999)
		callsAfterFill := calls

		l.StartIndexForOffset(2000)
		if calls != callsAfterFill {
			t.Errorf("search over measured range remeasured %d items", calls-callsAfterFill)
		}
	})
}

func TestStopIndexForStart(t *testing.T) {
	t.Run("FillsViewport", func(t *testing.T) {
		l := NewVariableLayout(100, func(i int) int { return 25 })

		// Viewport of 100 starting at item 0, offset 0: items 0..3 fill it.
		if got := l.StopIndexForStart(0, 0, 100); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}

		// Scrolled mid-item: one extra row is needed at the bottom.
		if got := l.StopIndexForStart(0, 10, 100); got != 4 {
			t.Errorf("expected 4, got %d", got)
		}
	})

	t.Run("ClampsToLastIndex", func(t *testing.T) {
		l := NewVariableLayout(5, func(i int) int { return 10 })
		if got := l.StopIndexForStart(3, 30, 500); got != 4 {
			t.Errorf("expected 4, got %d", got)
		}
	})

	t.Run("VariableSizes", func(t *testing.T) {
		// Sizes 5, 10, 15, 20, ... offsets 0, 5, 15, 30, 50
		l := NewVariableLayout(20, func(i int) int { return (i + 1) * 5 })

		start := l.StartIndexForOffset(15)
		if start != 2 {
			t.Fatalf("expected start 2, got %d", start)
		}
		// Viewport 20 from offset 15 spans [15, 35): items 2 and 3.
		if got := l.StopIndexForStart(start, 15, 20); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})
}

func TestVisibleRange(t *testing.T) {
	t.Run("NoOverscan", func(t *testing.T) {
		l := NewVariableLayout(100, func(i int) int { return 10 })
		start, stop := VisibleRange(l, 25, 40, 0)
		if start != 2 || stop != 6 {
			t.Errorf("expected [2, 6], got [%d, %d]", start, stop)
		}
	})

	t.Run("OverscanClamped", func(t *testing.T) {
		l := NewVariableLayout(100, func(i int) int { return 10 })

		start, stop := VisibleRange(l, 0, 40, 3)
		if start != 0 || stop != 6 {
			t.Errorf("expected [0, 6], got [%d, %d]", start, stop)
		}

		start, stop = VisibleRange(l, 960, 40, 3)
		if start != 93 || stop != 99 {
			t.Errorf("expected [93, 99], got [%d, %d]", start, stop)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		l := NewVariableLayout(0, func(i int) int { return 10 })
		start, stop := VisibleRange(l, 0, 40, 2)
		if start != 0 || stop != -1 {
			t.Errorf("expected [0, -1], got [%d, %d]", start, stop)
		}
	})
}
