package viewport

import "testing"

func TestNewWindow(t *testing.T) {
	w := New(0)
	if w.Size() != 1 {
		t.Errorf("expected size clamped to 1, got %d", w.Size())
	}
	if w.Top() != 0 || w.Count() != 0 {
		t.Errorf("expected empty window at 0, got top %d count %d", w.Top(), w.Count())
	}
	if w.Bottom() != -1 {
		t.Errorf("expected bottom -1 for empty window, got %d", w.Bottom())
	}
}

func TestWindowScroll(t *testing.T) {
	w := New(10)
	w.SetCount(25)

	if !w.ScrollTo(5) || w.Top() != 5 {
		t.Fatalf("expected top 5, got %d", w.Top())
	}
	if w.Bottom() != 14 {
		t.Errorf("expected bottom 14, got %d", w.Bottom())
	}
	w.ScrollTo(100)
	if w.Top() != 15 {
		t.Errorf("expected top clamped to 15, got %d", w.Top())
	}
	w.ScrollBy(-100)
	if w.Top() != 0 {
		t.Errorf("expected top clamped to 0, got %d", w.Top())
	}
	if w.ScrollBy(-1) {
		t.Error("expected ScrollBy at the top to report no movement")
	}
}

func TestWindowShrinkCount(t *testing.T) {
	w := New(10)
	w.SetCount(50)
	w.ScrollTo(40)
	w.SetCount(12)
	if w.Top() != 2 {
		t.Errorf("expected top 2 after shrinking, got %d", w.Top())
	}
	w.Resize(20)
	if w.Top() != 0 {
		t.Errorf("expected top 0 after growing, got %d", w.Top())
	}
}

func TestWindowReveal(t *testing.T) {
	tests := []struct {
		name    string
		margin  int
		top     int
		reveal  int
		wantTop int
		moved   bool
	}{
		{"already visible", 0, 0, 5, 0, false},
		{"below", 0, 0, 12, 3, true},
		{"above", 0, 10, 4, 4, true},
		{"below with margin", 2, 0, 12, 5, true},
		{"above with margin", 2, 10, 4, 2, true},
		{"near end", 2, 0, 29, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(10)
			w.SetCount(30)
			w.SetMargin(tt.margin)
			w.ScrollTo(tt.top)
			if got := w.Reveal(tt.reveal); got != tt.moved {
				t.Errorf("Reveal moved = %v, want %v", got, tt.moved)
			}
			if w.Top() != tt.wantTop {
				t.Errorf("top = %d, want %d", w.Top(), tt.wantTop)
			}
			if !w.Visible(tt.reveal) {
				t.Errorf("item %d not visible after Reveal", tt.reveal)
			}
		})
	}
}

func TestWindowMarginLimit(t *testing.T) {
	w := New(6)
	w.SetMargin(5)
	if w.Margin() != 2 {
		t.Errorf("expected margin limited to 2, got %d", w.Margin())
	}
}

func TestWindowRows(t *testing.T) {
	w := New(5)
	w.SetCount(7)
	if !w.ScrollTo(3) {
		t.Error("ScrollTo(3) did not move the window")
	}
	if w.Top() != 2 {
		t.Fatalf("Top() = %d, want 2 (clamped to MaxTop)", w.Top())
	}

	if i, ok := w.RowToIndex(1); !ok || i != 3 {
		t.Errorf("RowToIndex(1) = %d,%v, want 3,true", i, ok)
	}
	if i, ok := w.RowToIndex(4); !ok || i != 6 {
		t.Errorf("RowToIndex(4) = %d,%v, want 6,true", i, ok)
	}
	if _, ok := w.RowToIndex(5); ok {
		t.Error("RowToIndex below the window succeeded")
	}
	if _, ok := w.RowToIndex(-1); ok {
		t.Error("RowToIndex(-1) succeeded")
	}
	if got := w.IndexToRow(6); got != 4 {
		t.Errorf("IndexToRow(6) = %d, want 4", got)
	}
	if got := w.IndexToRow(0); got != -1 {
		t.Errorf("IndexToRow(0) = %d, want -1", got)
	}
	if w.Page() != 4 {
		t.Errorf("Page() = %d, want 4", w.Page())
	}

	// fewer items than rows
	w.SetCount(3)
	if w.Top() != 0 {
		t.Errorf("Top() after shrinking = %d, want 0", w.Top())
	}
	if _, ok := w.RowToIndex(3); ok {
		t.Error("RowToIndex past the last item succeeded")
	}
}

func TestView(t *testing.T) {
	v := NewView(10, 3)
	v.Rows.SetCount(20)
	v.Cols.SetCount(40)

	if !v.Reveal(10, 25) {
		t.Fatal("expected Reveal to scroll")
	}
	x, y, ok := v.ToScreen(10, 25)
	if !ok || x != 9 || y != 2 {
		t.Errorf("ToScreen = %d,%d,%v, want 9,2,true", x, y, ok)
	}
	line, col := v.FromScreen(0, 0)
	if line != 8 || col != 16 {
		t.Errorf("FromScreen(0,0) = %d,%d, want 8,16", line, col)
	}
	if _, _, ok := v.ToScreen(0, 0); ok {
		t.Error("ToScreen of a hidden position succeeded")
	}
}
