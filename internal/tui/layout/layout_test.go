package layout_test

import (
	"testing"

	"github.com/startdeck/startdeck/internal/tui/layout"
)

func TestComputeDeck_Geometry(t *testing.T) {
	cfg := layout.DefaultConfig().Deck
	deck := layout.ComputeDeck(100, 30, 3, cfg)

	if deck.Columns != 3 {
		t.Errorf("columns = %d, want 3", deck.Columns)
	}
	// 100 - margins(4) - gaps(2) - borders(6) = 88, / 3 = 29
	if deck.PaneWidth != 29 {
		t.Errorf("pane width = %d, want 29", deck.PaneWidth)
	}
	if deck.PaneTop != 3 {
		t.Errorf("pane top = %d, want 3", deck.PaneTop)
	}
	if deck.RowsTop != deck.PaneTop+2 {
		t.Errorf("rows top = %d, want pane top + border + header", deck.RowsTop)
	}

	// Adjacent panes must not overlap.
	for i := 0; i < 2; i++ {
		rightEdge := deck.PaneLeft(i) + deck.PaneWidth + 2
		if rightEdge > deck.PaneLeft(i+1) {
			t.Errorf("pane %d right edge %d overlaps pane %d at %d", i, rightEdge, i+1, deck.PaneLeft(i+1))
		}
	}
}

func TestComputeDeck_MinimumSizes(t *testing.T) {
	cfg := layout.DefaultConfig().Deck
	deck := layout.ComputeDeck(20, 8, 4, cfg)

	if deck.PaneWidth < cfg.MinPaneWidth {
		t.Errorf("pane width = %d, below minimum %d", deck.PaneWidth, cfg.MinPaneWidth)
	}
	if deck.PaneHeight < cfg.MinPaneHeight {
		t.Errorf("pane height = %d, below minimum %d", deck.PaneHeight, cfg.MinPaneHeight)
	}
	if deck.VisibleRows < 1 {
		t.Errorf("visible rows = %d, want at least 1", deck.VisibleRows)
	}
}

func TestDeck_HitTesting(t *testing.T) {
	cfg := layout.DefaultConfig().Deck
	deck := layout.ComputeDeck(100, 30, 2, cfg)

	if got := deck.PaneIndex(deck.InnerLeft(0)); got != 0 {
		t.Errorf("PaneIndex(inner left 0) = %d, want 0", got)
	}
	if got := deck.PaneIndex(deck.InnerLeft(1) + 3); got != 1 {
		t.Errorf("PaneIndex(inside pane 1) = %d, want 1", got)
	}
	if got := deck.PaneIndex(0); got != -1 {
		t.Errorf("PaneIndex(margin) = %d, want -1", got)
	}

	if got := deck.RowIndex(deck.RowsTop); got != 0 {
		t.Errorf("RowIndex(rows top) = %d, want 0", got)
	}
	if got := deck.RowIndex(deck.RowsTop + 2); got != 2 {
		t.Errorf("RowIndex(rows top + 2) = %d, want 2", got)
	}
	if got := deck.RowIndex(deck.PaneTop); got != -1 {
		t.Errorf("RowIndex(border) = %d, want -1", got)
	}

	if !deck.GripHit(0, deck.InnerLeft(0)) {
		t.Error("expected grip hit at inner left")
	}
	if deck.GripHit(0, deck.InnerLeft(0)+5) {
		t.Error("expected no grip hit past the grip cells")
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                 string
		selected, total, h   int
		wantStart, wantEnd   int
	}{
		{"fits entirely", 0, 3, 10, 0, 3},
		{"at top", 0, 20, 5, 0, 5},
		{"scrolled", 9, 20, 5, 5, 10},
		{"at bottom", 19, 20, 5, 15, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := layout.Window(tt.selected, tt.total, tt.h)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Window(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.selected, tt.total, tt.h, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	cfg := layout.DefaultConfig().Text

	got, truncated := layout.Truncate("short", 10, cfg)
	if got != "short" || truncated {
		t.Errorf("Truncate(short) = %q, %v", got, truncated)
	}

	got, truncated = layout.Truncate("a very long bookmark title", 10, cfg)
	if got != "a very ..." || !truncated {
		t.Errorf("Truncate(long) = %q, %v", got, truncated)
	}

	got, _ = layout.Truncate("anything", 0, cfg)
	if got != "" {
		t.Errorf("Truncate at width 0 = %q, want empty", got)
	}

	got, _ = layout.Truncate("anything", 2, cfg)
	if layout.VisibleLength(got) != 2 {
		t.Errorf("Truncate at width 2 = %q, want 2 cells", got)
	}
}

func TestTruncateRow(t *testing.T) {
	cfg := layout.DefaultConfig().Text

	got := layout.TruncateRow("≡ ", "Title", "/", 20, cfg)
	if got != "≡ Title/" {
		t.Errorf("TruncateRow(short) = %q", got)
	}

	got = layout.TruncateRow("≡ ", "A considerably longer title", "", 12, cfg)
	if layout.VisibleLength(got) > 12 {
		t.Errorf("TruncateRow(long) = %q, exceeds 12 cells", got)
	}
	if got[:len("≡ ")] != "≡ " {
		t.Errorf("TruncateRow(long) = %q, lost prefix", got)
	}
}

func TestStripANSI(t *testing.T) {
	styled := "\x1b[1mGo\x1b[0m docs"
	if got := layout.StripANSI(styled); got != "Go docs" {
		t.Errorf("StripANSI = %q, want %q", got, "Go docs")
	}
	if got := layout.VisibleLength(styled); got != 7 {
		t.Errorf("VisibleLength = %d, want 7", got)
	}
}

func TestModalWidth(t *testing.T) {
	cfg := layout.DefaultConfig().Modal

	if got := layout.ModalWidth(200, cfg); got != cfg.MaxWidth {
		t.Errorf("wide terminal: width = %d, want max %d", got, cfg.MaxWidth)
	}
	if got := layout.ModalWidth(50, cfg); got != cfg.MinWidth {
		t.Errorf("narrow terminal: width = %d, want min %d", got, cfg.MinWidth)
	}
	if got := layout.ModalWidth(40, cfg); got != 36 {
		t.Errorf("tiny terminal: width = %d, want 36 (terminal - 4)", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := layout.PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := layout.PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight(longer) = %q, want unchanged", got)
	}
}
