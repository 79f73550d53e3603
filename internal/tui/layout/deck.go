package layout

// Deck is the computed dashboard geometry for one terminal size. All
// coordinates are zero-based terminal cells, matching mouse event
// coordinates, so the same numbers serve rendering and hit-testing.
type Deck struct {
	cfg DeckConfig

	// Columns is the number of panes shown side by side.
	Columns int

	// PaneWidth is the lipgloss width of one pane: content plus one cell of
	// horizontal padding on each side, borders excluded.
	PaneWidth int

	// PaneHeight is the pane content height in lines, borders excluded.
	PaneHeight int

	// PaneTop is the y of the panes' top border.
	PaneTop int

	// RowsTop is the y of the first bookmark row inside a pane.
	RowsTop int

	// VisibleRows is how many bookmark rows fit in one pane.
	VisibleRows int
}

// ComputeDeck lays out columns panes for a terminal of the given size.
func ComputeDeck(termWidth, termHeight, columns int, cfg DeckConfig) Deck {
	if columns < 1 {
		columns = 1
	}

	// Each pane is PaneWidth+2 cells wide once borders are drawn.
	usable := termWidth - 2*cfg.MarginLeft - (columns-1)*cfg.PaneGap - columns*2
	paneWidth := usable / columns
	if paneWidth < cfg.MinPaneWidth {
		paneWidth = cfg.MinPaneWidth
	}

	paneTop := cfg.MarginTop + cfg.TabBarLines
	paneHeight := termHeight - paneTop - cfg.HelpBarLines - 2
	if paneHeight < cfg.MinPaneHeight {
		paneHeight = cfg.MinPaneHeight
	}

	visibleRows := paneHeight - cfg.HeaderLines
	if visibleRows < 1 {
		visibleRows = 1
	}

	return Deck{
		cfg:         cfg,
		Columns:     columns,
		PaneWidth:   paneWidth,
		PaneHeight:  paneHeight,
		PaneTop:     paneTop,
		RowsTop:     paneTop + 1 + cfg.HeaderLines,
		VisibleRows: visibleRows,
	}
}

// PaneLeft returns the x of pane i's left border.
func (d Deck) PaneLeft(i int) int {
	return d.cfg.MarginLeft + i*(d.PaneWidth+2+d.cfg.PaneGap)
}

// InnerLeft returns the x of the first content cell inside pane i.
func (d Deck) InnerLeft(i int) int {
	return d.PaneLeft(i) + 2
}

// InnerWidth returns the text width available inside a pane.
func (d Deck) InnerWidth() int {
	return d.PaneWidth - 2
}

// RowIndex maps a terminal y to a visible bookmark row index, or -1 when y
// is outside the row area.
func (d Deck) RowIndex(y int) int {
	idx := y - d.RowsTop
	if idx < 0 || idx >= d.VisibleRows {
		return -1
	}
	return idx
}

// PaneIndex maps a terminal x to the pane whose content area contains it,
// or -1 when x falls in a margin or gap.
func (d Deck) PaneIndex(x int) int {
	for i := 0; i < d.Columns; i++ {
		left := d.InnerLeft(i)
		if x >= left && x < left+d.InnerWidth() {
			return i
		}
	}
	return -1
}

// GripHit reports whether x falls on the drag grip of a row in pane i.
func (d Deck) GripHit(pane, x int) bool {
	left := d.InnerLeft(pane)
	return x >= left && x < left+d.cfg.GripWidth
}

// ModalWidth computes a responsive overlay width from the terminal width.
func ModalWidth(termWidth int, cfg ModalConfig) int {
	width := termWidth * cfg.WidthPercent / 100
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}
	if width > termWidth-4 {
		width = termWidth - 4
	}
	if width < 1 {
		width = 1
	}
	return width
}

// Window returns the [start, end) slice bounds that keep the selected index
// visible in a viewport of the given height.
func Window(selected, total, height int) (start, end int) {
	if total <= height {
		return 0, total
	}
	if selected >= height {
		start = selected - height + 1
	}
	end = start + height
	if end > total {
		end = total
	}
	return start, end
}
