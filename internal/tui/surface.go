package tui

import (
	"github.com/startdeck/startdeck/internal/reorder"
	"github.com/startdeck/startdeck/internal/tui/layout"
)

// deckSurface binds the reorder engine to the selected category pane. It
// translates terminal cells into bookmark rows using the same geometry the
// view renders with. Elements are bookmark IDs.
//
// The surface is shared by pointer between App values so that the engine,
// which is constructed once, always sees the current selection.
type deckSurface struct {
	deck       layout.Deck
	pane       int      // visible pane index of the bound category
	rows       []string // bookmark IDs in visual order
	offset     int      // scroll offset, frozen while a drag is open
	categoryID *string  // nil = uncategorized inbox
}

// Elements returns the bound category's bookmark IDs in visual order.
func (s *deckSurface) Elements() []reorder.Element {
	elements := make([]reorder.Element, len(s.rows))
	for i, id := range s.rows {
		elements[i] = id
	}
	return elements
}

// ElementAt maps a terminal cell to the bookmark row it lands on. Cells
// outside the bound pane's row area resolve to nil.
func (s *deckSurface) ElementAt(p reorder.Point) reorder.Element {
	if s.deck.PaneIndex(p.X) != s.pane {
		return nil
	}
	row := s.deck.RowIndex(p.Y)
	if row < 0 {
		return nil
	}
	idx := row + s.offset
	if idx >= len(s.rows) {
		return nil
	}
	return s.rows[idx]
}

// gripHandle reports whether a point falls on a row's drag grip. The grip
// column is shared by every row of the pane.
func (s *deckSurface) gripHandle(p reorder.Point) bool {
	return s.deck.GripHit(s.pane, p.X)
}

// pointFor returns the terminal cell of the given row index, adjusting the
// scroll offset when the row sits just outside the current window. ok is
// false when the row cannot be brought into view.
func (s *deckSurface) pointFor(idx int) (reorder.Point, bool) {
	if idx < 0 || idx >= len(s.rows) {
		return reorder.Point{}, false
	}
	if idx < s.offset {
		s.offset = idx
	}
	if idx >= s.offset+s.deck.VisibleRows {
		s.offset = idx - s.deck.VisibleRows + 1
	}
	return reorder.Point{
		X: s.deck.InnerLeft(s.pane),
		Y: s.deck.RowsTop + idx - s.offset,
	}, true
}

// syncOrder adopts the engine's live order during a drag.
func (s *deckSurface) syncOrder(order []reorder.Element) {
	rows := make([]string, len(order))
	for i, el := range order {
		rows[i] = el.(string)
	}
	s.rows = rows
}

// rowIndex returns the visual index of a bookmark ID, or -1.
func (s *deckSurface) rowIndex(id string) int {
	for i, row := range s.rows {
		if row == id {
			return i
		}
	}
	return -1
}

// navLock suspends cursor navigation while a drag session holds it. It
// implements reorder.ScrollLock.
type navLock struct {
	held bool
}

func (l *navLock) Acquire() { l.held = true }
func (l *navLock) Release() { l.held = false }
