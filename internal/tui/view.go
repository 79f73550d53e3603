package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/startdeck/startdeck/internal/reorder"
	"github.com/startdeck/startdeck/internal/tui/layout"
)

// grip is the drag handle cell at the start of every bookmark row. Its
// width must match DeckConfig.GripWidth.
const grip = "≡ "

// renderView assembles the full frame: tab bar, category panes, help bar.
// Modal modes replace the frame with a centered overlay.
func (a App) renderView() string {
	switch a.mode {
	case ModeSearch:
		return a.renderSearchOverlay()
	case ModeCommand:
		return a.renderCommandOverlay()
	case ModeAddBookmark, ModeEditBookmark:
		return a.renderBookmarkForm()
	case ModeAddCategory:
		return a.renderCategoryForm()
	case ModeConfirmDelete:
		return a.renderConfirmDelete()
	case ModeHelp:
		return a.renderHelp()
	}

	tabBar := a.renderTabs()
	panesRow := a.renderPanes()
	helpBar := a.renderHelpBar()

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, tabBar, "", panesRow, helpBar),
	)
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderTabs renders the page tab bar.
func (a App) renderTabs() string {
	var parts []string
	for i, name := range a.tabs() {
		if i == a.pageIdx {
			parts = append(parts, a.styles.TabActive.Render(name))
		} else {
			parts = append(parts, a.styles.Tab.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

// renderPanes renders the visible category panes side by side.
func (a App) renderPanes() string {
	panes := a.panes()
	if len(panes) == 0 {
		return a.styles.Empty.Render("no categories yet; press A to add one, a to add a bookmark")
	}

	gap := strings.Repeat(" ", 1)
	var rendered []string
	for i := 0; i < a.deck.Columns && a.catOffset+i < len(panes); i++ {
		idx := a.catOffset + i
		if len(rendered) > 0 {
			rendered = append(rendered, gap)
		}
		rendered = append(rendered, a.renderPane(panes[idx], idx == a.catIdx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderPane renders one category pane: name line, then bookmark rows. The
// selected pane renders its rows from the surface, which carries the
// engine's live order while a drag is open.
func (a App) renderPane(ref paneRef, selected bool) string {
	var b strings.Builder
	innerWidth := a.deck.InnerWidth()

	name, _ := layout.Truncate(ref.name, innerWidth, a.cfg.Text)
	b.WriteString(a.styles.Title.Render(name) + "\n")

	var rows []string
	if selected {
		rows = a.surface.rows
	} else {
		for _, bm := range a.store.BookmarksInCategory(ref.id) {
			rows = append(rows, bm.ID)
		}
	}

	if len(rows) == 0 {
		b.WriteString(a.styles.Empty.Render("(empty)"))
	} else {
		offset := 0
		if selected {
			offset = a.surface.offset
		}
		end := offset + a.deck.VisibleRows
		if end > len(rows) {
			end = len(rows)
		}
		for i := offset; i < end; i++ {
			if i > offset {
				b.WriteString("\n")
			}
			b.WriteString(a.renderRow(rows[i], selected && i == a.cursor, innerWidth))
		}
	}

	style := a.styles.Pane
	if selected {
		style = a.styles.PaneActive
	}
	return style.Width(a.deck.PaneWidth).Height(a.deck.PaneHeight).Render(b.String())
}

// renderRow renders one bookmark row with its grip cell.
func (a App) renderRow(id string, cursorHere bool, width int) string {
	bm := a.store.GetBookmarkByID(id)
	if bm == nil {
		return ""
	}

	line := layout.TruncateRow(grip, bm.Title, "", width, a.cfg.Text)

	if a.engine != nil {
		if state, ok := a.engine.State(id); ok && state == reorder.StateDragging {
			return a.styles.ItemDragging.Render(layout.PadRight(line, width))
		}
	}
	if cursorHere {
		return a.styles.ItemSelected.Render(layout.PadRight(line, width))
	}
	return a.styles.Item.Render(line)
}

// renderHelpBar renders the status line and contextual key hints.
func (a App) renderHelpBar() string {
	status := ""
	if a.status != "" {
		status = a.styles.Status.Render(a.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, a.styles.Help.Render(a.renderHints(a.normalHints())))
}

// overlay centers content in a modal box over a blank frame.
func (a App) overlay(content string) string {
	width := layout.ModalWidth(a.width, a.cfg.Modal)
	box := a.styles.Modal.Width(width).Render(content)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

func (a App) renderSearchOverlay() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Search") + "\n\n")
	b.WriteString(a.searchView.Input.View() + "\n\n")

	if len(a.searchView.Results) == 0 {
		if a.searchView.Input.Value() != "" {
			b.WriteString(a.styles.Empty.Render("no matches"))
		}
	} else {
		start, end := layout.Window(a.searchView.Cursor, len(a.searchView.Results), 8)
		for i := start; i < end; i++ {
			r := a.searchView.Results[i]
			line := r.Bookmark.Title
			if i == a.searchView.Cursor {
				b.WriteString(a.styles.ItemSelected.Render("> "+line) + "\n")
				b.WriteString(a.styles.URL.Render("  "+r.Bookmark.URL) + "\n")
			} else {
				b.WriteString(a.styles.Item.Render("  "+line) + "\n")
			}
		}
	}

	b.WriteString("\n" + a.renderHintsInline([]Hint{
		{"enter", "jump"}, {"esc", "cancel"},
	}))
	return a.overlay(b.String())
}

func (a App) renderCommandOverlay() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Command") + "\n\n")
	b.WriteString(":" + a.cmdView.Input.View() + "\n")

	if len(a.cmdView.Completions) > 0 {
		b.WriteString("\n" + a.styles.Empty.Render(strings.Join(a.cmdView.Completions, "  ")) + "\n")
	}

	b.WriteString("\n" + a.renderHintsInline([]Hint{
		{"tab", "complete"}, {"enter", "run"}, {"esc", "cancel"},
	}))
	return a.overlay(b.String())
}

func (a App) renderBookmarkForm() string {
	title := "Add Bookmark"
	if a.mode == ModeEditBookmark {
		title = "Edit Bookmark"
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render(title) + "\n\n")
	b.WriteString("Title " + a.form.TitleInput.View() + "\n")
	b.WriteString("URL   " + a.form.URLInput.View() + "\n")
	b.WriteString("Tags  " + a.form.TagsInput.View() + "\n")
	b.WriteString("\n" + a.renderHintsInline([]Hint{
		{"tab", "next field"}, {"enter", "save"}, {"esc", "cancel"},
	}))
	return a.overlay(b.String())
}

func (a App) renderCategoryForm() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Add Category") + "\n\n")
	b.WriteString("Name " + a.form.TitleInput.View() + "\n")
	b.WriteString("\n" + a.renderHintsInline([]Hint{
		{"enter", "save"}, {"esc", "cancel"},
	}))
	return a.overlay(b.String())
}

func (a App) renderConfirmDelete() string {
	bm := a.store.GetBookmarkByID(a.confirmDeleteID)
	name := a.confirmDeleteID
	if bm != nil {
		name = bm.Title
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Delete Bookmark") + "\n\n")
	b.WriteString(fmt.Sprintf("Delete %q?\n", name))
	b.WriteString("\n" + a.renderHintsInline([]Hint{
		{"y", "delete"}, {"n", "keep"},
	}))
	return a.overlay(b.String())
}

func (a App) renderHelp() string {
	bindings := []struct {
		key  string
		desc string
	}{
		{"j/k", "move up and down"},
		{"h/l", "previous / next category"},
		{"tab / shift+tab", "switch page"},
		{"gg / G", "jump to top / bottom"},
		{"enter / o", "open bookmark"},
		{"y", "yank URL to clipboard"},
		{"drag grip / r", "reorder bookmarks"},
		{"a / A", "add bookmark / category"},
		{"e", "edit bookmark"},
		{"d", "delete bookmark"},
		{"/", "fuzzy search"},
		{":", "command palette"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Keys") + "\n\n")
	for _, bind := range bindings {
		b.WriteString(a.styles.HintKey.Render(layout.PadRight(bind.key, 16)))
		b.WriteString(a.styles.HintDesc.Render(bind.desc) + "\n")
	}
	b.WriteString("\n" + a.renderHintsInline([]Hint{{"any key", "close"}}))
	return a.overlay(b.String())
}
