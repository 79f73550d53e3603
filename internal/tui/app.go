// Package tui implements the interactive dashboard: pages of category
// panes, each a column of bookmark rows that can be rearranged by dragging
// a row's grip with the mouse or, without a mouse, by grabbing it from the
// keyboard.
package tui

import (
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/startdeck/startdeck/internal/command"
	"github.com/startdeck/startdeck/internal/model"
	"github.com/startdeck/startdeck/internal/reorder"
	"github.com/startdeck/startdeck/internal/search"
	"github.com/startdeck/startdeck/internal/storage"
	"github.com/startdeck/startdeck/internal/tui/layout"
)

// paneRef addresses one visible category pane. A nil id is the inbox of
// uncategorized bookmarks on the first page.
type paneRef struct {
	id   *string
	name string
}

// App is the main bubbletea model for the dashboard.
type App struct {
	store        *model.Store
	settings     *storage.Settings
	settingsPath string
	keys         KeyMap
	styles       Styles
	cfg          layout.Config
	deck         layout.Deck

	mode      Mode
	pageIdx   int // 0 = the unnamed first page, 1.. = named pages
	catIdx    int // selected pane, absolute index into panes()
	catOffset int // first visible pane
	cursor    int // selected bookmark row in the selected pane

	engine  *reorder.Engine
	surface *deckSurface
	lock    *navLock

	form       FormState
	searchView SearchState
	cmdView    CommandState

	status          string
	confirmDeleteID string
	lastKeyWasG     bool

	openURL func(string) error
	yankURL func(string) error

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store        *model.Store // required
	Settings     *storage.Settings
	SettingsPath string            // where :theme / :columns are persisted; empty disables saving
	Keys         *KeyMap           // optional, uses default if nil
	LayoutConfig *layout.Config    // optional, uses default if nil
	Modality     reorder.Modality  // fine (mouse) by default
	OpenURL      func(string) error // optional, defaults to the OS opener
	YankURL      func(string) error // optional, defaults to the system clipboard
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}
	cfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		cfg = *params.LayoutConfig
	}
	settings := params.Settings
	if settings == nil {
		defaults := storage.DefaultSettings()
		settings = &defaults
	}
	openURL := params.OpenURL
	if openURL == nil {
		openURL = openInBrowser
	}
	yankURL := params.YankURL
	if yankURL == nil {
		yankURL = clipboard.WriteAll
	}

	lock := &navLock{}
	surface := &deckSurface{}
	store := params.Store

	app := App{
		store:        store,
		settings:     settings,
		settingsPath: params.SettingsPath,
		keys:         keys,
		styles:       ThemeStyles(settings.Theme),
		cfg:          cfg,
		surface:      surface,
		lock:         lock,
		form:         NewFormState(cfg.Input),
		searchView:   NewSearchState(cfg.Input),
		cmdView:      NewCommandState(cfg.Input),
		openURL:      openURL,
		yankURL:      yankURL,
		width:        80,
		height:       24,
	}
	app.syncSurface()

	// The commit callback translates the engine's snapshot into sequential
	// positions on the store. The surface pointer keeps it aimed at
	// whichever category is selected when the drag ends.
	engine, err := reorder.New(reorder.Config{
		Container: surface,
		Handle: func(reorder.Element) reorder.HandleFunc {
			return surface.gripHandle
		},
		OnReorder: func(placements []reorder.Placement) {
			ids := make([]string, len(placements))
			for i, p := range placements {
				ids[i] = p.Element.(string)
			}
			store.ApplyBookmarkOrder(surface.categoryID, ids)
		},
		Modality: params.Modality,
		Lock:     lock,
	})
	if err == nil {
		app.engine = engine
	}

	return app
}

// panes returns the category panes of the current page. Uncategorized
// bookmarks surface as an inbox pane on the first page.
func (a App) panes() []paneRef {
	pageID := a.currentPageID()
	var refs []paneRef
	if a.pageIdx == 0 && len(a.store.BookmarksInCategory(nil)) > 0 {
		refs = append(refs, paneRef{id: nil, name: "inbox"})
	}
	for _, c := range a.store.CategoriesOnPage(pageID) {
		id := c.ID
		refs = append(refs, paneRef{id: &id, name: c.Name})
	}
	return refs
}

// tabs returns the page tab labels. The first page is unnamed.
func (a App) tabs() []string {
	names := []string{"deck"}
	for _, p := range a.store.PagesSorted() {
		names = append(names, p.Name)
	}
	return names
}

// currentPageID returns the selected page's ID, nil for the first page.
func (a App) currentPageID() *string {
	if a.pageIdx == 0 {
		return nil
	}
	pages := a.store.PagesSorted()
	if a.pageIdx-1 < len(pages) {
		id := pages[a.pageIdx-1].ID
		return &id
	}
	return nil
}

// syncSurface recomputes geometry and rebinds the reorder surface to the
// selected category. Called after any store mutation, selection change or
// resize.
func (a *App) syncSurface() {
	a.deck = layout.ComputeDeck(a.width, a.height, a.settings.Columns, a.cfg.Deck)

	panes := a.panes()
	if a.catIdx >= len(panes) {
		a.catIdx = len(panes) - 1
	}
	if a.catIdx < 0 {
		a.catIdx = 0
	}
	a.catOffset, _ = layout.Window(a.catIdx, len(panes), a.deck.Columns)

	a.surface.deck = a.deck
	a.surface.pane = a.catIdx - a.catOffset
	if len(panes) == 0 {
		a.surface.categoryID = nil
		a.surface.rows = nil
	} else {
		ref := panes[a.catIdx]
		a.surface.categoryID = ref.id
		bookmarks := a.store.BookmarksInCategory(ref.id)
		rows := make([]string, len(bookmarks))
		for i, b := range bookmarks {
			rows[i] = b.ID
		}
		a.surface.rows = rows
	}

	if a.cursor >= len(a.surface.rows) {
		a.cursor = len(a.surface.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.surface.offset, _ = layout.Window(a.cursor, len(a.surface.rows), a.deck.VisibleRows)

	if a.engine != nil {
		a.engine.Refresh()
	}
}

// selectedBookmark returns the bookmark under the cursor, or nil.
func (a App) selectedBookmark() *model.Bookmark {
	if a.cursor >= len(a.surface.rows) {
		return nil
	}
	return a.store.GetBookmarkByID(a.surface.rows[a.cursor])
}

// Cursor returns the selected bookmark row index.
func (a App) Cursor() int { return a.cursor }

// CategoryIndex returns the selected pane index on the current page.
func (a App) CategoryIndex() int { return a.catIdx }

// PageIndex returns the selected page tab index.
func (a App) PageIndex() int { return a.pageIdx }

// Mode returns the current input mode.
func (a App) Mode() Mode { return a.mode }

// Store returns the underlying store, for saving on exit.
func (a App) Store() *model.Store { return a.store }

// Settings returns the live settings, for saving on exit.
func (a App) Settings() *storage.Settings { return a.settings }

// Deck returns the computed dashboard geometry.
func (a App) Deck() layout.Deck { return a.deck }

// Dragging reports whether a reorder session is open.
func (a App) Dragging() bool {
	if a.engine == nil {
		return false
	}
	_, ok := a.engine.Dragging()
	return ok
}

// SelectedBookmark returns the bookmark under the cursor, or nil.
func (a App) SelectedBookmark() *model.Bookmark { return a.selectedBookmark() }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.syncSurface()
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		switch a.mode {
		case ModeNormal:
			return a.updateNormal(msg)
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeCommand:
			return a.updateCommand(msg)
		case ModeAddBookmark, ModeEditBookmark:
			return a.updateBookmarkForm(msg)
		case ModeAddCategory:
			return a.updateCategoryForm(msg)
		case ModeConfirmDelete:
			return a.updateConfirmDelete(msg)
		case ModeHelp:
			a.mode = ModeNormal
			return a, nil
		}
	}

	return a, nil
}

// updateMouse feeds fine-modality samples into the engine. A press that
// does not open a drag still moves the selection to the clicked row.
func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.mode != ModeNormal || a.engine == nil {
		return a, nil
	}
	pos := reorder.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if a.engine.Pointer(reorder.PointerEvent{Phase: reorder.PhaseBegin, Pos: pos}) {
			a.syncDrag()
			a.status = ""
			return a, nil
		}
		a.selectAt(pos)

	case tea.MouseActionMotion:
		if a.engine.Pointer(reorder.PointerEvent{Phase: reorder.PhaseMove, Pos: pos}) {
			a.syncDrag()
		}

	case tea.MouseActionRelease:
		dragged, open := a.engine.Dragging()
		if a.engine.Pointer(reorder.PointerEvent{Phase: reorder.PhaseEnd, Pos: pos}) && open {
			a.settleDrop(dragged.(string))
		}
	}

	return a, nil
}

// syncDrag adopts the engine's live order and keeps the cursor on the
// dragged row.
func (a *App) syncDrag() {
	a.surface.syncOrder(a.engine.Order())
	if dragged, ok := a.engine.Dragging(); ok {
		if idx := a.surface.rowIndex(dragged.(string)); idx >= 0 {
			a.cursor = idx
		}
	}
}

// settleDrop re-reads the store after a commit and parks the cursor on the
// dropped bookmark.
func (a *App) settleDrop(id string) {
	a.syncSurface()
	if idx := a.surface.rowIndex(id); idx >= 0 {
		a.cursor = idx
	}
	a.status = "order saved"
}

// selectAt moves the selection to the pane and row under a click.
func (a *App) selectAt(pos reorder.Point) {
	pane := a.deck.PaneIndex(pos.X)
	if pane < 0 {
		return
	}
	idx := a.catOffset + pane
	if idx >= len(a.panes()) {
		return
	}
	a.catIdx = idx
	a.syncSurface()
	if row := a.deck.RowIndex(pos.Y); row >= 0 && row+a.surface.offset < len(a.surface.rows) {
		a.cursor = row + a.surface.offset
	}
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a drag session holds the lock, cursor navigation is suspended;
	// only the grab-and-move keys and quit are live.
	if a.lock.held {
		switch {
		case key.Matches(msg, a.keys.Down):
			a.moveGrabbed(1)
		case key.Matches(msg, a.keys.Up):
			a.moveGrabbed(-1)
		case key.Matches(msg, a.keys.Drop), key.Matches(msg, a.keys.CancelGrab):
			a.dropGrabbed()
		case key.Matches(msg, a.keys.Quit):
			a.engine.Destroy()
			return a, tea.Quit
		}
		return a, nil
	}

	// gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.surface.offset = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		if a.engine != nil {
			a.engine.Destroy()
		}
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.surface.rows)-1 {
			a.cursor++
			a.surface.offset, _ = layout.Window(a.cursor, len(a.surface.rows), a.deck.VisibleRows)
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
			a.surface.offset, _ = layout.Window(a.cursor, len(a.surface.rows), a.deck.VisibleRows)
		}

	case key.Matches(msg, a.keys.Bottom):
		if n := len(a.surface.rows); n > 0 {
			a.cursor = n - 1
			a.surface.offset, _ = layout.Window(a.cursor, n, a.deck.VisibleRows)
		}

	case key.Matches(msg, a.keys.Right):
		if a.catIdx < len(a.panes())-1 {
			a.catIdx++
			a.cursor = 0
			a.syncSurface()
		}

	case key.Matches(msg, a.keys.Left):
		if a.catIdx > 0 {
			a.catIdx--
			a.cursor = 0
			a.syncSurface()
		}

	case key.Matches(msg, a.keys.NextPage):
		a.pageIdx = (a.pageIdx + 1) % len(a.tabs())
		a.catIdx = 0
		a.cursor = 0
		a.syncSurface()

	case key.Matches(msg, a.keys.PrevPage):
		tabs := len(a.tabs())
		a.pageIdx = (a.pageIdx - 1 + tabs) % tabs
		a.catIdx = 0
		a.cursor = 0
		a.syncSurface()

	case key.Matches(msg, a.keys.Grab):
		a.grab()

	case key.Matches(msg, a.keys.Open):
		if b := a.selectedBookmark(); b != nil {
			now := time.Now()
			b.VisitedAt = &now
			if err := a.openURL(b.URL); err != nil {
				a.status = "open failed: " + err.Error()
			} else {
				a.status = "opened " + b.Title
			}
		}

	case key.Matches(msg, a.keys.YankURL):
		if b := a.selectedBookmark(); b != nil {
			if err := a.yankURL(b.URL); err != nil {
				a.status = "yank failed: " + err.Error()
			} else {
				a.status = "yanked " + b.URL
			}
		}

	case key.Matches(msg, a.keys.AddBookmark):
		a.form.Reset()
		a.mode = ModeAddBookmark
		return a, textinput.Blink

	case key.Matches(msg, a.keys.AddCategory):
		a.form.Reset()
		a.mode = ModeAddCategory
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Edit):
		if b := a.selectedBookmark(); b != nil {
			a.form.Reset()
			a.form.EditID = b.ID
			a.form.TitleInput.SetValue(b.Title)
			a.form.URLInput.SetValue(b.URL)
			a.form.TagsInput.SetValue(strings.Join(b.Tags, ", "))
			a.mode = ModeEditBookmark
			return a, textinput.Blink
		}

	case key.Matches(msg, a.keys.Delete):
		if b := a.selectedBookmark(); b != nil {
			a.confirmDeleteID = b.ID
			a.mode = ModeConfirmDelete
		}

	case key.Matches(msg, a.keys.Search):
		a.searchView.Reset()
		a.mode = ModeSearch
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Command):
		a.cmdView.Reset()
		a.mode = ModeCommand
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

// grab opens a keyboard drag session on the cursor row. Only available on a
// coarse-modality app; with the mouse enabled the grip is dragged directly.
func (a *App) grab() {
	if a.engine == nil || a.engine.Modality() != reorder.ModalityCoarse {
		return
	}
	pt, ok := a.surface.pointFor(a.cursor)
	if !ok {
		return
	}
	if a.engine.Touch(reorder.PointerEvent{Phase: reorder.PhaseBegin, Pos: pt}) {
		a.status = "grabbed: j/k move, enter drops"
	}
}

// moveGrabbed synthesizes a move sample that shifts the grabbed row one
// step. Reinsertion is relative to the hovered row's near side, so a
// one-step shift hovers the row two positions away; hovering the adjacent
// row would reinsert the grabbed row where it already is.
func (a *App) moveGrabbed(delta int) {
	dragged, ok := a.engine.Dragging()
	if !ok {
		return
	}
	id := dragged.(string)
	target := a.surface.rowIndex(id) + 2*delta
	pt, ok := a.surface.pointFor(target)
	if !ok {
		return
	}
	if a.engine.Touch(reorder.PointerEvent{Phase: reorder.PhaseMove, Pos: pt}) {
		a.syncDrag()
	}
}

// dropGrabbed closes the keyboard drag session at the current position.
func (a *App) dropGrabbed() {
	dragged, ok := a.engine.Dragging()
	if !ok {
		return
	}
	if a.engine.Touch(reorder.PointerEvent{Phase: reorder.PhaseEnd}) {
		a.settleDrop(dragged.(string))
	}
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		return a, nil

	case tea.KeyEnter:
		if a.searchView.Cursor < len(a.searchView.Results) {
			a.jumpTo(a.searchView.Results[a.searchView.Cursor].Bookmark)
		}
		a.mode = ModeNormal
		return a, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if a.searchView.Cursor < len(a.searchView.Results)-1 {
			a.searchView.Cursor++
		}
		return a, nil

	case tea.KeyUp, tea.KeyCtrlP:
		if a.searchView.Cursor > 0 {
			a.searchView.Cursor--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.searchView.Input, cmd = a.searchView.Input.Update(msg)
	a.searchView.Results = search.FuzzyBookmarks(a.store, a.searchView.Input.Value())
	a.searchView.Cursor = 0
	return a, cmd
}

// jumpTo moves the selection to a bookmark, switching page and pane.
func (a *App) jumpTo(b *model.Bookmark) {
	a.pageIdx = 0
	if b.CategoryID != nil {
		if c := a.store.GetCategoryByID(*b.CategoryID); c != nil && c.PageID != nil {
			for i, p := range a.store.PagesSorted() {
				if p.ID == *c.PageID {
					a.pageIdx = i + 1
					break
				}
			}
		}
	}
	a.catIdx = 0
	for i, ref := range a.panes() {
		if ptrEqual(ref.id, b.CategoryID) {
			a.catIdx = i
			break
		}
	}
	a.syncSurface()
	if idx := a.surface.rowIndex(b.ID); idx >= 0 {
		a.cursor = idx
		a.surface.offset, _ = layout.Window(a.cursor, len(a.surface.rows), a.deck.VisibleRows)
	}
}

func (a App) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		return a, nil

	case tea.KeyTab:
		completions := command.Complete(strings.TrimSpace(a.cmdView.Input.Value()))
		a.cmdView.Completions = completions
		if len(completions) == 1 {
			a.cmdView.Input.SetValue(completions[0] + " ")
			a.cmdView.Input.CursorEnd()
		}
		return a, nil

	case tea.KeyEnter:
		input := a.cmdView.Input.Value()
		a.mode = ModeNormal
		cmd, ok, err := command.Parse(input)
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		if !ok {
			// Not a command: fall back to searching for it.
			a.searchView.Reset()
			a.searchView.Input.SetValue(input)
			a.searchView.Results = search.FuzzyBookmarks(a.store, input)
			a.mode = ModeSearch
			return a, textinput.Blink
		}
		a.runCommand(cmd)
		return a, nil
	}

	var teaCmd tea.Cmd
	a.cmdView.Input, teaCmd = a.cmdView.Input.Update(msg)
	a.cmdView.Completions = nil
	return a, teaCmd
}

// runCommand applies a parsed palette command.
func (a *App) runCommand(cmd command.Command) {
	switch cmd.Kind {
	case command.KindTheme:
		known := false
		for _, name := range ThemeNames() {
			if name == cmd.Arg {
				known = true
				break
			}
		}
		if !known {
			a.status = "unknown theme " + cmd.Arg
			return
		}
		a.settings.Theme = cmd.Arg
		a.styles = ThemeStyles(cmd.Arg)
		a.saveSettings()
		a.status = "theme " + cmd.Arg

	case command.KindColumns:
		a.settings.Columns = cmd.Columns
		a.saveSettings()
		a.syncSurface()
		a.status = "columns set"

	case command.KindPage:
		a.switchOrCreatePage(cmd.Arg)
	}
}

// switchOrCreatePage selects the named page, creating it if absent.
func (a *App) switchOrCreatePage(name string) {
	for i, p := range a.store.PagesSorted() {
		if strings.EqualFold(p.Name, name) {
			a.pageIdx = i + 1
			a.catIdx = 0
			a.cursor = 0
			a.syncSurface()
			a.status = "page " + p.Name
			return
		}
	}
	page := model.NewPage(name, len(a.store.Pages))
	a.store.Pages = append(a.store.Pages, page)
	a.pageIdx = len(a.store.PagesSorted())
	a.catIdx = 0
	a.cursor = 0
	a.syncSurface()
	a.status = "created page " + name
}

func (a *App) saveSettings() {
	if a.settingsPath == "" {
		return
	}
	if err := storage.SaveSettings(a.settingsPath, a.settings); err != nil {
		a.status = "settings not saved: " + err.Error()
	}
}

func (a App) updateBookmarkForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		return a, nil

	case tea.KeyTab:
		a.form.CycleFocus()
		return a, nil

	case tea.KeyEnter:
		a.submitBookmarkForm()
		return a, nil
	}

	var cmd tea.Cmd
	switch a.form.Focus {
	case 0:
		a.form.TitleInput, cmd = a.form.TitleInput.Update(msg)
	case 1:
		a.form.URLInput, cmd = a.form.URLInput.Update(msg)
	case 2:
		a.form.TagsInput, cmd = a.form.TagsInput.Update(msg)
	}
	return a, cmd
}

func (a *App) submitBookmarkForm() {
	url := strings.TrimSpace(a.form.URLInput.Value())
	if url == "" {
		a.status = "a bookmark needs a URL"
		return
	}
	title := strings.TrimSpace(a.form.TitleInput.Value())
	if title == "" {
		title = url
	}
	tags := parseTags(a.form.TagsInput.Value())

	if a.form.EditID != "" {
		if b := a.store.GetBookmarkByID(a.form.EditID); b != nil {
			b.Title = title
			b.URL = url
			b.Tags = tags
			a.status = "updated " + title
		}
	} else {
		bookmark := model.NewBookmark(model.NewBookmarkParams{
			Title:      title,
			URL:        url,
			CategoryID: a.surface.categoryID,
			Tags:       tags,
			Position:   a.store.NextBookmarkPosition(a.surface.categoryID),
		})
		a.store.Bookmarks = append(a.store.Bookmarks, bookmark)
		a.status = "added " + title
	}

	a.mode = ModeNormal
	a.syncSurface()
}

func (a App) updateCategoryForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		return a, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(a.form.TitleInput.Value())
		if name == "" {
			a.status = "a category needs a name"
			return a, nil
		}
		pageID := a.currentPageID()
		category := model.NewCategory(model.NewCategoryParams{
			Name:     name,
			PageID:   pageID,
			Position: a.store.NextCategoryPosition(pageID),
		})
		a.store.Categories = append(a.store.Categories, category)
		a.mode = ModeNormal
		a.syncSurface()
		for i, ref := range a.panes() {
			if ref.id != nil && *ref.id == category.ID {
				a.catIdx = i
				break
			}
		}
		a.cursor = 0
		a.syncSurface()
		a.status = "added category " + name
		return a, nil
	}

	var cmd tea.Cmd
	a.form.TitleInput, cmd = a.form.TitleInput.Update(msg)
	return a, cmd
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if b := a.store.GetBookmarkByID(a.confirmDeleteID); b != nil {
			title := b.Title
			a.store.DeleteBookmark(a.confirmDeleteID)
			a.status = "deleted " + title
		}
		a.confirmDeleteID = ""
		a.mode = ModeNormal
		a.syncSurface()
	case "n", "esc", "q":
		a.confirmDeleteID = ""
		a.mode = ModeNormal
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

// parseTags splits a comma separated tag list, dropping empties.
func parseTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ptrEqual compares two string pointers for equality.
func ptrEqual(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// openInBrowser opens a URL with the platform's default handler.
func openInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
