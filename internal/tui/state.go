package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/startdeck/startdeck/internal/search"
	"github.com/startdeck/startdeck/internal/tui/layout"
)

// Mode is the top-level input mode of the dashboard.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeCommand
	ModeAddBookmark
	ModeEditBookmark
	ModeAddCategory
	ModeConfirmDelete
	ModeHelp
)

// FormState holds state for the add/edit bookmark modal and the add
// category modal.
type FormState struct {
	TitleInput textinput.Model
	URLInput   textinput.Model
	TagsInput  textinput.Model
	Focus      int    // which input has focus: 0=title 1=url 2=tags
	EditID     string // bookmark being edited, empty when adding
}

// NewFormState creates a FormState with initialized inputs.
func NewFormState(cfg layout.InputConfig) FormState {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = cfg.TitleCharLimit
	titleInput.Width = cfg.StandardWidth

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = cfg.URLCharLimit
	urlInput.Width = cfg.StandardWidth

	tagsInput := textinput.New()
	tagsInput.Placeholder = "tag1, tag2, tag3"
	tagsInput.CharLimit = cfg.TagsCharLimit
	tagsInput.Width = cfg.StandardWidth

	return FormState{
		TitleInput: titleInput,
		URLInput:   urlInput,
		TagsInput:  tagsInput,
	}
}

// Reset clears the form for a new session.
func (f *FormState) Reset() {
	f.TitleInput.Reset()
	f.URLInput.Reset()
	f.TagsInput.Reset()
	f.Focus = 0
	f.EditID = ""
	f.TitleInput.Focus()
	f.URLInput.Blur()
	f.TagsInput.Blur()
}

// CycleFocus moves focus to the next input.
func (f *FormState) CycleFocus() {
	f.Focus = (f.Focus + 1) % 3
	f.TitleInput.Blur()
	f.URLInput.Blur()
	f.TagsInput.Blur()
	switch f.Focus {
	case 0:
		f.TitleInput.Focus()
	case 1:
		f.URLInput.Focus()
	case 2:
		f.TagsInput.Focus()
	}
}

// SearchState holds state for the fuzzy search overlay.
type SearchState struct {
	Input   textinput.Model
	Results []search.Result
	Cursor  int
}

// NewSearchState creates a SearchState with an initialized input.
func NewSearchState(cfg layout.InputConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search bookmarks..."
	input.CharLimit = cfg.QueryCharLimit
	input.Width = cfg.QueryWidth
	return SearchState{Input: input}
}

// Reset clears the search state for a new session.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Results = nil
	s.Cursor = 0
	s.Input.Focus()
}

// CommandState holds state for the command palette.
type CommandState struct {
	Input       textinput.Model
	Completions []string
}

// NewCommandState creates a CommandState with an initialized input.
func NewCommandState(cfg layout.InputConfig) CommandState {
	input := textinput.New()
	input.Placeholder = "theme dark | columns 4 | page work"
	input.CharLimit = cfg.QueryCharLimit
	input.Width = cfg.StandardWidth
	return CommandState{Input: input}
}

// Reset clears the command state for a new session.
func (c *CommandState) Reset() {
	c.Input.Reset()
	c.Completions = nil
	c.Input.Focus()
}
