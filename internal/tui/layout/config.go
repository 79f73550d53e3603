// Package layout computes terminal geometry for the dashboard: where the
// category panes sit, how many bookmark rows fit, and how text is truncated
// to fit its cells. Keeping the arithmetic here keeps the view code and the
// pointer-mapping code in agreement about coordinates.
package layout

// Config holds all layout-related configuration values.
type Config struct {
	Deck  DeckConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// DeckConfig describes the dashboard frame: a tab bar on top, a row of
// category panes below it, and a help bar at the bottom.
type DeckConfig struct {
	// MarginLeft and MarginTop are the app padding around everything.
	MarginLeft int
	MarginTop  int

	// TabBarLines is the tab bar plus the spacer line below it.
	TabBarLines int

	// HelpBarLines is the help bar plus its padding at the bottom.
	HelpBarLines int

	// PaneGap is the number of cells between adjacent panes.
	PaneGap int

	// MinPaneWidth is the narrowest usable pane content width.
	MinPaneWidth int

	// MinPaneHeight is the shortest usable pane content height.
	MinPaneHeight int

	// HeaderLines is the line count inside a pane above the first bookmark
	// row (the category name line).
	HeaderLines int

	// GripWidth is the cell width of the drag grip at the start of each
	// bookmark row.
	GripWidth int
}

// ModalConfig sizes centered overlays (forms, pickers).
type ModalConfig struct {
	WidthPercent int
	MinWidth     int
	MaxWidth     int
}

// InputConfig holds text input limits and display widths.
type InputConfig struct {
	TitleCharLimit int
	URLCharLimit   int
	TagsCharLimit  int
	QueryCharLimit int

	StandardWidth int
	QueryWidth    int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		Deck: DeckConfig{
			MarginLeft:    2,
			MarginTop:     1,
			TabBarLines:   2,
			HelpBarLines:  2,
			PaneGap:       1,
			MinPaneWidth:  16,
			MinPaneHeight: 4,
			HeaderLines:   1,
			GripWidth:     2,
		},
		Modal: ModalConfig{
			WidthPercent: 40,
			MinWidth:     44,
			MaxWidth:     80,
		},
		Input: InputConfig{
			TitleCharLimit: 100,
			URLCharLimit:   500,
			TagsCharLimit:  200,
			QueryCharLimit: 100,
			StandardWidth:  40,
			QueryWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
