package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the dashboard.
type Styles struct {
	App          lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemDragging lipgloss.Style
	Grip         lipgloss.Style
	URL          lipgloss.Style
	Tag          lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style
	Modal        lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
}

// palette is the small set of colors a theme provides.
type palette struct {
	primary  lipgloss.TerminalColor // main text
	subtle   lipgloss.TerminalColor // secondary text
	accent   lipgloss.TerminalColor // highlights, active borders
	border   lipgloss.TerminalColor // inactive borders
	selBg    lipgloss.TerminalColor // selection background
	selFg    lipgloss.TerminalColor // selection foreground
	dragBg   lipgloss.TerminalColor // dragged row background
	dragFg   lipgloss.TerminalColor // dragged row foreground
}

// themes maps settings theme names to palettes. "industrial" is the
// default: grayscale with a single desaturated teal accent.
var themes = map[string]palette{
	"industrial": {
		primary: lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"},
		subtle:  lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"},
		accent:  lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"},
		border:  lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"},
		selBg:   lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"},
		selFg:   lipgloss.Color("#1A1A1A"),
		dragBg:  lipgloss.AdaptiveColor{Light: "#705A4A", Dark: "#87705F"},
		dragFg:  lipgloss.Color("#1A1A1A"),
	},
	"dark": {
		primary: lipgloss.Color("#C8C8C8"),
		subtle:  lipgloss.Color("#707070"),
		accent:  lipgloss.Color("#7AA2F7"),
		border:  lipgloss.Color("#3B4261"),
		selBg:   lipgloss.Color("#7AA2F7"),
		selFg:   lipgloss.Color("#16161E"),
		dragBg:  lipgloss.Color("#E0AF68"),
		dragFg:  lipgloss.Color("#16161E"),
	},
	"light": {
		primary: lipgloss.Color("#383838"),
		subtle:  lipgloss.Color("#909090"),
		accent:  lipgloss.Color("#2E5E8C"),
		border:  lipgloss.Color("#B0B0B0"),
		selBg:   lipgloss.Color("#2E5E8C"),
		selFg:   lipgloss.Color("#FAFAFA"),
		dragBg:  lipgloss.Color("#A65D1E"),
		dragFg:  lipgloss.Color("#FAFAFA"),
	},
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	return []string{"industrial", "dark", "light"}
}

// ThemeStyles builds the style set for a named theme, falling back to the
// industrial palette for unknown names.
func ThemeStyles(name string) Styles {
	p, ok := themes[name]
	if !ok {
		p = themes["industrial"]
	}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Tab: lipgloss.NewStyle().
			Foreground(p.subtle).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Item: lipgloss.NewStyle().
			Foreground(p.primary),

		ItemSelected: lipgloss.NewStyle().
			Background(p.selBg).
			Foreground(p.selFg),

		ItemDragging: lipgloss.NewStyle().
			Background(p.dragBg).
			Foreground(p.dragFg).
			Bold(true),

		Grip: lipgloss.NewStyle().
			Foreground(p.subtle),

		URL: lipgloss.NewStyle().
			Foreground(p.subtle),

		Tag: lipgloss.NewStyle().
			Foreground(p.subtle),

		Help: lipgloss.NewStyle().
			Foreground(p.subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(p.subtle),

		Status: lipgloss.NewStyle().
			Foreground(p.accent),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),

		HintKey: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(p.subtle),
	}
}

// DefaultStyles returns the industrial theme styles.
func DefaultStyles() Styles {
	return ThemeStyles("industrial")
}
