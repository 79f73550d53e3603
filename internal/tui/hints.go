package tui

import (
	"strings"

	"github.com/startdeck/startdeck/internal/reorder"
)

// Hint is a single keybind hint for the help bar.
type Hint struct {
	Key  string
	Desc string
}

// renderHints renders hints for the bottom bar: "j/k:move h/l:category ..."
func (a App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints for modals: "enter save  esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// normalHints returns the help bar hints for the current state.
func (a App) normalHints() []Hint {
	if a.lock.held {
		return []Hint{
			{"j/k", "move row"},
			{"enter", "drop"},
			{"esc", "drop here"},
		}
	}

	hints := []Hint{
		{"j/k", "move"},
		{"h/l", "category"},
		{"tab", "page"},
	}
	if a.engine != nil && a.engine.Modality() == reorder.ModalityCoarse {
		hints = append(hints, Hint{"r", "reorder"})
	} else {
		hints = append(hints, Hint{"drag ≡", "reorder"})
	}
	hints = append(hints,
		Hint{"a", "add"},
		Hint{"/", "search"},
		Hint{":", "command"},
		Hint{"?", "help"},
		Hint{"q", "quit"},
	)
	return hints
}
