package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/startdeck/startdeck/internal/model"
	"github.com/startdeck/startdeck/internal/picker"
	"github.com/startdeck/startdeck/internal/search"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search bookmarks and open the selected one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuickSearch(cmd, strings.Join(args, " "))
		},
	}
}

// runQuickSearch searches, lets the user pick when there is more than one
// match, marks the bookmark visited, and opens it in the browser.
func runQuickSearch(cmd *cobra.Command, query string) error {
	backend, store, err := loadStore()
	if err != nil {
		return err
	}

	results := search.FuzzyBookmarks(store, query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for %q\n", query)
		return nil
	}

	var selected *model.Bookmark
	if len(results) == 1 {
		selected = results[0].Bookmark
		fmt.Printf("Opening: %s\n", selected.Title)
	} else {
		p := picker.New(results, query)
		finalModel, err := tea.NewProgram(p).Run()
		if err != nil {
			return fmt.Errorf("running picker: %w", err)
		}
		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return nil
		}
		selected = finalPicker.SelectedBookmark()
	}
	if selected == nil {
		return nil
	}

	if bm := store.GetBookmarkByID(selected.ID); bm != nil {
		now := time.Now()
		bm.VisitedAt = &now
		if err := backend.Save(store); err != nil {
			loggerFromContext(cmd.Context()).Warn("could not record visit", "err", err)
		}
	}

	return openURL(selected.URL)
}
