package cli

import (
	"fmt"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/startdeck/startdeck/internal/model"
	"github.com/startdeck/startdeck/internal/reorder"
	"github.com/startdeck/startdeck/internal/storage"
	"github.com/startdeck/startdeck/internal/tui"
)

// loadStore opens the configured storage backend and loads the store.
func loadStore() (storage.Storage, *model.Store, error) {
	backend, err := storage.OpenStorage()
	if err != nil {
		return nil, nil, fmt.Errorf("opening storage: %w", err)
	}
	store, err := backend.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading bookmarks: %w", err)
	}
	return backend, store, nil
}

// runTUI opens the interactive dashboard and saves the store on exit.
func runTUI(noMouse bool) error {
	backend, store, err := loadStore()
	if err != nil {
		return err
	}

	settingsPath, err := storage.DefaultSettingsPath()
	if err != nil {
		return fmt.Errorf("resolving settings path: %w", err)
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	modality := reorder.ModalityFine
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if noMouse {
		modality = reorder.ModalityCoarse
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}

	app := tui.NewApp(tui.AppParams{
		Store:        store,
		Settings:     settings,
		SettingsPath: settingsPath,
		Modality:     modality,
	})

	finalModel, err := tea.NewProgram(app, opts...).Run()
	if err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}

	finalApp := finalModel.(tui.App)
	if err := backend.Save(finalApp.Store()); err != nil {
		return fmt.Errorf("saving bookmarks: %w", err)
	}
	return nil
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
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
