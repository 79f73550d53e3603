package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/startdeck/startdeck/internal/server"
	"github.com/startdeck/startdeck/internal/storage"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bookmark REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			srv := server.New(server.Params{
				Store:        store,
				Storage:      backend,
				Settings:     settings,
				SettingsPath: settingsPath,
				Logger:       loggerFromContext(cmd.Context()),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8274", "listen address")
	return cmd
}
