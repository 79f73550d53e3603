package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/startdeck/startdeck/internal/exporter"
	"github.com/startdeck/startdeck/internal/importer"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.html>",
		Short: "Import bookmarks from a browser HTML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, store, err := loadStore()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer file.Close()

			categories, bookmarks, err := importer.ParseHTMLBookmarks(file)
			if err != nil {
				return fmt.Errorf("parsing HTML: %w", err)
			}

			added, skipped := store.ImportMerge(categories, bookmarks)
			if err := backend.Save(store); err != nil {
				return fmt.Errorf("saving bookmarks: %w", err)
			}

			logger := loggerFromContext(cmd.Context())
			logger.Info("import complete", "added", added, "skipped", skipped, "categories", len(categories))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export bookmarks to a browser-compatible HTML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := ""
			if len(args) > 0 {
				outputPath = args[0]
			}
			if outputPath == "" {
				var err error
				outputPath, err = exporter.DefaultExportPath()
				if err != nil {
					return fmt.Errorf("resolving export path: %w", err)
				}
			}

			_, store, err := loadStore()
			if err != nil {
				return err
			}

			html := exporter.ExportHTML(store)
			if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}

			logger := loggerFromContext(cmd.Context())
			logger.Info("export complete", "bookmarks", len(store.Bookmarks), "path", outputPath)
			return nil
		},
	}
}
