package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/startdeck/startdeck/internal/linkcheck"
)

func newCheckCmd() *cobra.Command {
	var (
		concurrency    int
		timeout        time.Duration
		privateDomains []string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe every bookmark URL and report dead links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadStore()
			if err != nil {
				return err
			}
			if len(store.Bookmarks) == 0 {
				fmt.Println("No bookmarks to check")
				return nil
			}

			logger := loggerFromContext(cmd.Context())
			checker := linkcheck.NewChecker(linkcheck.CheckerParams{
				Concurrency:    concurrency,
				Timeout:        timeout,
				PrivateDomains: privateDomains,
				OnProgress: func(done, total int) {
					logger.Debug("probed", "done", done, "total", total)
				},
			})

			start := time.Now()
			reports := checker.Run(cmd.Context(), store.Bookmarks)

			ok := 0
			for _, r := range reports {
				if r.Health == linkcheck.HealthOK {
					ok++
					continue
				}
				detail := r.Detail
				if r.StatusCode != 0 {
					detail = fmt.Sprintf("HTTP %d", r.StatusCode)
				}
				fmt.Printf("%-11s %s (%s)\n", r.Health, r.Bookmark.URL, detail)
			}

			logger.Info("check complete",
				"ok", ok,
				"flagged", len(reports)-ok,
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 8, "number of parallel probes")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	cmd.Flags().StringSliceVar(&privateDomains, "private", nil, "domains where 404 means auth required, not gone")
	return cmd
}
