package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/guttosm/nbpstat/internal/app"
	"github.com/guttosm/nbpstat/internal/domain/models"
	"github.com/guttosm/nbpstat/internal/service"
)

var errJournalDisabled = errors.New("order journal is disabled; pass --journal or set JOURNAL_ENABLED=true")

func (c *cli) runsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recently executed orders from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.cfg.Journal.Enabled {
				return errJournalDisabled
			}
			if limit < 1 || limit > service.MaxRunsLimit {
				return fmt.Errorf("--limit must be between 1 and %d", service.MaxRunsLimit)
			}
			deps, cleanup, err := app.Build(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			runs, err := deps.Runs.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printRuns(c.out, runs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultRunsLimit, "number of runs to list")
	return cmd
}

// printRuns writes one aligned row per run, newest first as given.
func printRuns(w io.Writer, runs []models.OrderRun) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tORDER\tSTATUS\tPAGES\tMS\tARGS")
	for _, r := range runs {
		status := "ok"
		if !r.Succeeded {
			status = "failed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.StartedAt.UTC().Format(time.RFC3339), r.Kind, status, r.Pages, r.DurationMs, strings.TrimSpace(r.Args))
	}
	return tw.Flush()
}
