package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/i18n"
	"github.com/spf13/cobra"
)

func newPunchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "punch",
		Short: "Record punch events",
	}

	cmd.AddCommand(
		newPunchEventCmd(app, "in", "Clock a worker in", domain.PunchClockIn),
		newPunchEventCmd(app, "out", "Clock a worker out", domain.PunchClockOut),
		newPunchBreakCmd(app),
		newPunchLastCmd(app),
	)

	return cmd
}

func newPunchBreakCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break",
		Short: "Record break events",
	}

	cmd.AddCommand(
		newPunchEventCmd(app, "start", "Start a break", domain.PunchBreakStart),
		newPunchEventCmd(app, "end", "End a break", domain.PunchBreakEnd),
	)

	return cmd
}

func newPunchEventCmd(app *App, use, short string, kind domain.PunchKind) *cobra.Command {
	var worker, note, at string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, worker)
			if err != nil {
				return err
			}

			ts, err := parseAt(at)
			if err != nil {
				return err
			}

			event, err := app.Punches.Record(ctx, workerID, kind, ts, note)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s at %s\n",
				event.Kind, worker, event.Timestamp.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&worker, "worker", "", "Worker id or name")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	cmd.Flags().StringVar(&at, "at", "", "Back-dated timestamp (RFC3339, e.g. 2026-03-09T09:00:00Z)")
	_ = cmd.MarkFlagRequired("worker")

	return cmd
}

// parseAt parses the --at flag. Empty means now.
func parseAt(at string) (time.Time, error) {
	if at == "" {
		return time.Now(), nil
	}
	ts, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at value %q: expected RFC3339", at)
	}
	return ts, nil
}

func newPunchLastCmd(app *App) *cobra.Command {
	var worker string

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show a worker's most recent punch",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, worker)
			if err != nil {
				return err
			}

			event, err := app.Punches.Last(ctx, workerID)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("%s at %s", event.Kind,
				i18n.FormatClock(event.Timestamp, time.Local, "en"))
			if event.Note != "" {
				line += fmt.Sprintf(" (%s)", event.Note)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVar(&worker, "worker", "", "Worker id or name")
	_ = cmd.MarkFlagRequired("worker")

	return cmd
}
