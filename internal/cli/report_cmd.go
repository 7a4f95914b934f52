package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/averylane/shiftwise/internal/cli/formatter"
	"github.com/averylane/shiftwise/internal/export"
	"github.com/averylane/shiftwise/internal/i18n"
	"github.com/averylane/shiftwise/internal/service"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var from, to, worker, lang, csvPath, xlsxPath string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reconstruct shifts and show the daily attendance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			today := time.Now().Format("2006-01-02")
			if from == "" {
				from = today
			}
			if to == "" {
				to = from
			}

			req := service.ReportRequest{From: from, To: to}
			if worker != "" {
				workerID, err := resolveWorkerID(ctx, app, worker)
				if err != nil {
					return err
				}
				req.WorkerID = workerID
			}

			result, err := app.Reports.Generate(ctx, req)
			if err != nil {
				return err
			}

			if lang == "" {
				lang = result.Locale
			}
			if !i18n.Supported(lang) {
				return fmt.Errorf("unsupported language %q (supported: %v)", lang, i18n.SupportedLocales())
			}

			loc, err := time.LoadLocation(result.Timezone)
			if err != nil {
				return fmt.Errorf("resolving timezone %q: %w", result.Timezone, err)
			}

			if csvPath != "" {
				if err := writeExport(csvPath, func(f *os.File) error {
					return export.WriteCSV(f, result.Rows, loc, lang)
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(result.Rows), csvPath)
			}
			if xlsxPath != "" {
				if err := writeExport(xlsxPath, func(f *os.File) error {
					return export.WriteXLSX(f, result.Rows, loc, lang)
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(result.Rows), xlsxPath)
			}
			if csvPath != "" || xlsxPath != "" {
				return nil
			}

			rendered := formatter.FormatReport(result, loc, lang)
			if interactive && app.interactive() {
				return runReportBrowser(fmt.Sprintf("Attendance %s to %s", from, to), rendered)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end date inclusive (YYYY-MM-DD, default --from)")
	cmd.Flags().StringVar(&worker, "worker", "", "Limit to one worker (id or name)")
	cmd.Flags().StringVar(&lang, "lang", "", "Report language (default shop locale)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the report as CSV to this path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write the report as XLSX to this path")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Browse the report in a scrollable view")

	return cmd
}

func writeExport(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
