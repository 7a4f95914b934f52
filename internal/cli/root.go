package cli

import (
	"github.com/averylane/shiftwise/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workers service.WorkerService
	Punches service.PunchService
	Reports service.ReportService
	Shop    service.ShopService
	Import  service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and the report browser are skipped when it is nil or false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "shiftwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shiftwise",
		Short: "Time and attendance tracking for a small shop",
	}

	root.AddCommand(
		newWorkerCmd(app),
		newPunchCmd(app),
		newReportCmd(app),
		newShopCmd(app),
		newImportCmd(app),
	)

	return root
}
