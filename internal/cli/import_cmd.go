package cli

import (
	"context"
	"fmt"

	"github.com/averylane/shiftwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import punch events from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPunches(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d punch events\n", result.Imported)
			for _, r := range result.Rejected {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.StyleYellow.Render("⚠ rejected "+r.Error()))
			}
			return nil
		},
	}
}
