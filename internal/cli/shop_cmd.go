package cli

import (
	"context"
	"fmt"

	"github.com/averylane/shiftwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShopCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage shop settings",
	}

	cmd.AddCommand(
		newShopShowCmd(app),
		newShopSetCmd(app),
	)

	return cmd
}

func newShopShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show shop settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Shop.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatShopProfile(p))
			return nil
		},
	}
}

func newShopSetCmd(app *App) *cobra.Command {
	var name, timezone, locale string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update shop settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Shop.Get(ctx)
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("name") {
				p.Name = name
				changed = true
			}
			if cmd.Flags().Changed("timezone") {
				p.Timezone = timezone
				changed = true
			}
			if cmd.Flags().Changed("locale") {
				p.Locale = locale
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to set (use --name, --timezone, or --locale)")
			}

			if err := app.Shop.Update(ctx, p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatShopProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Shop name")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone for calendar-day bucketing (e.g. America/New_York)")
	cmd.Flags().StringVar(&locale, "locale", "", "Report locale (en, es)")

	return cmd
}
