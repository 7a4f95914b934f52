package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/averylane/shiftwise/internal/cli/formatter"
	"github.com/averylane/shiftwise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newWorkerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage the worker roster",
	}

	cmd.AddCommand(
		newWorkerAddCmd(app),
		newWorkerListCmd(app),
		newWorkerUpdateCmd(app),
		newWorkerDeactivateCmd(app),
		newWorkerRemoveCmd(app),
	)

	return cmd
}

func newWorkerAddCmd(app *App) *cobra.Command {
	var name, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.interactive() {
				if err := workerAddForm(&name, &role).Run(); err != nil {
					return err
				}
			}
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("worker name is required (use --name)")
			}

			w := &domain.Worker{Name: strings.TrimSpace(name), Role: strings.TrimSpace(role)}
			if err := app.Workers.Create(context.Background(), w); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added worker %s [%s]\n", w.Name, w.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Worker name")
	cmd.Flags().StringVar(&role, "role", "", "Worker role (e.g. stylist, barber)")

	return cmd
}

func workerAddForm(name, role *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Dana Reyes").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Role (optional)").
				Placeholder("stylist").
				Value(role),
		),
	).WithTheme(shiftwiseHuhTheme()).WithShowHelp(false)
}

func newWorkerListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Workers.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(workers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workers found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatWorkerList(workers))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive workers")

	return cmd
}

func newWorkerUpdateCmd(app *App) *cobra.Command {
	var name, role string

	cmd := &cobra.Command{
		Use:   "update WORKER",
		Short: "Update a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			w, err := app.Workers.GetByID(ctx, workerID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				w.Name = name
			}
			if cmd.Flags().Changed("role") {
				w.Role = role
			}

			if err := app.Workers.Update(ctx, w); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated worker %s [%s]\n", w.Name, w.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Worker name")
	cmd.Flags().StringVar(&role, "role", "", "Worker role")

	return cmd
}

func newWorkerDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate WORKER",
		Short: "Deactivate a worker, keeping their punch history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workers.Deactivate(ctx, workerID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deactivated worker %s\n", workerID)
			return nil
		},
	}
}

func newWorkerRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove WORKER",
		Short: "Remove a worker and all their punch events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workers.Delete(ctx, workerID, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed worker %s\n", workerID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the worker is still active")

	return cmd
}
