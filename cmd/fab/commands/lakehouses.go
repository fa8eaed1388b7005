package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewLakehousesCommand creates the lakehouses command group.
func NewLakehousesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lakehouses",
		Aliases: []string{"lakehouse", "lh"},
		Short:   "Manage lakehouses",
		Long:    "List lakehouses and inspect their SQL analytics endpoints",
	}

	cmd.AddCommand(newLakehousesListCommand())
	cmd.AddCommand(newLakehousesExpressionCommand())

	return cmd
}

func newLakehousesListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lakehouses",
		Long:  "List all lakehouses in a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			listing, err := client.Lakehouses().ListRows(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list lakehouses: %w", err)
			}

			return outputTable(listing)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")

	return cmd
}

func newLakehousesExpressionCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "expression [LAKEHOUSE]",
		Short: "Show the shared Direct Lake expression",
		Long:  "Print the M expression pointing Direct Lake models at the lakehouse's SQL analytics endpoint",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			ref, err := client.Workspaces().Resolve(ctx, workspace)
			if err != nil {
				return fmt.Errorf("failed to resolve workspace: %w", err)
			}

			lakehouse := ""
			if len(args) > 0 {
				lakehouse = args[0]
			}

			expression, err := client.Lakehouses().SharedExpression(ctx, ref, lakehouse)
			if err != nil {
				return fmt.Errorf("failed to build shared expression: %w", err)
			}

			fmt.Println(expression)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")

	return cmd
}
