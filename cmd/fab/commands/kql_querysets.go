package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewKQLQuerysetsCommand creates the KQL querysets command group.
func NewKQLQuerysetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kql-querysets",
		Aliases: []string{"kql"},
		Short:   "Manage KQL querysets",
		Long:    "List, create, and delete KQL querysets in a workspace",
	}

	cmd.AddCommand(newKQLQuerysetsListCommand())
	cmd.AddCommand(newKQLQuerysetsCreateCommand())
	cmd.AddCommand(newKQLQuerysetsDeleteCommand())

	return cmd
}

func newKQLQuerysetsListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List KQL querysets",
		Long:  "List all KQL querysets in a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			listing, err := client.KQLQuerysets().ListRows(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list KQL querysets: %w", err)
			}

			return outputTable(listing)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")

	return cmd
}

func newKQLQuerysetsCreateCommand() *cobra.Command {
	var (
		workspace   string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a KQL queryset",
		Long:  "Create a KQL queryset, waiting for long-running provisioning to finish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			item, err := client.KQLQuerysets().Create(context.Background(), args[0], description, workspace)
			if err != nil {
				return fmt.Errorf("failed to create KQL queryset: %w", err)
			}

			fmt.Printf("Created KQL queryset '%s' (%s)\n", item.DisplayName, item.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")
	cmd.Flags().StringVar(&description, "description", "", "queryset description")

	return cmd
}

func newKQLQuerysetsDeleteCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "delete QUERYSET",
		Short: "Delete a KQL queryset",
		Long:  "Delete one KQL queryset, looked up by name or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.KQLQuerysets().Delete(context.Background(), args[0], workspace)
			if err != nil {
				return fmt.Errorf("failed to delete KQL queryset: %w", err)
			}

			fmt.Printf("Deleted KQL queryset '%s' from workspace '%s'\n", ref.Name, ref.Workspace.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")

	return cmd
}
