package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// NewItemsCommand creates the items command group.
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage workspace items",
		Long:    "List and delete Fabric items of any type",
	}

	cmd.AddCommand(newItemsListCommand())
	cmd.AddCommand(newItemsDeleteCommand())

	return cmd
}

func newItemsListCommand() *cobra.Command {
	var (
		workspace string
		itemType  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Long:  "List items in a workspace, optionally filtered by item type",
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

			items, err := client.Items().ListAll(ctx, ref.ID, normalizeItemType(itemType))
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			return outputTable(fabric.ItemTable(items))
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")
	cmd.Flags().StringVar(&itemType, "type", "", "item type filter (e.g. Lakehouse, SemanticModel)")

	return cmd
}

func newItemsDeleteCommand() *cobra.Command {
	var (
		workspace string
		itemType  string
	)

	cmd := &cobra.Command{
		Use:   "delete ITEM",
		Short: "Delete an item",
		Long:  "Delete one item, looked up by name or id",
		Args:  cobra.ExactArgs(1),
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

			itemRef, err := client.Items().Resolve(ctx, ref, args[0], normalizeItemType(itemType))
			if err != nil {
				return fmt.Errorf("failed to resolve item: %w", err)
			}

			err = client.Items().Delete(ctx, ref.ID, itemRef.ID)
			if err != nil {
				return fmt.Errorf("failed to delete item: %w", err)
			}

			fmt.Printf("Deleted %s '%s' from workspace '%s'\n", itemRef.Type, itemRef.Name, ref.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")
	cmd.Flags().StringVar(&itemType, "type", "", "item type of the target")

	return cmd
}
