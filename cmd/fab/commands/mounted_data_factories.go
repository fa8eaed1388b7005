package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewMountedDataFactoriesCommand creates the mounted data factories command
// group.
func NewMountedDataFactoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mounted-data-factories",
		Aliases: []string{"mdf"},
		Short:   "Manage mounted data factories",
		Long:    "List, inspect, and delete mounted data factories in a workspace",
	}

	cmd.AddCommand(newMountedDataFactoriesListCommand())
	cmd.AddCommand(newMountedDataFactoriesDefinitionCommand())
	cmd.AddCommand(newMountedDataFactoriesDeleteCommand())

	return cmd
}

func newMountedDataFactoriesListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mounted data factories",
		Long:  "List all mounted data factories in a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			listing, err := client.MountedDataFactories().ListRows(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list mounted data factories: %w", err)
			}

			return outputTable(listing)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")

	return cmd
}

func newMountedDataFactoriesDefinitionCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "definition FACTORY",
		Short: "Show a mounted data factory definition",
		Long:  "Fetch and decode the content definition of a mounted data factory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			definition, err := client.MountedDataFactories().GetDefinition(context.Background(), args[0], workspace)
			if err != nil {
				return fmt.Errorf("failed to get definition: %w", err)
			}

			return StandardJSONRenderer(definition)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")

	return cmd
}

func newMountedDataFactoriesDeleteCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "delete FACTORY",
		Short: "Delete a mounted data factory",
		Long:  "Delete one mounted data factory, looked up by name or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.MountedDataFactories().Delete(context.Background(), args[0], workspace)
			if err != nil {
				return fmt.Errorf("failed to delete mounted data factory: %w", err)
			}

			fmt.Printf("Deleted mounted data factory '%s' from workspace '%s'\n", ref.Name, ref.Workspace.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")

	return cmd
}
