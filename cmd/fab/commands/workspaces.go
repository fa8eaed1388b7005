package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// NewWorkspacesCommand creates the workspaces command group.
func NewWorkspacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"workspace", "ws"},
		Short:   "Manage workspaces",
		Long:    "List and inspect Fabric workspaces",
	}

	cmd.AddCommand(newWorkspacesListCommand())
	cmd.AddCommand(newWorkspacesGetCommand())

	return cmd
}

func newWorkspacesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		Long:  "List all workspaces the caller has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			workspaces, err := client.Workspaces().ListAll(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list workspaces: %w", err)
			}

			return outputTable(fabric.WorkspaceTable(workspaces))
		},
	}
}

func newWorkspacesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get WORKSPACE",
		Short: "Get a workspace",
		Long:  "Show one workspace, looked up by name or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			ref, err := client.Workspaces().Resolve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve workspace: %w", err)
			}

			workspace, err := client.Workspaces().Get(ctx, ref.ID)
			if err != nil {
				return fmt.Errorf("failed to get workspace: %w", err)
			}

			return outputTable(fabric.WorkspaceTable([]fabric.Workspace{*workspace}))
		},
	}
}
