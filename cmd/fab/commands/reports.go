package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewReportsCommand creates the reports command group.
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Manage Power BI reports",
		Long:    "List reports and rebind them to semantic models",
	}

	cmd.AddCommand(newReportsListCommand())
	cmd.AddCommand(newReportsRebindCommand())
	cmd.AddCommand(newReportsRebindAllCommand())

	return cmd
}

func newReportsListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports",
		Long:  "List all Power BI reports in a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			listing, err := client.Reports().ListRows(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list reports: %w", err)
			}

			return outputTable(listing)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace name or id")

	return cmd
}

func newReportsRebindCommand() *cobra.Command {
	var (
		workspace        string
		dataset          string
		datasetWorkspace string
	)

	cmd := &cobra.Command{
		Use:   "rebind REPORT",
		Short: "Rebind a report",
		Long:  "Point one report at a different semantic model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataset == "" {
				return ErrDatasetRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Reports().Rebind(context.Background(), args[0], dataset, workspace, datasetWorkspace)
			if err != nil {
				return fmt.Errorf("failed to rebind report: %w", err)
			}

			fmt.Printf("Rebound report '%s' to semantic model '%s'\n", args[0], dataset)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "report workspace name or id")
	cmd.Flags().StringVar(&dataset, "dataset", "", "target semantic model name or id")
	cmd.Flags().StringVar(&datasetWorkspace, "dataset-workspace", "", "workspace of the target semantic model (defaults to the report workspace)")

	return cmd
}

func newReportsRebindAllCommand() *cobra.Command {
	var (
		workspace           string
		newDataset          string
		newDatasetWorkspace string
	)

	cmd := &cobra.Command{
		Use:   "rebind-all DATASET",
		Short: "Rebind every report of a semantic model",
		Long:  "Point every report bound to DATASET at a different semantic model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if newDataset == "" {
				return ErrDatasetRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Reports().RebindAll(context.Background(), args[0], newDataset, workspace, newDatasetWorkspace)
			if err != nil {
				return fmt.Errorf("failed to rebind reports: %w", err)
			}

			fmt.Printf("Rebound all reports of '%s' to '%s'\n", args[0], newDataset)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "dataset workspace name or id")
	cmd.Flags().StringVar(&newDataset, "to", "", "target semantic model name or id")
	cmd.Flags().StringVar(&newDatasetWorkspace, "to-workspace", "", "workspace of the target semantic model")

	return cmd
}
