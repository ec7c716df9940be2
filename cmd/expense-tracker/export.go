package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Selinoztrk/cli-expense-tracker/internal/cli"
	"github.com/Selinoztrk/cli-expense-tracker/internal/export"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all expenses to CSV",
		Long: `Write every expense to a CSV file with the header
ID,Date,Description,Amount,Category, in the same order as 'list'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			exporter := export.NewExporter(store, slog.Default())
			if err := exporter.WriteFile(ctx, output); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported expenses to %s", output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "expenses.csv", "output file path")

	return cmd
}
