package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Selinoztrk/cli-expense-tracker/internal/cli"
	"github.com/Selinoztrk/cli-expense-tracker/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show spending breakdowns",
	}

	cmd.AddCommand(reportCategoriesCmd())
	cmd.AddCommand(reportMonthlyCmd())

	return cmd
}

func reportCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Spending per category",
		Long:  `Display the summed amount and share of total spend for every category with at least one expense.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := report.CategoryBreakdown(ctx, store)
			if err != nil {
				return fmt.Errorf("failed to build category breakdown: %w", err)
			}

			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses to report."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Total"),
				cli.HeaderStyle.Render("Share"))

			for _, row := range rows {
				fmt.Fprintf(w, "%s\t$%s\t%s%%\n",
					row.Category, row.Total.StringFixed(2), row.Share.String())
			}

			return nil
		},
	}
}

func reportMonthlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Spending per month",
		Long:  `Display the summed amount per calendar month, oldest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := report.MonthlySeries(ctx, store)
			if err != nil {
				return fmt.Errorf("failed to build monthly series: %w", err)
			}

			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses to report."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Month"),
				cli.HeaderStyle.Render("Total"))

			for _, row := range rows {
				fmt.Fprintf(w, "%s\t$%s\n", row.Month, row.Total.StringFixed(2))
			}

			return nil
		},
	}
}
