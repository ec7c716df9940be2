package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Selinoztrk/cli-expense-tracker/internal/cli"
)

func filterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter <start> <end>",
		Short: "List expenses in a date range",
		Long:  `Display expenses dated between start and end inclusive, both in YYYY-MM-DD form, oldest first.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			start, end := args[0], args[1]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := store.FilterByDateRange(ctx, start, end)
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No expenses between %s and %s.", start, end)))
				return nil
			}

			fmt.Printf("Expenses from %s to %s:\n", start, end)
			printExpenseTable(cmd.OutOrStdout(), expenses)
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search expenses by description",
		Long:  `Display expenses whose description contains the keyword, case-insensitively.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			keyword := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := store.SearchByDescription(ctx, keyword)
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No expenses matching %q.", keyword)))
				return nil
			}

			fmt.Printf("Expenses matching %q:\n", keyword)
			printExpenseTable(cmd.OutOrStdout(), expenses)
			return nil
		},
	}
}
