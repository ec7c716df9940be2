package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Selinoztrk/cli-expense-tracker/internal/cli"
	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
)

func addCmd() *cobra.Command {
	var (
		date        string
		description string
		amountRaw   string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense",
		Long: `Record a new expense. The category is created automatically the first
time it is seen. When a budget limit is configured, the current month's
total is checked after the insertion.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(amountRaw)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			monitor, err := initMonitor(store)
			if err != nil {
				return err
			}

			expense, err := store.AddExpense(ctx, model.Expense{
				Date:        date,
				Description: description,
				Amount:      amount,
				Category:    category,
			})
			if err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Added expense #%d: %s %s", expense.ID, expense.Date, expense.Description)))

			warning, err := monitor.CheckAfterInsert(ctx)
			if err != nil {
				return fmt.Errorf("budget check failed: %w", err)
			}
			printBudgetWarning(cmd.OutOrStdout(), warning)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "expense date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "expense description")
	cmd.Flags().StringVar(&amountRaw, "amount", "", "expense amount")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
