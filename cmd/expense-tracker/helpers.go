package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/viper"

	"github.com/Selinoztrk/cli-expense-tracker/internal/budget"
	"github.com/Selinoztrk/cli-expense-tracker/internal/cli"
	"github.com/Selinoztrk/cli-expense-tracker/internal/common"
	"github.com/Selinoztrk/cli-expense-tracker/internal/config"
	"github.com/Selinoztrk/cli-expense-tracker/internal/export"
	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
	"github.com/Selinoztrk/cli-expense-tracker/internal/service"
	"github.com/Selinoztrk/cli-expense-tracker/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/expense-tracker/expenses.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initMonitor builds a budget monitor over the store, configured from the
// budget.limit flag/config key when one is present.
func initMonitor(store service.Storage) (*budget.Monitor, error) {
	monitor := budget.NewMonitor(store)

	raw := viper.GetString("budget.limit")
	if raw == "" {
		return monitor, nil
	}

	limit, err := parseAmount(raw)
	if err != nil {
		return nil, err
	}
	monitor.SetLimit(limit)
	return monitor, nil
}

// parseAmount converts raw user input to a numeric amount. Junk input is an
// ErrInvalidAmount; negative and zero values are accepted.
func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidAmount, raw)
	}
	return amount, nil
}

// printExpenseTable renders expenses in a tabwriter table. Positions are
// 1-based over the given slice.
func printExpenseTable(w io.Writer, expenses []model.Expense) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("#"),
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Date"),
		cli.HeaderStyle.Render("Description"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Category"))

	for i, exp := range expenses {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t$%s\t%s\n",
			i+1, exp.ID, exp.Date, exp.Description,
			export.FormatAmount(exp.Amount), exp.Category)
	}
}

// printBudgetWarning renders a budget warning when one fired.
func printBudgetWarning(w io.Writer, warning *budget.Warning) {
	if warning == nil {
		return
	}
	fmt.Fprintln(w, cli.FormatWarning(fmt.Sprintf(
		"Budget exceeded! You've spent $%s this month (limit: $%s)",
		export.FormatAmount(warning.MonthTotal),
		export.FormatAmount(warning.Limit))))
}
