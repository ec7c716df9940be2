// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
)

// Storage defines the contract for the persistence layer. Every mutation is
// durably committed before the call returns; each call is its own atomic
// unit.
type Storage interface {
	// Category operations
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	ResolveCategory(ctx context.Context, name string) (int64, error)
	DeleteCategory(ctx context.Context, name string) error
	CountExpensesByCategory(ctx context.Context, name string) (int, error)

	// Expense operations
	AddExpense(ctx context.Context, expense model.Expense) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	DeleteExpenseAt(ctx context.Context, position int) (*model.Expense, error)
	ListExpenses(ctx context.Context) ([]model.Expense, error)
	FilterByDateRange(ctx context.Context, start, end string) ([]model.Expense, error)
	SearchByDescription(ctx context.Context, keyword string) ([]model.Expense, error)

	// Aggregations
	TotalExpenses(ctx context.Context) (float64, error)
	TotalsByCategory(ctx context.Context) (map[string]float64, error)
	TotalsByMonth(ctx context.Context) ([]model.MonthTotal, error)
	MonthTotal(ctx context.Context, month string) (float64, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
