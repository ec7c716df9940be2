// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Category errors.
	ErrDuplicateCategory = errors.New("category already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryInUse     = errors.New("category in use")

	// Expense errors.
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidIndex    = errors.New("invalid expense index")
	ErrInvalidDate     = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidAmount   = errors.New("invalid amount")

	// Export errors.
	ErrExportFailed = errors.New("export failed")
)

// CategoryInUseError reports a refused category deletion together with the
// number of expenses still referencing it.
type CategoryInUseError struct {
	Name  string
	Count int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %q is referenced by %d expense(s)", e.Name, e.Count)
}

func (e *CategoryInUseError) Unwrap() error {
	return ErrCategoryInUse
}

// NewCategoryInUseError creates a CategoryInUseError for the given category.
func NewCategoryInUseError(name string, count int) error {
	return &CategoryInUseError{Name: name, Count: count}
}
