// Package storage provides the data persistence layer for the expense tracker.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Selinoztrk/cli-expense-tracker/internal/common"
	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDate ensures a date string parses in the canonical YYYY-MM-DD
// layout. Only parseability is checked.
func validateDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", common.ErrInvalidDate, date)
	}
	return nil
}

// validateExpense validates a single expense prior to insertion.
func validateExpense(expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if err := validateDate(expense.Date); err != nil {
		return err
	}
	if strings.TrimSpace(expense.Category) == "" {
		return fmt.Errorf("%w: category", ErrEmptyString)
	}
	return nil
}
