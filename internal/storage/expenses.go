package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Selinoztrk/cli-expense-tracker/internal/common"
	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
)

// expenseColumns is the projection shared by every expense read query.
const expenseColumns = `e.id, e.date, e.description, e.amount, c.name, e.category_id, e.created_at`

// AddExpense resolves-or-creates the expense's category, then inserts the
// expense row, all within one SQL transaction. The returned expense carries
// the assigned identifiers.
func (s *SQLiteStore) AddExpense(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateExpense(&expense); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	categoryID, err := resolveCategoryTx(ctx, tx, expense.Category)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO expenses (date, description, amount, category_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		expense.Date, expense.Description, expense.Amount, categoryID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get expense ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	expense.ID = id
	expense.CategoryID = categoryID
	expense.CreatedAt = now

	slog.Info("added expense",
		"id", id,
		"date", expense.Date,
		"amount", expense.Amount,
		"category", expense.Category)
	return &expense, nil
}

// ListExpenses returns all expenses joined with their category name,
// ordered by date descending. Identifier descending breaks ties so the
// ordering is stable for positional removal.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		ORDER BY e.date DESC, e.id DESC`

	return s.queryExpenses(ctx, query)
}

// FilterByDateRange returns expenses with start <= date <= end, ordered by
// date ascending. Both bounds must be valid YYYY-MM-DD dates.
func (s *SQLiteStore) FilterByDateRange(ctx context.Context, start, end string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDate(start); err != nil {
		return nil, err
	}
	if err := validateDate(end); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.date >= ? AND e.date <= ?
		ORDER BY e.date ASC, e.id ASC`

	return s.queryExpenses(ctx, query, start, end)
}

// SearchByDescription returns expenses whose description contains the
// keyword, case-insensitively, in storage order. The keyword is a literal
// substring; % and _ carry no wildcard meaning.
func (s *SQLiteStore) SearchByDescription(ctx context.Context, keyword string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(keyword, "keyword"); err != nil {
		return nil, err
	}

	// instr does a plain substring scan, unlike LIKE whose metacharacters
	// would turn user input into a pattern.
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE instr(LOWER(e.description), ?) > 0
		ORDER BY e.id ASC`

	return s.queryExpenses(ctx, query, strings.ToLower(keyword))
}

// DeleteExpense removes the expense with the given identifier. This is the
// recommended removal API; see DeleteExpenseAt for the positional variant.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", common.ErrExpenseNotFound, id)
	}

	slog.Info("deleted expense", "id", id)
	return nil
}

// DeleteExpenseAt removes the expense at the given 1-based position in the
// current ListExpenses ordering (date descending). The position is resolved
// and the row deleted inside one SQL transaction, so no concurrent-call
// window exists within a single process; across processes the position can
// still drift between a listing and this call, which callers must accept.
// Returns the removed expense.
func (s *SQLiteStore) DeleteExpenseAt(ctx context.Context, position int) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if position < 1 {
		return nil, fmt.Errorf("%w: %d", common.ErrInvalidIndex, position)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		ORDER BY e.date DESC, e.id DESC
		LIMIT 1 OFFSET ?`

	var exp model.Expense
	err = tx.QueryRowContext(ctx, query, position-1).Scan(
		&exp.ID, &exp.Date, &exp.Description, &exp.Amount,
		&exp.Category, &exp.CategoryID, &exp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", common.ErrInvalidIndex, position)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve expense position: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, exp.ID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense deletion: %w", err)
	}

	slog.Info("deleted expense", "id", exp.ID, "position", position)
	return &exp, nil
}

// queryExpenses runs an expense projection query and scans the rows.
func (s *SQLiteStore) queryExpenses(ctx context.Context, query string, args ...any) ([]model.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var exp model.Expense
		if err := rows.Scan(
			&exp.ID, &exp.Date, &exp.Description, &exp.Amount,
			&exp.Category, &exp.CategoryID, &exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}
