package storage

import (
	"context"
	"fmt"

	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
)

// TotalExpenses returns the sum of all expense amounts, zero when the
// ledger is empty.
func (s *SQLiteStore) TotalExpenses(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

// TotalsByCategory returns the summed amount per category name, one entry
// per category with at least one expense.
func (s *SQLiteStore) TotalsByCategory(ctx context.Context) (map[string]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT c.name, SUM(e.amount)
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		GROUP BY c.name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var name string
		var total float64
		if err := rows.Scan(&name, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals[name] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}

	return totals, nil
}

// TotalsByMonth returns the summed amount per YYYY-MM month key, ordered by
// month ascending.
func (s *SQLiteStore) TotalsByMonth(ctx context.Context) ([]model.MonthTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT strftime('%Y-%m', date) AS month, SUM(amount)
		FROM expenses
		GROUP BY month
		ORDER BY month`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []model.MonthTotal
	for rows.Next() {
		var mt model.MonthTotal
		if err := rows.Scan(&mt.Month, &mt.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		totals = append(totals, mt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly totals: %w", err)
	}

	return totals, nil
}

// MonthTotal returns the summed amount over expenses whose date carries the
// given YYYY-MM prefix.
func (s *SQLiteStore) MonthTotal(ctx context.Context, month string) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(month, "month"); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date LIKE ? || '%'`, month).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum month expenses: %w", err)
	}
	return total, nil
}
