package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Selinoztrk/cli-expense-tracker/internal/common"
	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
)

// ListCategories returns all categories ordered by name ascending.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns a category by its name, or nil if absent.
// Lookups are case-sensitive.
func (s *SQLiteStore) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, created_at
		FROM categories
		WHERE name = ?`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, name).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// CreateCategory creates a new category. It fails with ErrDuplicateCategory
// if a category with the same name already exists, leaving state unchanged.
func (s *SQLiteStore) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	existing, err := s.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", common.ErrDuplicateCategory, name)
	}

	insertQuery := `
		INSERT INTO categories (name, created_at)
		VALUES (?, ?)`

	now := time.Now()
	result, err := s.db.ExecContext(ctx, insertQuery, name, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	category := &model.Category{
		ID:        id,
		Name:      name,
		CreatedAt: now,
	}

	slog.Info("created new category", "name", name, "id", id)
	return category, nil
}

// ResolveCategory returns the identifier of the category with the given
// name, creating it first if it does not exist. Idempotent per name.
func (s *SQLiteStore) ResolveCategory(ctx context.Context, name string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(name, "name"); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := resolveCategoryTx(ctx, tx, name)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit category resolution: %w", err)
	}
	return id, nil
}

// resolveCategoryTx is the lookup-or-insert shared by ResolveCategory and
// AddExpense so both run it inside a single SQL transaction.
func resolveCategoryTx(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM categories WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up category: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO categories (name, created_at) VALUES (?, ?)`, name, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get category ID: %w", err)
	}

	slog.Info("created new category", "name", name, "id", id)
	return id, nil
}

// CountExpensesByCategory returns the number of expenses referencing the
// named category.
func (s *SQLiteStore) CountExpensesByCategory(ctx context.Context, name string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(name, "name"); err != nil {
		return 0, err
	}

	query := `
		SELECT COUNT(*)
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE c.name = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses for category: %w", err)
	}
	return count, nil
}

// DeleteCategory deletes the named category. It fails with
// ErrCategoryNotFound if the category does not exist, and with
// CategoryInUseError when one or more expenses still reference it; in both
// cases nothing is deleted.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM categories WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", common.ErrCategoryNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to look up category: %w", err)
	}

	var count int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses WHERE category_id = ?`, id).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count referencing expenses: %w", err)
	}
	if count > 0 {
		return common.NewCategoryInUseError(name, count)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category deletion: %w", err)
	}

	slog.Info("deleted category", "name", name, "id", id)
	return nil
}
