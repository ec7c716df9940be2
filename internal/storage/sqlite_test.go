package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
)

// Helper function to create test storage.
func createTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// Helper to insert an expense, failing the test on error.
func mustAddExpense(t *testing.T, store *SQLiteStore, date, description string, amount float64, category string) *model.Expense {
	t.Helper()
	exp, err := store.AddExpense(context.Background(), model.Expense{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
	})
	if err != nil {
		t.Fatalf("Failed to add expense: %v", err)
	}
	return exp
}

func TestNewSQLiteStore(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  func(t *testing.T) string
		wantErr bool
	}{
		{
			name: "creates database in new directory",
			dbPath: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "nested", "dir", "test.db")
			},
			wantErr: false,
		},
		{
			name: "empty path rejected",
			dbPath: func(t *testing.T) string {
				t.Helper()
				return ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewSQLiteStore(tt.dbPath(t))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSQLiteStore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if store != nil {
				_ = store.Close()
			}
		})
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()

	ctx := context.Background()

	// A second migration run must be a no-op.
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Second migrate failed: %v", err)
	}

	var version int
	if err := store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("Failed to read schema version: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("Expected schema version %d, got %d", ExpectedSchemaVersion, version)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	mustAddExpense(t, store, "2024-03-01", "Groceries", 42.50, "Food")
	if err := store.Close(); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	if err := reopened.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate reopened store: %v", err)
	}

	expenses, err := reopened.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("Failed to list expenses: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("Expected 1 expense after reopen, got %d", len(expenses))
	}
	if expenses[0].Category != "Food" {
		t.Errorf("Expected category Food, got %q", expenses[0].Category)
	}
}
