package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Selinoztrk/cli-expense-tracker/internal/common"
)

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		setup   func(*testing.T, *SQLiteStore)
		name    string
		catName string
		wantErr error
	}{
		{
			name:    "creates new category",
			catName: "Food",
		},
		{
			name:    "duplicate name rejected",
			catName: "Food",
			setup: func(t *testing.T, s *SQLiteStore) {
				t.Helper()
				if _, err := s.CreateCategory(context.Background(), "Food"); err != nil {
					t.Fatalf("Setup failed: %v", err)
				}
			},
			wantErr: common.ErrDuplicateCategory,
		},
		{
			name:    "names are case-sensitive",
			catName: "food",
			setup: func(t *testing.T, s *SQLiteStore) {
				t.Helper()
				if _, err := s.CreateCategory(context.Background(), "Food"); err != nil {
					t.Fatalf("Setup failed: %v", err)
				}
			},
		},
		{
			name:    "blank name rejected",
			catName: "   ",
			wantErr: ErrEmptyString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStore(t)
			defer cleanup()
			ctx := context.Background()

			if tt.setup != nil {
				tt.setup(t, store)
			}

			before, err := store.ListCategories(ctx)
			if err != nil {
				t.Fatalf("Failed to list categories: %v", err)
			}

			cat, err := store.CreateCategory(ctx, tt.catName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				// Failed creation must not mutate state.
				after, listErr := store.ListCategories(ctx)
				if listErr != nil {
					t.Fatalf("Failed to list categories: %v", listErr)
				}
				if len(after) != len(before) {
					t.Errorf("Category count changed after failed create: %d -> %d", len(before), len(after))
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateCategory failed: %v", err)
			}
			if cat.ID == 0 {
				t.Error("Expected assigned category ID")
			}
			if cat.Name != tt.catName {
				t.Errorf("Expected name %q, got %q", tt.catName, cat.Name)
			}
		})
	}
}

func TestListCategoriesOrdering(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for _, name := range []string{"Transport", "Food", "Rent"} {
		if _, err := store.CreateCategory(ctx, name); err != nil {
			t.Fatalf("Failed to create category: %v", err)
		}
	}

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}

	want := []string{"Food", "Rent", "Transport"}
	if len(categories) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(categories))
	}
	for i, name := range want {
		if categories[i].Name != name {
			t.Errorf("Position %d: expected %q, got %q", i, name, categories[i].Name)
		}
	}
}

func TestResolveCategoryIdempotent(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first, err := store.ResolveCategory(ctx, "Food")
	if err != nil {
		t.Fatalf("First resolve failed: %v", err)
	}

	second, err := store.ResolveCategory(ctx, "Food")
	if err != nil {
		t.Fatalf("Second resolve failed: %v", err)
	}

	if first != second {
		t.Errorf("Expected same ID from both resolves, got %d and %d", first, second)
	}

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("Expected exactly one category row, got %d", len(categories))
	}
}

func TestDeleteCategory(t *testing.T) {
	tests := []struct {
		setup       func(*testing.T, *SQLiteStore)
		wantErr     error
		name        string
		catName     string
		wantInUse   int
		wantDeleted bool
	}{
		{
			name:    "unknown category",
			catName: "Ghost",
			wantErr: common.ErrCategoryNotFound,
		},
		{
			name:    "unused category deleted",
			catName: "Food",
			setup: func(t *testing.T, s *SQLiteStore) {
				t.Helper()
				if _, err := s.CreateCategory(context.Background(), "Food"); err != nil {
					t.Fatalf("Setup failed: %v", err)
				}
			},
			wantDeleted: true,
		},
		{
			name:    "referenced category refused with count",
			catName: "Food",
			setup: func(t *testing.T, s *SQLiteStore) {
				t.Helper()
				mustAddExpense(t, s, "2024-01-01", "Lunch", 12, "Food")
				mustAddExpense(t, s, "2024-01-02", "Dinner", 30, "Food")
			},
			wantErr:   common.ErrCategoryInUse,
			wantInUse: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStore(t)
			defer cleanup()
			ctx := context.Background()

			if tt.setup != nil {
				tt.setup(t, store)
			}

			err := store.DeleteCategory(ctx, tt.catName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				if tt.wantInUse > 0 {
					var inUse *common.CategoryInUseError
					if !errors.As(err, &inUse) {
						t.Fatalf("Expected CategoryInUseError, got %T", err)
					}
					if inUse.Count != tt.wantInUse {
						t.Errorf("Expected in-use count %d, got %d", tt.wantInUse, inUse.Count)
					}
					// The category and its expenses must remain intact.
					cat, getErr := store.GetCategoryByName(ctx, tt.catName)
					if getErr != nil || cat == nil {
						t.Errorf("Category missing after refused delete: %v", getErr)
					}
					count, countErr := store.CountExpensesByCategory(ctx, tt.catName)
					if countErr != nil {
						t.Fatalf("Failed to count expenses: %v", countErr)
					}
					if count != tt.wantInUse {
						t.Errorf("Expected %d expenses intact, got %d", tt.wantInUse, count)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("DeleteCategory failed: %v", err)
			}
			if tt.wantDeleted {
				cat, getErr := store.GetCategoryByName(ctx, tt.catName)
				if getErr != nil {
					t.Fatalf("Failed to look up category: %v", getErr)
				}
				if cat != nil {
					t.Errorf("Category %q still present after delete", tt.catName)
				}
			}
		})
	}
}
