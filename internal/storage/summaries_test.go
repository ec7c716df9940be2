package storage

import (
	"context"
	"math"
	"testing"
)

const amountTolerance = 1e-9

func TestTotalExpenses(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	total, err := store.TotalExpenses(ctx)
	if err != nil {
		t.Fatalf("TotalExpenses failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected zero total for empty ledger, got %v", total)
	}

	amounts := []float64{12.34, 56.78, -10, 0.01}
	var want float64
	for _, amount := range amounts {
		mustAddExpense(t, store, "2024-01-01", "Entry", amount, "Misc")
		want += amount
	}

	total, err = store.TotalExpenses(ctx)
	if err != nil {
		t.Fatalf("TotalExpenses failed: %v", err)
	}
	if math.Abs(total-want) > amountTolerance {
		t.Errorf("Expected total %v, got %v", want, total)
	}
}

func TestTotalsByCategorySumToTotal(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	mustAddExpense(t, store, "2024-01-01", "Groceries", 42.50, "Food")
	mustAddExpense(t, store, "2024-01-02", "Lunch", 12.25, "Food")
	mustAddExpense(t, store, "2024-01-03", "Train", 30, "Transport")

	totals, err := store.TotalsByCategory(ctx)
	if err != nil {
		t.Fatalf("TotalsByCategory failed: %v", err)
	}

	if len(totals) != 2 {
		t.Fatalf("Expected 2 categories with expenses, got %d", len(totals))
	}
	if math.Abs(totals["Food"]-54.75) > amountTolerance {
		t.Errorf("Expected Food total 54.75, got %v", totals["Food"])
	}

	var sum float64
	for _, total := range totals {
		sum += total
	}

	grand, err := store.TotalExpenses(ctx)
	if err != nil {
		t.Fatalf("TotalExpenses failed: %v", err)
	}
	if math.Abs(sum-grand) > amountTolerance {
		t.Errorf("Category totals sum %v != grand total %v", sum, grand)
	}
}

func TestTotalsByCategoryExcludesUnusedCategories(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.CreateCategory(ctx, "Empty"); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}
	mustAddExpense(t, store, "2024-01-01", "Lunch", 12, "Food")

	totals, err := store.TotalsByCategory(ctx)
	if err != nil {
		t.Fatalf("TotalsByCategory failed: %v", err)
	}
	if _, ok := totals["Empty"]; ok {
		t.Error("Expected no entry for a category without expenses")
	}
}

func TestTotalsByMonth(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	mustAddExpense(t, store, "2024-03-01", "March first", 100, "Misc")
	mustAddExpense(t, store, "2024-03-15", "March second", 50, "Misc")
	mustAddExpense(t, store, "2024-01-10", "January", 25, "Misc")

	totals, err := store.TotalsByMonth(ctx)
	if err != nil {
		t.Fatalf("TotalsByMonth failed: %v", err)
	}

	if len(totals) != 2 {
		t.Fatalf("Expected 2 months, got %d", len(totals))
	}
	if totals[0].Month != "2024-01" || totals[1].Month != "2024-03" {
		t.Errorf("Expected months ordered ascending, got %q then %q", totals[0].Month, totals[1].Month)
	}
	if math.Abs(totals[1].Total-150) > amountTolerance {
		t.Errorf("Expected March total 150, got %v", totals[1].Total)
	}
}

func TestMonthTotal(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	mustAddExpense(t, store, "2024-03-01", "In month", 100, "Misc")
	mustAddExpense(t, store, "2024-03-31", "Also in month", 50, "Misc")
	mustAddExpense(t, store, "2024-04-01", "Next month", 999, "Misc")

	total, err := store.MonthTotal(ctx, "2024-03")
	if err != nil {
		t.Fatalf("MonthTotal failed: %v", err)
	}
	if math.Abs(total-150) > amountTolerance {
		t.Errorf("Expected month total 150, got %v", total)
	}

	empty, err := store.MonthTotal(ctx, "2020-01")
	if err != nil {
		t.Fatalf("MonthTotal failed: %v", err)
	}
	if empty != 0 {
		t.Errorf("Expected zero total for empty month, got %v", empty)
	}
}
