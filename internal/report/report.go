// Package report shapes ledger aggregates for presentation. The category
// breakdown feeds the pie-chart view and the monthly series feeds the
// bar-chart view; both are computed here once so every front end renders
// the same numbers.
package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Selinoztrk/cli-expense-tracker/internal/service"
)

// CategoryRow is one slice of the category breakdown.
type CategoryRow struct {
	Category string
	Total    decimal.Decimal
	Share    decimal.Decimal // percentage of the grand total
}

// MonthRow is one bar of the monthly series.
type MonthRow struct {
	Month string
	Total decimal.Decimal
}

// CategoryBreakdown returns one row per category with at least one expense,
// ordered by total descending then name, with each row's share of the
// grand total as a percentage.
func CategoryBreakdown(ctx context.Context, store service.Storage) ([]CategoryRow, error) {
	totals, err := store.TotalsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	grand := decimal.Zero
	rows := make([]CategoryRow, 0, len(totals))
	for name, total := range totals {
		d := decimal.NewFromFloat(total)
		grand = grand.Add(d)
		rows = append(rows, CategoryRow{Category: name, Total: d})
	}

	for i := range rows {
		if !grand.IsZero() {
			rows[i].Share = rows[i].Total.Div(grand).Mul(decimal.NewFromInt(100)).Round(1)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Category < rows[j].Category
	})

	return rows, nil
}

// MonthlySeries returns the per-month totals ordered by month ascending.
func MonthlySeries(ctx context.Context, store service.Storage) ([]MonthRow, error) {
	totals, err := store.TotalsByMonth(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]MonthRow, 0, len(totals))
	for _, mt := range totals {
		rows = append(rows, MonthRow{
			Month: mt.Month,
			Total: decimal.NewFromFloat(mt.Total),
		})
	}
	return rows, nil
}
