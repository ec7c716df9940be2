// Package model defines the core domain types for the expense ledger.
package model

import "time"

// DateLayout is the canonical expense date format. Lexicographic ordering
// of dates in this layout matches chronological ordering.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month prefix used for monthly aggregation.
const MonthLayout = "2006-01"

// Expense represents a single ledger entry. The Category field carries the
// resolved category name when the expense is read back joined with its
// category row.
type Expense struct {
	CreatedAt   time.Time
	Date        string
	Description string
	Category    string
	ID          int64
	CategoryID  int64
	Amount      float64
}

// Month returns the YYYY-MM prefix of the expense date.
func (e Expense) Month() string {
	if len(e.Date) < len("2006-01") {
		return e.Date
	}
	return e.Date[:len("2006-01")]
}

// MonthTotal is a summed amount for one calendar month.
type MonthTotal struct {
	Month string
	Total float64
}
