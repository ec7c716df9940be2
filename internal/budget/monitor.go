// Package budget evaluates the monthly spending limit after insertions.
package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
	"github.com/Selinoztrk/cli-expense-tracker/internal/service"
)

// Warning is emitted when the current month's spend exceeds the configured
// limit.
type Warning struct {
	Month      string
	MonthTotal float64
	Limit      float64
}

// Monitor checks the current calendar month's expense total against a
// configured limit. The limit lives for the process lifetime only and is
// never persisted. The zero limit state means no check is performed.
type Monitor struct {
	store service.Storage
	now   func() time.Time
	limit float64
	set   bool
}

// NewMonitor creates a monitor reading month totals from the given store.
func NewMonitor(store service.Storage) *Monitor {
	return &Monitor{store: store, now: time.Now}
}

// WithClock replaces the monitor's clock. Used by tests to pin the current
// month.
func (m *Monitor) WithClock(now func() time.Time) *Monitor {
	m.now = now
	return m
}

// SetLimit replaces any previously configured limit for the remainder of
// the session.
func (m *Monitor) SetLimit(amount float64) {
	m.limit = amount
	m.set = true
}

// Limit returns the configured limit and whether one is set.
func (m *Monitor) Limit() (float64, bool) {
	return m.limit, m.set
}

// CheckAfterInsert evaluates the budget rule after an expense insertion. It
// is a no-op when no limit is configured. The current month is derived from
// the monitor's clock at evaluation time, never from the inserted expense's
// own date: a back-dated entry still counts if its YYYY-MM prefix matches
// today's. The warning fires on every qualifying insertion, with no
// hysteresis.
func (m *Monitor) CheckAfterInsert(ctx context.Context) (*Warning, error) {
	if !m.set {
		return nil, nil
	}

	month := m.now().Format(model.MonthLayout)
	total, err := m.store.MonthTotal(ctx, month)
	if err != nil {
		return nil, err
	}

	if !Evaluate(m.limit, total) {
		return nil, nil
	}

	slog.Warn("monthly budget exceeded",
		"month", month,
		"total", total,
		"limit", m.limit)
	return &Warning{Month: month, MonthTotal: total, Limit: m.limit}, nil
}

// Evaluate reports whether a month total strictly exceeds the limit. Kept
// as a pure function of its inputs so the rule is testable without storage.
func Evaluate(limit, monthTotal float64) bool {
	return monthTotal > limit
}
