// Package export writes the ledger to CSV.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Selinoztrk/cli-expense-tracker/internal/common"
	"github.com/Selinoztrk/cli-expense-tracker/internal/service"
)

// csvHeader is the fixed export header.
var csvHeader = []string{"ID", "Date", "Description", "Amount", "Category"}

// Exporter writes the full, unfiltered expense listing to CSV in the same
// order as ListExpenses.
type Exporter struct {
	store  service.Storage
	logger *slog.Logger
}

// NewExporter creates a CSV exporter over the given store.
func NewExporter(store service.Storage, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{store: store, logger: logger}
}

// WriteFile exports all expenses to the file at path, creating or
// truncating it. Failures wrap ErrExportFailed and leave no partial promise
// about the file contents.
func (e *Exporter) WriteFile(ctx context.Context, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", common.ErrExportFailed, path, err)
	}

	if err := e.Write(ctx, file); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", common.ErrExportFailed, path, err)
	}

	e.logger.Info("exported expenses to csv", "file", path)
	return nil
}

// Write exports all expenses to w. Amounts are formatted with exactly two
// fraction digits.
func (e *Exporter) Write(ctx context.Context, w io.Writer) error {
	expenses, err := e.store.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("%w: listing expenses: %w", common.ErrExportFailed, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: writing header: %w", common.ErrExportFailed, err)
	}

	for _, exp := range expenses {
		record := []string{
			strconv.FormatInt(exp.ID, 10),
			exp.Date,
			exp.Description,
			FormatAmount(exp.Amount),
			exp.Category,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: writing record: %w", common.ErrExportFailed, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flushing csv: %w", common.ErrExportFailed, err)
	}

	e.logger.Debug("wrote expenses to csv", "count", len(expenses))
	return nil
}

// FormatAmount renders a currency amount with two fraction digits.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
