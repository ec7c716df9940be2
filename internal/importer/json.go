// Package importer loads legacy expenses.json files into the store.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/Selinoztrk/cli-expense-tracker/internal/model"
	"github.com/Selinoztrk/cli-expense-tracker/internal/service"
)

// defaultCategory is assigned to records that carry no category, matching
// the legacy file format's fallback.
const defaultCategory = "Uncategorized"

// record mirrors one entry of the legacy expenses.json array.
type record struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
}

// Importer loads legacy JSON expense files into the store through the
// normal insertion path, so categories are resolved-or-created per record.
type Importer struct {
	store    service.Storage
	progress io.Writer
}

// New creates an Importer. Progress output goes to progress; pass nil to
// suppress the bar.
func New(store service.Storage, progress io.Writer) *Importer {
	return &Importer{store: store, progress: progress}
}

// ImportFile reads a legacy expenses.json file and inserts every
// well-formed record. Malformed records are skipped with a warning rather
// than aborting the run, matching the legacy loader's leniency.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	var bar *progressbar.ProgressBar
	if i.progress != nil {
		bar = progressbar.NewOptions(len(records),
			progressbar.OptionSetWriter(i.progress),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Importing expenses..."),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprintln(i.progress)
			}),
		)
	}

	result := &Result{}
	for idx, rec := range records {
		if bar != nil {
			_ = bar.Add(1)
		}

		category := rec.Category
		if category == "" {
			category = defaultCategory
		}

		_, err := i.store.AddExpense(ctx, model.Expense{
			Date:        rec.Date,
			Description: rec.Description,
			Amount:      rec.Amount,
			Category:    category,
		})
		if err != nil {
			slog.Warn("skipping malformed import record",
				"index", idx,
				"date", rec.Date,
				"error", err)
			result.Skipped++
			continue
		}
		result.Imported++
	}

	slog.Info("import finished",
		"file", path,
		"imported", result.Imported,
		"skipped", result.Skipped)
	return result, nil
}
