// internal/output/output.go

// Package output writes discovered coupons to report files. CSV is the
// canonical append-only report; JSON and XLSX rewrite a full snapshot.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
)

// Report column order, shared by every format.
var columns = []string{
	"Coupon Title",
	"Coupon Code",
	"Brand",
	"Discount Percent",
	"Expiry Date",
	"Description",
	"Category",
	"Source",
}

// row flattens a record into the report column order. The source column
// prefers the channel name and falls back to the document identity.
func row(r extract.Record) []string {
	source := r.Channel
	if source == "" {
		source = r.SourceID
	}
	return []string{
		r.Title,
		r.Code,
		r.Brand,
		r.DiscountPercent,
		r.ExpiryDate,
		r.Description,
		r.Category,
		source,
	}
}

// Writer appends a batch of records to one report format.
type Writer interface {
	// Name identifies the format in logs.
	Name() string

	// Write appends records to the report.
	Write(records []extract.Record) error
}

// Manager fans one batch out to every configured format. Report write
// failures are fatal to the run, so errors propagate instead of being
// logged and dropped.
type Manager struct {
	writers []Writer
}

// NewManager creates writers for the requested formats in directory.
func NewManager(formats []string, directory string) (*Manager, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	m := &Manager{}
	for _, format := range formats {
		switch format {
		case "csv":
			m.writers = append(m.writers, NewCSVWriter(filepath.Join(directory, "coupons.csv")))
		case "json":
			m.writers = append(m.writers, NewJSONWriter(filepath.Join(directory, "coupons.json")))
		case "xlsx":
			m.writers = append(m.writers, NewExcelWriter(filepath.Join(directory, "coupons.xlsx")))
		default:
			return nil, fmt.Errorf("unsupported output format: %s", format)
		}
	}
	return m, nil
}

// Write appends the batch to every format. The first failure aborts.
func (m *Manager) Write(records []extract.Record) error {
	if len(records) == 0 {
		return nil
	}
	for _, w := range m.writers {
		if err := w.Write(records); err != nil {
			return fmt.Errorf("%s output: %w", w.Name(), err)
		}
	}
	return nil
}
