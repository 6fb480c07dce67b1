// internal/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
)

type jsonRecord struct {
	Title           string `json:"title"`
	Code            string `json:"code"`
	Brand           string `json:"brand"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category"`
	Source          string `json:"source"`
}

// JSONWriter maintains a JSON array report. Each batch is merged into the
// existing array and the whole file rewritten, keeping the output valid
// JSON after every run.
type JSONWriter struct {
	path string
}

// NewJSONWriter builds a JSON report writer for path.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

func (w *JSONWriter) Name() string {
	return "json"
}

func (w *JSONWriter) Write(records []extract.Record) error {
	var existing []jsonRecord

	data, err := os.ReadFile(w.path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("reading report: %w", err)
	default:
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parsing existing report: %w", err)
		}
	}

	for _, r := range records {
		source := r.Channel
		if source == "" {
			source = r.SourceID
		}
		existing = append(existing, jsonRecord{
			Title:           r.Title,
			Code:            r.Code,
			Brand:           r.Brand,
			DiscountPercent: r.DiscountPercent,
			ExpiryDate:      r.ExpiryDate,
			Description:     r.Description,
			Category:        r.Category,
			Source:          source,
		})
	}

	out, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(w.path, out, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
