// internal/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
)

// CSVWriter appends records to one CSV file across runs. The header is
// written only when the file is new or empty, so repeated runs keep
// extending the same report.
type CSVWriter struct {
	path string
}

// NewCSVWriter builds a CSV report writer for path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

func (w *CSVWriter) Name() string {
	return "csv"
}

func (w *CSVWriter) Write(records []extract.Record) error {
	needHeader, err := fileMissingOrEmpty(w.path)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if needHeader {
		if err := cw.Write(columns); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for _, record := range records {
		if err := cw.Write(row(record)); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return file.Sync()
}

func fileMissingOrEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking report: %w", err)
	}
	return info.Size() == 0, nil
}
