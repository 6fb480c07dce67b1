// internal/output/excel.go
package output

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
)

const sheetName = "Coupons"

// ExcelWriter appends records to an XLSX workbook, creating it with a
// header row on first use.
type ExcelWriter struct {
	path string
}

// NewExcelWriter builds an XLSX report writer for path.
func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path}
}

func (w *ExcelWriter) Name() string {
	return "xlsx"
}

func (w *ExcelWriter) Write(records []extract.Record) error {
	book, nextRow, err := w.open()
	if err != nil {
		return err
	}
	defer book.Close()

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, nextRow+i)
		if err != nil {
			return fmt.Errorf("computing cell: %w", err)
		}
		values := row(record)
		cells := make([]interface{}, len(values))
		for j, v := range values {
			cells[j] = v
		}
		if err := book.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := book.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// open loads the workbook or creates it with a header, returning the first
// free row.
func (w *ExcelWriter) open() (*excelize.File, int, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		book := excelize.NewFile()
		book.SetSheetName(book.GetSheetName(0), sheetName)

		header := make([]interface{}, len(columns))
		for i, c := range columns {
			header[i] = c
		}
		if err := book.SetSheetRow(sheetName, "A1", &header); err != nil {
			book.Close()
			return nil, 0, fmt.Errorf("writing header: %w", err)
		}
		return book, 2, nil
	}

	book, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening workbook: %w", err)
	}

	rows, err := book.GetRows(sheetName)
	if err != nil {
		book.Close()
		return nil, 0, fmt.Errorf("reading workbook: %w", err)
	}
	return book, len(rows) + 1, nil
}
