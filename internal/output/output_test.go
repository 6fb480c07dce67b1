// internal/output/output_test.go
package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
)

func sampleRecords() []extract.Record {
	return []extract.Record{
		{
			Title:           "50% OFF Nike Fashion",
			Code:            "SAVE50",
			Brand:           "Nike",
			DiscountPercent: "50%",
			Description:     "Use code SAVE50 at Nike",
			Category:        "fashion",
			SourceID:        "vid1",
			Channel:         "DealHunter",
		},
		{
			Title:    "Discount Code SAVE20",
			Code:     "SAVE20",
			Brand:    "unknown",
			Category: "general",
			SourceID: "vid2",
		},
	}
}

func TestCSVWriterHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coupons.csv")
	w := NewCSVWriter(path)

	if err := w.Write(sampleRecords()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := w.Write(sampleRecords()[:1]); err != nil {
		t.Fatalf("second write: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	// 1 header + 2 + 1 data rows.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Coupon Title" || rows[0][7] != "Source" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "SAVE50" || rows[1][7] != "DealHunter" {
		t.Errorf("row = %v", rows[1])
	}
	// Channel-less record falls back to the source id.
	if rows[2][7] != "vid2" {
		t.Errorf("source fallback = %v", rows[2])
	}
}

func TestJSONWriterMergesAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coupons.json")
	w := NewJSONWriter(path)

	if err := w.Write(sampleRecords()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := w.Write(sampleRecords()[:1]); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("report must stay valid JSON: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("expected 3 merged records, got %d", len(out))
	}
	if out[0]["code"] != "SAVE50" {
		t.Errorf("first record = %v", out[0])
	}
}

func TestManagerDispatch(t *testing.T) {
	dir := t.TempDir()

	m, err := NewManager([]string{"csv", "json"}, dir)
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	if err := m.Write(sampleRecords()); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, name := range []string{"coupons.csv", "coupons.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing report %s: %v", name, err)
		}
	}
}

func TestManagerRejectsUnknownFormat(t *testing.T) {
	if _, err := NewManager([]string{"pdf"}, t.TempDir()); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestManagerEmptyBatchIsNoop(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager([]string{"csv"}, dir)
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	if err := m.Write(nil); err != nil {
		t.Fatalf("empty write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "coupons.csv")); !os.IsNotExist(err) {
		t.Error("empty batch should not create a report")
	}
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")

	summary := Summary{
		Name:             "test-run",
		Started:          time.Now(),
		Duration:         3 * time.Second,
		SourcesTotal:     2,
		SourcesFailed:    1,
		DocumentsFetched: 5,
		RecordsAccepted:  2,
	}
	if err := WriteSummary(path, summary, sampleRecords()); err != nil {
		t.Fatalf("summary: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"test-run", "SAVE50", "fashion", "2 (1 failed)"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "started cold") {
		t.Error("summary should not mention a cold start for a warm run")
	}
}

func TestWriteSummaryColdStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")

	summary := Summary{Name: "test-run", Started: time.Now(), ColdStart: true}
	if err := WriteSummary(path, summary, nil); err != nil {
		t.Fatalf("summary: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "started cold") {
		t.Errorf("summary should note the cold start:\n%s", data)
	}
}
