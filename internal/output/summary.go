// internal/output/summary.go
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
)

// Summary describes one completed run for the plain-text report.
type Summary struct {
	Name              string
	Started           time.Time
	Duration          time.Duration
	SourcesTotal      int
	SourcesFailed     int
	DocumentsFetched  int
	DocumentsSkipped  int
	CandidatesFound   int
	DuplicatesSkipped int
	RecordsAccepted   int
	ColdStart         bool
}

// WriteSummary renders a human-readable run summary next to the reports.
func WriteSummary(path string, summary Summary, records []extract.Record) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Run: %s\n", summary.Name)
	fmt.Fprintf(&b, "Started: %s\n", summary.Started.Format(time.RFC3339))
	fmt.Fprintf(&b, "Duration: %s\n", summary.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "Sources: %d (%d failed)\n", summary.SourcesTotal, summary.SourcesFailed)
	fmt.Fprintf(&b, "Documents: %d fetched, %d already processed\n",
		summary.DocumentsFetched, summary.DocumentsSkipped)
	fmt.Fprintf(&b, "Candidates: %d found, %d duplicates skipped\n",
		summary.CandidatesFound, summary.DuplicatesSkipped)
	fmt.Fprintf(&b, "New coupons: %d\n", summary.RecordsAccepted)
	if summary.ColdStart {
		b.WriteString("Note: history was missing or unreadable, started cold\n")
	}

	if len(records) > 0 {
		byCategory := make(map[string]int)
		for _, r := range records {
			byCategory[r.Category]++
		}
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		b.WriteString("\nBy category:\n")
		for _, c := range categories {
			fmt.Fprintf(&b, "  %-12s %d\n", c, byCategory[c])
		}

		b.WriteString("\nNew codes:\n")
		for _, r := range records {
			fmt.Fprintf(&b, "  %-20s %-16s %s\n", r.Code, r.Brand, r.Title)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
