// internal/extract/synthesize_test.go
package extract

import (
	"strings"
	"testing"

	"github.com/Raahul-01/Coupon-scrapper/internal/brands"
)

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizer(brands.Default())
}

func TestSynthesizeFullRecord(t *testing.T) {
	text := "Use code SAVE50 for 50% off at Nike"
	candidates := FindCandidates(text)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	record := newTestSynthesizer().Synthesize(candidates[0], "vid123", "DealHunter", text)

	if record.Code != "SAVE50" {
		t.Errorf("code = %q, expected SAVE50", record.Code)
	}
	if record.DiscountPercent != "50%" {
		t.Errorf("percent = %q, expected 50%%", record.DiscountPercent)
	}
	if record.Brand != "Nike" {
		t.Errorf("brand = %q, expected Nike", record.Brand)
	}
	if record.Category != "fashion" {
		t.Errorf("category = %q, expected fashion", record.Category)
	}
	if record.Title != "50% OFF Nike Fashion" {
		t.Errorf("title = %q", record.Title)
	}
	if record.SourceID != "vid123" || record.Channel != "DealHunter" {
		t.Errorf("source metadata lost: %+v", record)
	}
}

func TestSynthesizeUnknownBrandStillAccepted(t *testing.T) {
	text := "SAVE20 works right now"
	candidates := FindCandidates(text)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	record := newTestSynthesizer().Synthesize(candidates[0], "vid456", "", text)

	if record.Brand != brands.Unknown {
		t.Errorf("brand = %q, expected %q", record.Brand, brands.Unknown)
	}
	if record.Category != brands.DefaultCategory {
		t.Errorf("category = %q, expected %q", record.Category, brands.DefaultCategory)
	}
	if record.Title != "Discount Code SAVE20" {
		t.Errorf("title = %q", record.Title)
	}
}

func TestSynthesizeBrandFallbackPattern(t *testing.T) {
	// Brand not in the catalog, but "X coupon" names it in context.
	text := "Fresh Acmecorp coupon: use code ACME77 at checkout"
	candidates := FindCandidates(text)
	if len(candidates) == 0 {
		t.Fatal("expected a candidate")
	}

	record := newTestSynthesizer().Synthesize(candidates[0], "vid789", "", text)
	if record.Brand != "Acmecorp" {
		t.Errorf("brand = %q, expected Acmecorp", record.Brand)
	}
}

func TestSynthesizeExpiry(t *testing.T) {
	text := "Use code TRIP40X for hotels, valid till 12/31/2026"
	candidates := FindCandidates(text)
	if len(candidates) == 0 {
		t.Fatal("expected a candidate")
	}

	record := newTestSynthesizer().Synthesize(candidates[0], "vid1", "", text)
	if record.ExpiryDate != "12/31/2026" {
		t.Errorf("expiry = %q, expected 12/31/2026", record.ExpiryDate)
	}
}

func TestSynthesizeDescriptionTruncated(t *testing.T) {
	text := "Use code LONGTEXT5 now. " + strings.Repeat("This channel reviews deals. ", 30)
	candidates := FindCandidates(text)
	if len(candidates) == 0 {
		t.Fatal("expected a candidate")
	}

	record := newTestSynthesizer().Synthesize(candidates[0], "vid2", "", text)
	if len([]rune(record.Description)) > descriptionLimit+3 {
		t.Errorf("description too long: %d runes", len([]rune(record.Description)))
	}
}

func TestExtractPercent(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"get 50% off today", "50%"},
		{"save 20%", "20%"},
		{"flat 30% on everything", "30%"},
		{"25 percent off", "25%"},
		{"95% off scam", ""}, // outside plausible range
		{"3% off", ""},       // outside plausible range
		{"no discount here", ""},
	}

	for _, tt := range tests {
		if got := ExtractPercent(tt.text); got != tt.want {
			t.Errorf("ExtractPercent(%q) = %q, expected %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractExpiry(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"expires 12/31/2026", "12/31/2026"},
		{"valid until jan 15, 2027", "jan 15, 2027"},
		{"no dates here", ""},
	}

	for _, tt := range tests {
		if got := ExtractExpiry(tt.text); got != tt.want {
			t.Errorf("ExtractExpiry(%q) = %q, expected %q", tt.text, got, tt.want)
		}
	}
}
