// internal/extract/synthesize.go
package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Raahul-01/Coupon-scrapper/internal/brands"
	"github.com/Raahul-01/Coupon-scrapper/internal/textproc"
)

// descriptionLimit bounds the cleaned description carried on a record.
const descriptionLimit = 200

// Record is one discovered coupon with all synthesized fields. Empty
// optional fields (percent, expiry) stay empty rather than guessing.
type Record struct {
	Title           string
	Code            string
	Brand           string
	DiscountPercent string
	ExpiryDate      string
	Description     string
	Category        string
	SourceID        string
	Channel         string
	Confidence      float64
	Method          string
}

// Synthesizer turns validated candidates into complete records using the
// brand catalog and the surrounding context window.
type Synthesizer struct {
	catalog *brands.Catalog
}

// NewSynthesizer builds a synthesizer over the given brand catalog.
func NewSynthesizer(catalog *brands.Catalog) *Synthesizer {
	return &Synthesizer{catalog: catalog}
}

// Synthesize fills in brand, category, percent, expiry, title, and
// description for one candidate. It never fails: a candidate with no
// recognizable brand still becomes a record with brand "unknown" and
// category "general".
func (s *Synthesizer) Synthesize(c Candidate, sourceID, channel, fullText string) Record {
	brand := s.resolveBrand(c)
	category := s.resolveCategory(brand, c.Context)
	percent := ExtractPercent(c.Context)
	expiry := ExtractExpiry(c.Context)

	description := textproc.Truncate(
		textproc.CollapseRepeats(textproc.Clean(fullText)), descriptionLimit)

	return Record{
		Title:           buildTitle(c.Code, brand, category, percent),
		Code:            c.Code,
		Brand:           brand,
		DiscountPercent: percent,
		ExpiryDate:      expiry,
		Description:     description,
		Category:        category,
		SourceID:        sourceID,
		Channel:         channel,
		Confidence:      c.Confidence,
		Method:          c.Method,
	}
}

// resolveBrand looks for a catalog brand in the context window first, then
// falls back to the loose "X coupon" / "code for X" / "x.com" patterns.
func (s *Synthesizer) resolveBrand(c Candidate) string {
	if name, ok := s.catalog.Match(c.Context); ok {
		return name
	}

	for _, re := range brandFallbackPatterns {
		for _, m := range re.FindAllStringSubmatch(c.Context, -1) {
			name := strings.TrimRight(m[1], ".-")
			if strings.EqualFold(name, c.Code) || !IsValidBrand(name) {
				continue
			}
			return s.catalog.Canonical(name)
		}
	}

	return brands.Unknown
}

// categoryKeywords score context text for a category when the brand itself
// is not in the reference table.
var categoryKeywords = map[string][]string{
	"electronics": {"electronics", "phone", "mobile", "laptop", "computer", "gadget", "tech"},
	"fashion":     {"fashion", "clothing", "clothes", "dress", "shirt", "shoes", "wear"},
	"food":        {"food", "restaurant", "pizza", "burger", "meal", "delivery", "dining"},
	"health":      {"health", "vitamin", "supplement", "protein", "fitness", "workout"},
	"beauty":      {"beauty", "cosmetics", "skincare", "makeup", "perfume", "grooming"},
	"home":        {"home", "furniture", "decor", "kitchen", "appliance", "household"},
	"hosting":     {"hosting", "domain", "website", "wordpress", "server", "vps"},
	"gaming":      {"gaming", "game", "console", "controller", "steam"},
	"travel":      {"travel", "flight", "hotel", "booking", "trip", "vacation"},
	"education":   {"course", "learning", "tutorial", "class", "certification"},
	"streaming":   {"streaming", "music", "movies", "series", "subscription"},
}

func (s *Synthesizer) resolveCategory(brand, context string) string {
	if s.catalog.Known(brand) {
		return s.catalog.Category(brand)
	}

	lower := strings.ToLower(context)
	best := brands.DefaultCategory
	bestScore := 0
	for _, category := range brands.Categories() {
		score := 0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = category
		}
	}
	return best
}

// ExtractPercent returns the first plausible discount percentage in text,
// formatted as "NN%", or "" when none is found. Values outside 5-90 are
// treated as noise.
func ExtractPercent(text string) string {
	for _, re := range percentPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if n >= 5 && n <= 90 {
				return fmt.Sprintf("%d%%", n)
			}
		}
	}
	return ""
}

// ExtractExpiry returns the first expiry date phrase in text, or "".
func ExtractExpiry(text string) string {
	for _, re := range expiryPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			date := strings.TrimSpace(m[1])
			if len(date) > 5 {
				return date
			}
		}
	}
	return ""
}

// buildTitle renders the report title: percent and brand when known,
// otherwise a generic discount line naming the code.
func buildTitle(code, brand, category, percent string) string {
	if percent != "" && brand != brands.Unknown {
		return fmt.Sprintf("%s OFF %s %s", percent, brand, titleCategory(category))
	}
	if brand != brands.Unknown {
		return fmt.Sprintf("%s Discount Code %s", brand, code)
	}
	return fmt.Sprintf("Discount Code %s", code)
}

func titleCategory(category string) string {
	if category == "" || category == brands.DefaultCategory {
		return "Deal"
	}
	return strings.ToUpper(category[:1]) + category[1:]
}
