// internal/extract/extractor.go
package extract

import (
	"sort"
	"strings"
)

// contextRadius is the number of characters kept on each side of a matched
// code. Brand, percent, and expiry inference all read from this window.
const contextRadius = 100

// maxCandidates bounds how many candidates a single text can produce.
const maxCandidates = 10

// Candidate is a code-shaped span found in text, before validation and
// field synthesis.
type Candidate struct {
	Code       string
	Context    string
	Position   int
	Confidence float64
	Method     string
}

// FindCandidates runs the ordered pattern table over cleaned text and
// returns validated candidates, strongest first. The first pattern to claim
// a span wins: later patterns skip spans already taken, and the same code
// is only reported once at its highest confidence. At most maxCandidates
// are returned; an empty result is a normal outcome.
func FindCandidates(text string) []Candidate {
	if text == "" {
		return nil
	}

	type span struct{ start, end int }
	var claimed []span
	overlaps := func(start, end int) bool {
		for _, s := range claimed {
			if start < s.end && end > s.start {
				return true
			}
		}
		return false
	}

	byCode := make(map[string]Candidate)
	order := make([]string, 0, maxCandidates)

	for _, p := range codePatterns {
		for _, idx := range p.re.FindAllStringSubmatchIndex(text, -1) {
			// idx[2]:idx[3] is the capture group holding the code.
			start, end := idx[2], idx[3]
			if start < 0 || overlaps(start, end) {
				continue
			}

			code := strings.ToUpper(text[start:end])
			if !IsValidCode(code) {
				continue
			}
			claimed = append(claimed, span{start, end})

			if existing, ok := byCode[code]; ok {
				if p.confidence > existing.Confidence {
					existing.Confidence = p.confidence
					existing.Method = p.method
					byCode[code] = existing
				}
				continue
			}

			byCode[code] = Candidate{
				Code:       code,
				Context:    window(text, start, end),
				Position:   start,
				Confidence: p.confidence,
				Method:     p.method,
			}
			order = append(order, code)
		}
	}

	candidates := make([]Candidate, 0, len(order))
	for _, code := range order {
		candidates = append(candidates, byCode[code])
	}

	// Strongest first; ties keep text order so results are deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].Position < candidates[j].Position
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

func window(text string, start, end int) string {
	lo := start - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + contextRadius
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
