// internal/extract/patterns.go
package extract

import "regexp"

// Extraction method labels, recorded on each candidate so downstream
// consumers can weigh explicit mentions above loose token matches.
const (
	MethodExplicit   = "explicit"
	MethodContextual = "contextual"
	MethodStandalone = "standalone"
)

// codePattern pairs a compiled expression with the confidence assigned to
// codes it captures. Patterns run in declaration order and the first pattern
// to claim a span wins, so explicit "use code X" forms always outrank the
// loose standalone token shapes.
type codePattern struct {
	re         *regexp.Regexp
	confidence float64
	method     string
}

// Directive words are matched case-insensitively but the captured code is
// not: real codes are shouted in upper case and lowering the bar here floods
// the results with ordinary words.
var codePatterns = []codePattern{
	// Explicit call-to-action forms: "use code SAVE50", "promo code: X20".
	{
		re:         regexp.MustCompile(`(?i:use|apply|enter)\s+(?i:code|coupon|promo)\s*:?\s*([A-Z0-9][A-Z0-9_-]{2,19})`),
		confidence: 0.9,
		method:     MethodExplicit,
	},
	{
		re:         regexp.MustCompile(`(?i:coupon|promo|discount|offer)\s+(?i:code)\s*:?\s*([A-Z0-9][A-Z0-9_-]{2,19})`),
		confidence: 0.9,
		method:     MethodExplicit,
	},
	{
		re:         regexp.MustCompile(`(?i:checkout|payment)\s+(?i:with\s+)?(?i:code)\s*:?\s*([A-Z0-9][A-Z0-9_-]{2,19})`),
		confidence: 0.9,
		method:     MethodExplicit,
	},

	// Contextual forms: a promo word somewhere before a code-shaped token
	// in the same sentence.
	{
		re:         regexp.MustCompile(`(?i:coupon|promo|discount)[^.!?\n]{0,60}?\b([A-Z]{2,6}\d{2,8})\b`),
		confidence: 0.7,
		method:     MethodContextual,
	},
	{
		re:         regexp.MustCompile(`(?i:code|offer)[^.!?\n]{0,60}?\b(\d{2,4}[A-Z]{2,6})\b`),
		confidence: 0.7,
		method:     MethodContextual,
	},

	// Standalone code-shaped tokens with no surrounding directive. Low
	// confidence: validation filters most of the noise these produce.
	{
		re:         regexp.MustCompile(`\b([A-Z]{2,10}\d{2,6})\b`),
		confidence: 0.5,
		method:     MethodStandalone,
	},
	{
		re:         regexp.MustCompile(`\b(\d{2,4}[A-Z]{2,8})\b`),
		confidence: 0.5,
		method:     MethodStandalone,
	},
}

var percentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2})%\s*(?:off|discount|save)`),
	regexp.MustCompile(`(?i)(?:save|get|enjoy|flat)\s+(\d{1,2})%`),
	regexp.MustCompile(`(?i)(?:up\s+to\s+)?(\d{1,2})%\s*(?:discount|off)`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*percent\s*off`),
}

var expiryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:expires?|valid|until|till|ends?)\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)(?:expires?|valid|until|till|ends?)\s*:?\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2},?\s*\d{2,4})`),
}

// Fallback brand patterns, used only when no catalog brand appears in the
// context window: "Nike coupon", "code for Nike", "nike.com".
var brandFallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([A-Z][A-Za-z'&.-]{2,24})\s+(?i:coupon|promo|discount|code|offer)`),
	regexp.MustCompile(`(?i:code|coupon|discount)\s+(?i:for|at|on)\s+([A-Z][A-Za-z'&.-]{2,24})\b`),
	regexp.MustCompile(`\b([A-Za-z][A-Za-z-]{2,24})\.(?i:com|in|io|co)\b`),
}
