// internal/textproc/normalize.go
package textproc

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	bangPattern       = regexp.MustCompile(`!{2,}`)
	queryPattern      = regexp.MustCompile(`\?{2,}`)

	// Everything outside this set (emoji, decorative symbols) becomes a
	// space. Slashes and apostrophes stay so dates and brand names survive.
	noisePattern = regexp.MustCompile(`[^\w\s\-.,:;!?%$@&()/'\[\]]`)

	sentenceSplit = regexp.MustCompile(`[.!?\n]+`)
)

// Clean strips URLs and symbol noise from raw description or page text and
// collapses runs of punctuation and whitespace. It is total: any input
// yields a (possibly empty) string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = urlPattern.ReplaceAllString(text, " ")
	text = bangPattern.ReplaceAllString(text, "!")
	text = queryPattern.ReplaceAllString(text, "?")
	text = noisePattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// CollapseRepeats drops consecutive sentences that repeat each other,
// which handles descriptions that paste the same call-to-action several
// times in a row. Comparison ignores case and surrounding whitespace.
func CollapseRepeats(text string) string {
	if text == "" {
		return ""
	}

	sentences := sentenceSplit.Split(text, -1)
	kept := make([]string, 0, len(sentences))
	previous := ""

	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(whitespacePattern.ReplaceAllString(trimmed, " "))
		if key == previous {
			continue
		}
		previous = key
		kept = append(kept, trimmed)
	}

	return strings.Join(kept, ". ")
}

// Truncate bounds a string to at most limit runes, appending an ellipsis
// marker when it was cut.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
