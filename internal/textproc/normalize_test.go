// internal/textproc/normalize_test.go
package textproc

import (
	"strings"
	"testing"
)

func TestCleanStripsURLs(t *testing.T) {
	input := "Use code SAVE50 here https://example.com/deal?ref=yt now"
	result := Clean(input)

	if strings.Contains(result, "http") {
		t.Errorf("URL should be removed, got %q", result)
	}
	if !strings.Contains(result, "SAVE50") {
		t.Errorf("code should survive cleaning, got %q", result)
	}
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	result := Clean("too   much\t\twhitespace\n\nhere")
	if result != "too much whitespace here" {
		t.Errorf("unexpected result %q", result)
	}
}

func TestCleanRemovesEmoji(t *testing.T) {
	result := Clean("🔥🔥 50% off 🔥🔥 at Nike")
	if result != "50% off at Nike" {
		t.Errorf("unexpected result %q", result)
	}
}

func TestCleanCollapsesPunctuationRuns(t *testing.T) {
	result := Clean("AMAZING!!!! Really???")
	if result != "AMAZING! Really?" {
		t.Errorf("unexpected result %q", result)
	}
}

func TestCleanKeepsDatesAndPercents(t *testing.T) {
	result := Clean("valid till 12/31/2025, save 20%")
	if !strings.Contains(result, "12/31/2025") || !strings.Contains(result, "20%") {
		t.Errorf("dates and percents must survive, got %q", result)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if got := Clean(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestCollapseRepeats(t *testing.T) {
	input := "Subscribe to my channel. Subscribe to my channel. Use code SAVE20."
	result := CollapseRepeats(input)

	if strings.Count(result, "Subscribe to my channel") != 1 {
		t.Errorf("repeated sentence should collapse, got %q", result)
	}
	if !strings.Contains(result, "SAVE20") {
		t.Errorf("distinct sentence should survive, got %q", result)
	}
}

func TestCollapseRepeatsIgnoresCase(t *testing.T) {
	input := "LIKE AND SHARE! like and share! Code HOST25 inside."
	result := CollapseRepeats(input)

	if strings.Count(strings.ToLower(result), "like and share") != 1 {
		t.Errorf("case-insensitive repeats should collapse, got %q", result)
	}
}

func TestCollapseRepeatsKeepsNonConsecutive(t *testing.T) {
	input := "Big sale today. Use code NOW. Big sale today."
	result := CollapseRepeats(input)

	if strings.Count(result, "Big sale today") != 2 {
		t.Errorf("non-consecutive repeats are kept, got %q", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"short enough", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 5, "abcde..."},
		{"zero limit", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}
