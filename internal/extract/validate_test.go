// internal/extract/validate_test.go
package extract

import "testing"

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"SAVE50", true},
		{"SAVE20", true},
		{"NIKE20", true},
		{"FREESHIP", true},
		{"HOST25-X", true},
		{"WELCOME_10", true},

		{"AB", false},           // too short
		{"AAAA", false},         // degenerate repetition
		{"save50", false},       // lowercase charset
		{"SAVE 50", false},      // whitespace
		{"2024", false},         // bare year
		{"2025", false},         // bare year
		{"XYZ", false},          // short letter fragment
		{"SUBSCRIBEBTN", false}, // long all-letter word
		{"SUBSCRIBE", false},    // stopword
		{"YOUTUBE", false},      // stopword
		{"50OFF", false},        // discount fragment
		{"25PERCENT", false},    // discount fragment
		{"31ST", false},         // date ordinal
		{"DEC25", false},        // month abbreviation
		{"THISCODEISWAYTOOLONGTOBE", false},
	}

	for _, tt := range tests {
		if got := IsValidCode(tt.code); got != tt.valid {
			t.Errorf("IsValidCode(%q) = %v, expected %v", tt.code, got, tt.valid)
		}
	}
}

func TestIsValidBrand(t *testing.T) {
	tests := []struct {
		brand string
		valid bool
	}{
		{"Nike", true},
		{"Hostinger", true},
		{"L'Oreal", true},
		{"Discount", false},
		{"Website", false},
		{"The", false},
		{"ab", false},
	}

	for _, tt := range tests {
		if got := IsValidBrand(tt.brand); got != tt.valid {
			t.Errorf("IsValidBrand(%q) = %v, expected %v", tt.brand, got, tt.valid)
		}
	}
}
