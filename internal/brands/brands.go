// internal/brands/brands.go
package brands

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unknown is the brand recorded when no known brand appears near a code and
// no fallback pattern produces a plausible name.
const Unknown = "unknown"

// DefaultCategory is used when neither the brand table nor the context
// keywords determine a category.
const DefaultCategory = "general"

var titleCaser = cases.Title(language.English)

// Catalog is the read-only brand reference table: canonical display names,
// their categories, and precompiled word-boundary matchers.
type Catalog struct {
	byBrand  map[string]string // lowercased brand -> category
	display  map[string]string // lowercased brand -> canonical display name
	names    []string          // display names, longest first
	matchers []*regexp.Regexp  // parallel to names
}

// Default builds a catalog from the builtin brand table.
func Default() *Catalog {
	c := &Catalog{
		byBrand: make(map[string]string),
		display: make(map[string]string),
	}

	for category, names := range builtin {
		for _, name := range names {
			key := strings.ToLower(name)
			if _, exists := c.byBrand[key]; exists {
				continue
			}
			c.byBrand[key] = category
			c.display[key] = name
			c.names = append(c.names, name)
		}
	}

	// Longer names first so "Pizza Hut" beats "Pizza" style prefixes, and
	// alphabetical within a length for deterministic matching.
	sort.Slice(c.names, func(i, j int) bool {
		if len(c.names[i]) != len(c.names[j]) {
			return len(c.names[i]) > len(c.names[j])
		}
		return c.names[i] < c.names[j]
	})

	c.matchers = make([]*regexp.Regexp, len(c.names))
	for i, name := range c.names {
		c.matchers[i] = regexp.MustCompile(brandPattern(name))
	}

	return c
}

// brandPattern builds a case-insensitive word-bounded pattern for a brand
// name. \b only works against word characters, so names ending in "+" or
// similar get an explicit right-edge class instead.
func brandPattern(name string) string {
	pattern := `(?i)`
	if isWordByte(name[0]) {
		pattern += `\b`
	}
	pattern += regexp.QuoteMeta(name)
	if isWordByte(name[len(name)-1]) {
		pattern += `\b`
	}
	return pattern
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Size returns the number of brands in the catalog.
func (c *Catalog) Size() int {
	return len(c.names)
}

// Category returns the category for a brand name, or DefaultCategory when
// the brand is not in the table.
func (c *Catalog) Category(brand string) string {
	if category, ok := c.byBrand[strings.ToLower(brand)]; ok {
		return category
	}
	return DefaultCategory
}

// Known reports whether the brand is in the reference table.
func (c *Catalog) Known(brand string) bool {
	_, ok := c.byBrand[strings.ToLower(brand)]
	return ok
}

// Match scans text for any known brand and returns the canonical display
// name of the earliest match. Longer brand names take precedence over
// shorter ones at the same position.
func (c *Catalog) Match(text string) (string, bool) {
	best := -1
	found := ""

	for i, re := range c.matchers {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if best == -1 || loc[0] < best {
			best = loc[0]
			found = c.names[i]
		}
	}

	if best == -1 {
		return "", false
	}
	return found, true
}

// Display returns the canonical display form of a brand: the table spelling
// for known brands, title case otherwise.
func Display(brand string) string {
	if brand == "" {
		return Unknown
	}
	return titleCaser.String(strings.ToLower(brand))
}

// Canonical resolves a raw brand mention against the catalog, returning the
// table spelling when known and a title-cased form otherwise.
func (c *Catalog) Canonical(brand string) string {
	if name, ok := c.display[strings.ToLower(brand)]; ok {
		return name
	}
	return Display(brand)
}
