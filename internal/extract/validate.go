// internal/extract/validate.go
package extract

import (
	"regexp"
	"strings"
)

const (
	minCodeLength = 3
	maxCodeLength = 20
)

var codeCharset = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// stopwords are upper-case tokens that match the code patterns but never
// name a coupon: social-media calls to action, status labels, weekday and
// month names, and the promo vocabulary itself.
var stopwords = map[string]struct{}{
	"SUBSCRIBE": {}, "COMMENT": {}, "LIKE": {}, "SHARE": {}, "FOLLOW": {},
	"BELL": {}, "NOTIFICATION": {},
	"WORKING": {}, "VERIFIED": {}, "TESTED": {}, "ACTIVE": {}, "VALID": {},
	"EXPIRED": {}, "NEW": {}, "LATEST": {},
	"MAXIMUM": {}, "MINIMUM": {}, "BONUS": {}, "EXTRA": {}, "SPECIAL": {},
	"LIMITED": {}, "EXCLUSIVE": {},
	"UPDATE": {}, "CODES": {}, "CODE": {}, "COUPON": {}, "PROMO": {},
	"DISCOUNT": {}, "OFFER": {}, "DEAL": {},
	"SAVE": {}, "FREE": {}, "GET": {}, "WIN": {}, "GRAB": {}, "HURRY": {},
	"NOW": {}, "TODAY": {}, "HERE": {},
	"TELEGRAM": {}, "WHATSAPP": {}, "INSTAGRAM": {}, "FACEBOOK": {},
	"YOUTUBE": {}, "TWITTER": {},
	"CLICK": {}, "VISIT": {}, "CHECK": {}, "WATCH": {}, "DOWNLOAD": {},
	"INSTALL": {}, "REGISTER": {},
	"JANUARY": {}, "FEBRUARY": {}, "MARCH": {}, "APRIL": {}, "JUNE": {},
	"JULY": {}, "AUGUST": {}, "SEPTEMBER": {}, "OCTOBER": {}, "NOVEMBER": {},
	"DECEMBER": {}, "MONDAY": {}, "TUESDAY": {}, "WEDNESDAY": {},
	"THURSDAY": {}, "FRIDAY": {}, "SATURDAY": {}, "SUNDAY": {},
	"TOMORROW": {}, "YESTERDAY": {},
}

// nonCodeShapes reject tokens that look like codes but are really dates,
// years, or promotional fragments. Plain verb+number codes such as SAVE50
// are deliberately NOT rejected here: they are among the most common real
// coupon codes in the wild.
var nonCodeShapes = []*regexp.Regexp{
	regexp.MustCompile(`^(?:19|20)\d{2}$`),               // bare year
	regexp.MustCompile(`^[A-Z]{1,3}$`),                   // short all-letter fragment
	regexp.MustCompile(`^[A-Z]{10,}$`),                   // long all-letter word
	regexp.MustCompile(`^\d+(?:OFF|PERCENT)$`),           // 50OFF, 25PERCENT
	regexp.MustCompile(`^\d{1,2}(?:ST|ND|RD|TH)$`),       // date ordinals: 31ST
	regexp.MustCompile(`^(?:JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)\d*$`),
}

// IsValidCode reports whether a captured token is plausible as a coupon
// code: bounded length, upper-case alphanumerics with dash/underscore, not
// degenerate repetition, and not a known stopword or date-like shape.
func IsValidCode(code string) bool {
	if len(code) < minCodeLength || len(code) > maxCodeLength {
		return false
	}
	if !codeCharset.MatchString(code) {
		return false
	}
	if distinctBytes(code) < 2 {
		return false
	}
	if _, stop := stopwords[code]; stop {
		return false
	}
	for _, shape := range nonCodeShapes {
		if shape.MatchString(code) {
			return false
		}
	}
	return true
}

func distinctBytes(s string) int {
	seen := make(map[byte]struct{}, len(s))
	for i := 0; i < len(s); i++ {
		seen[s[i]] = struct{}{}
	}
	return len(seen)
}

// brandStopwords filter the fallback brand patterns: capitalized words that
// precede "coupon" or follow "code for" without naming a merchant.
var brandStopwords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "for": {}, "code": {}, "deal": {},
	"offer": {}, "sale": {}, "discount": {}, "coupon": {}, "promo": {},
	"website": {}, "link": {}, "click": {}, "here": {}, "this": {},
	"that": {}, "your": {}, "new": {}, "best": {}, "top": {}, "free": {},
	"get": {}, "use": {}, "all": {}, "any": {}, "more": {}, "most": {},
	"app": {}, "site": {}, "page": {}, "store": {}, "shop": {},
	"brand": {}, "company": {}, "working": {}, "active": {}, "valid": {},
	"live": {}, "current": {}, "mega": {}, "super": {}, "ultra": {},
	"max": {}, "plus": {}, "pro": {}, "premium": {}, "today": {},
	"latest": {}, "exclusive": {}, "special": {}, "limited": {},
}

// IsValidBrand reports whether a fallback-extracted token is plausible as
// a brand name rather than promotional filler.
func IsValidBrand(brand string) bool {
	if len(brand) < 3 || len(brand) > 25 {
		return false
	}
	if _, stop := brandStopwords[strings.ToLower(brand)]; stop {
		return false
	}
	return true
}
