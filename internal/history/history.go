// internal/history/history.go

// Package history tracks which coupons and which source documents have
// already been seen, so repeated runs only report new findings. Identity is
// brand-aware: the same code at two different brands is two coupons.
package history

import "strings"

// Pair identifies one coupon for deduplication purposes.
type Pair struct {
	Code  string
	Brand string
}

// Key returns the normalized dedup key: codes compare case-insensitively
// upper, brands case-insensitively lower.
func (p Pair) Key() string {
	return strings.ToUpper(strings.TrimSpace(p.Code)) + "|" + strings.ToLower(strings.TrimSpace(p.Brand))
}

// Store is the persistence interface for coupon history. Commit and
// MarkProcessed buffer in memory; Flush makes the buffered state durable.
type Store interface {
	// IsDuplicate reports whether the (code, brand) pair has been seen.
	IsDuplicate(p Pair) bool

	// Commit records a new (code, brand) pair.
	Commit(p Pair)

	// IsProcessed reports whether a source document was already handled.
	IsProcessed(sourceID string) bool

	// MarkProcessed records a handled source document.
	MarkProcessed(sourceID string)

	// Flush persists buffered state.
	Flush() error

	// Close flushes and releases underlying resources.
	Close() error
}
