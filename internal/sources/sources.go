// internal/sources/sources.go

// Package sources fetches documents to mine for coupon codes: YouTube
// search results, channel uploads, and coupon web pages.
package sources

import (
	"context"
	"errors"
)

// ErrSourceUnavailable marks a fetch failure that should skip the source
// and continue the run rather than abort it.
var ErrSourceUnavailable = errors.New("source unavailable")

// Document is one unit of text to mine. SourceID is stable across runs so
// processed documents can be skipped on the next run.
type Document struct {
	// SourceID uniquely identifies the document: a video ID or page URL.
	SourceID string

	// Title of the video or page.
	Title string

	// Channel is the publishing channel name, when known.
	Channel string

	// Text is the raw description or page text, before normalization.
	Text string
}

// Source yields documents from one upstream. Implementations wrap their
// failures in ErrSourceUnavailable when the run should continue without
// them.
type Source interface {
	// Name identifies the source in logs, metrics, and reports.
	Name() string

	// Fetch returns the source's current documents.
	Fetch(ctx context.Context) ([]Document, error)
}
