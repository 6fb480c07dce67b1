// internal/pipeline/pipeline.go

// Package pipeline runs the discovery flow: fetch documents, extract and
// validate candidates, synthesize records, dedup against history, and
// write reports.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
	"github.com/Raahul-01/Coupon-scrapper/internal/history"
	"github.com/Raahul-01/Coupon-scrapper/internal/monitoring"
	"github.com/Raahul-01/Coupon-scrapper/internal/output"
	"github.com/Raahul-01/Coupon-scrapper/internal/sources"
	"github.com/Raahul-01/Coupon-scrapper/internal/textproc"
)

// Runner executes one discovery run over a fixed set of sources. Sources
// run sequentially; a failing source is logged and skipped while the rest
// of the run continues.
type Runner struct {
	Name        string
	Sources     []sources.Source
	Store       history.Store
	Synthesizer *extract.Synthesizer
	Output      *output.Manager
	Metrics     *monitoring.Metrics
	Log         zerolog.Logger

	// MaxPerDocument caps accepted records from a single document.
	MaxPerDocument int

	// SummaryDir, when set, receives a plain-text run summary.
	SummaryDir string
}

// RunStats summarizes one completed run.
type RunStats struct {
	SourcesTotal      int
	SourcesFailed     int
	DocumentsFetched  int
	DocumentsSkipped  int
	CandidatesFound   int
	DuplicatesSkipped int
	RecordsAccepted   int
	ColdStart         bool
	Duration          time.Duration
}

// Run executes the pipeline once. Per-source failures are absorbed; report
// write failures are returned because a run whose results cannot be saved
// has not accomplished anything.
func (r *Runner) Run(ctx context.Context) (RunStats, error) {
	started := time.Now()
	stats := RunStats{SourcesTotal: len(r.Sources)}
	if cold, ok := r.Store.(interface{ ColdStart() bool }); ok {
		stats.ColdStart = cold.ColdStart()
	}
	var accepted []extract.Record

	for _, source := range r.Sources {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		log := r.Log.With().Str("source", source.Name()).Logger()

		docs, err := source.Fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("source failed, skipping")
			r.Metrics.ObserveFetchError(source.Name())
			stats.SourcesFailed++
			continue
		}

		for _, doc := range docs {
			if r.Store.IsProcessed(doc.SourceID) {
				stats.DocumentsSkipped++
				continue
			}
			stats.DocumentsFetched++
			r.Metrics.ObserveFetch(source.Name())

			records := r.processDocument(doc, &stats)
			accepted = append(accepted, records...)

			r.Store.MarkProcessed(doc.SourceID)
		}

		if err := r.Store.Flush(); err != nil {
			log.Error().Err(err).Msg("history flush failed")
		}
		log.Info().Int("documents", len(docs)).Msg("source done")
	}

	if err := r.Output.Write(accepted); err != nil {
		return stats, fmt.Errorf("writing report: %w", err)
	}

	stats.Duration = time.Since(started)
	r.Metrics.ObserveRunDuration(stats.Duration.Seconds())

	if r.SummaryDir != "" {
		summary := output.Summary{
			Name:              r.Name,
			Started:           started,
			Duration:          stats.Duration,
			SourcesTotal:      stats.SourcesTotal,
			SourcesFailed:     stats.SourcesFailed,
			DocumentsFetched:  stats.DocumentsFetched,
			DocumentsSkipped:  stats.DocumentsSkipped,
			CandidatesFound:   stats.CandidatesFound,
			DuplicatesSkipped: stats.DuplicatesSkipped,
			RecordsAccepted:   stats.RecordsAccepted,
			ColdStart:         stats.ColdStart,
		}
		path := filepath.Join(r.SummaryDir, "summary.txt")
		if err := output.WriteSummary(path, summary, accepted); err != nil {
			return stats, err
		}
	}

	r.Log.Info().
		Int("accepted", stats.RecordsAccepted).
		Int("duplicates", stats.DuplicatesSkipped).
		Int("documents", stats.DocumentsFetched).
		Dur("duration", stats.Duration).
		Msg("run complete")

	return stats, nil
}

// processDocument extracts and dedups records from one document.
func (r *Runner) processDocument(doc sources.Document, stats *RunStats) []extract.Record {
	text := textproc.Clean(doc.Text)
	candidates := extract.FindCandidates(text)

	stats.CandidatesFound += len(candidates)
	r.Metrics.ObserveCandidates(len(candidates))

	maxRecords := r.MaxPerDocument
	if maxRecords <= 0 {
		maxRecords = 10
	}

	var records []extract.Record
	for _, candidate := range candidates {
		if len(records) >= maxRecords {
			break
		}

		record := r.Synthesizer.Synthesize(candidate, doc.SourceID, doc.Channel, doc.Text)

		pair := history.Pair{Code: record.Code, Brand: record.Brand}
		if r.Store.IsDuplicate(pair) {
			stats.DuplicatesSkipped++
			r.Metrics.ObserveDuplicate()
			continue
		}

		r.Store.Commit(pair)
		records = append(records, record)
		stats.RecordsAccepted++
		r.Metrics.ObserveAccepted(record.Category)

		r.Log.Debug().
			Str("code", record.Code).
			Str("brand", record.Brand).
			Str("source", doc.SourceID).
			Msg("coupon accepted")
	}

	return records
}
