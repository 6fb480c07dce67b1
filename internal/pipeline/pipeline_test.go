// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Raahul-01/Coupon-scrapper/internal/brands"
	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
	"github.com/Raahul-01/Coupon-scrapper/internal/history"
	"github.com/Raahul-01/Coupon-scrapper/internal/output"
	"github.com/Raahul-01/Coupon-scrapper/internal/sources"
)

type fakeSource struct {
	name string
	docs []sources.Document
	err  error
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context) ([]sources.Document, error) {
	return f.docs, f.err
}

func newRunner(t *testing.T, srcs ...sources.Source) (*Runner, *history.FileStore) {
	t.Helper()
	dir := t.TempDir()

	store, err := history.OpenFile(filepath.Join(dir, "history.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("history: %v", err)
	}

	manager, err := output.NewManager([]string{"csv"}, dir)
	if err != nil {
		t.Fatalf("output: %v", err)
	}

	return &Runner{
		Name:           "test",
		Sources:        srcs,
		Store:          store,
		Synthesizer:    extract.NewSynthesizer(brands.Default()),
		Output:         manager,
		Log:            zerolog.Nop(),
		MaxPerDocument: 10,
	}, store
}

func TestRunAcceptsNewCoupons(t *testing.T) {
	src := &fakeSource{name: "fake", docs: []sources.Document{
		{SourceID: "vid1", Channel: "DealHunter", Text: "Use code SAVE50 for 50% off at Nike"},
		{SourceID: "vid2", Text: "promo code HOST25X for Hostinger hosting"},
	}}

	runner, _ := newRunner(t, src)
	stats, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if stats.RecordsAccepted != 2 {
		t.Errorf("accepted = %d, expected 2", stats.RecordsAccepted)
	}
	if stats.DocumentsFetched != 2 {
		t.Errorf("documents = %d", stats.DocumentsFetched)
	}
	if stats.SourcesFailed != 0 {
		t.Errorf("failed sources = %d", stats.SourcesFailed)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	src := &fakeSource{name: "fake", docs: []sources.Document{
		{SourceID: "vid1", Text: "Use code SAVE50 for 50% off at Nike"},
	}}

	runner, _ := newRunner(t, src)

	first, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.RecordsAccepted != 1 {
		t.Fatalf("first run accepted = %d", first.RecordsAccepted)
	}

	second, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.RecordsAccepted != 0 {
		t.Errorf("second run accepted = %d, expected 0", second.RecordsAccepted)
	}
	if second.DocumentsSkipped != 1 {
		t.Errorf("second run should skip the processed document, skipped = %d", second.DocumentsSkipped)
	}
}

func TestRunBrandAwareDedup(t *testing.T) {
	src := &fakeSource{name: "fake", docs: []sources.Document{
		{SourceID: "vid1", Text: "Use code SAVE20 at Nike"},
		{SourceID: "vid2", Text: "Use code SAVE20 at Adidas"},
	}}

	runner, _ := newRunner(t, src)
	stats, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// Same code, different brands: both survive.
	if stats.RecordsAccepted != 2 {
		t.Errorf("accepted = %d, expected 2 brand-distinct records", stats.RecordsAccepted)
	}
}

func TestRunSkipsFailedSources(t *testing.T) {
	broken := &fakeSource{name: "broken", err: sources.ErrSourceUnavailable}
	working := &fakeSource{name: "working", docs: []sources.Document{
		{SourceID: "vid1", Text: "Use code SAVE50 at Nike"},
	}}

	runner, _ := newRunner(t, broken, working)
	stats, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("a failing source must not abort the run: %v", err)
	}

	if stats.SourcesFailed != 1 {
		t.Errorf("failed sources = %d", stats.SourcesFailed)
	}
	if stats.RecordsAccepted != 1 {
		t.Errorf("accepted = %d", stats.RecordsAccepted)
	}
}

func TestRunDuplicateWithinRun(t *testing.T) {
	src := &fakeSource{name: "fake", docs: []sources.Document{
		{SourceID: "vid1", Text: "Use code SAVE50 at Nike"},
		{SourceID: "vid2", Text: "Use code SAVE50 at Nike again"},
	}}

	runner, _ := newRunner(t, src)
	stats, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if stats.RecordsAccepted != 1 {
		t.Errorf("accepted = %d, expected 1", stats.RecordsAccepted)
	}
	if stats.DuplicatesSkipped != 1 {
		t.Errorf("duplicates = %d, expected 1", stats.DuplicatesSkipped)
	}
}

func TestRunMaxPerDocument(t *testing.T) {
	text := "use code ALPHA11 now. use code BRAVO22 now. use code CHARLIE33 now."
	src := &fakeSource{name: "fake", docs: []sources.Document{
		{SourceID: "vid1", Text: text},
	}}

	runner, _ := newRunner(t, src)
	runner.MaxPerDocument = 2

	stats, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.RecordsAccepted != 2 {
		t.Errorf("accepted = %d, expected cap of 2", stats.RecordsAccepted)
	}
}

func TestRunReportsColdStart(t *testing.T) {
	src := &fakeSource{name: "fake", docs: []sources.Document{
		{SourceID: "vid1", Text: "Use code SAVE50 at Nike"},
	}}

	// Fresh history file: the first run starts cold.
	runner, store := newRunner(t, src)
	stats, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !stats.ColdStart {
		t.Error("first run against a missing history file should report a cold start")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := history.OpenFile(store.Path(), zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	runner.Store = reopened

	stats, err = runner.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if stats.ColdStart {
		t.Error("run with existing history should not report a cold start")
	}
}

func TestRunCancelledContext(t *testing.T) {
	src := &fakeSource{name: "fake", docs: []sources.Document{
		{SourceID: "vid1", Text: "Use code SAVE50 at Nike"},
	}}

	runner, _ := newRunner(t, src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
