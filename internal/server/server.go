// internal/server/server.go

// Package server exposes the dashboard HTTP API: run status, discovered
// coupons, health, and Prometheus metrics.
package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Raahul-01/Coupon-scrapper/internal/pipeline"
)

// RunFunc executes one discovery run. The server serializes invocations:
// at most one run is in flight at a time.
type RunFunc func(ctx context.Context) (pipeline.RunStats, error)

// Server is the dashboard HTTP server.
type Server struct {
	log       zerolog.Logger
	outputDir string
	run       RunFunc
	registry  *prometheus.Registry

	mu      sync.Mutex
	running bool
	lastRun *runStatus
	started time.Time
}

type runStatus struct {
	Started  time.Time         `json:"started"`
	Finished time.Time         `json:"finished"`
	Stats    pipeline.RunStats `json:"stats"`
	Error    string            `json:"error,omitempty"`
}

// New builds a dashboard server. registry serves /metrics; run powers
// POST /api/run.
func New(log zerolog.Logger, outputDir string, registry *prometheus.Registry, run RunFunc) *Server {
	return &Server{
		log:       log,
		outputDir: outputDir,
		run:       run,
		registry:  registry,
		started:   time.Now(),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/coupons", s.handleCoupons).Methods(http.MethodGet)
	r.HandleFunc("/api/run", s.handleRun).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:         address,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info().Str("address", address).Msg("dashboard listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"uptime_seconds": int(time.Since(s.started).Seconds()),
		"running":        s.running,
		"last_run":       s.lastRun,
	})
}

// handleCoupons serves the CSV report as JSON rows.
func (s *Server) handleCoupons(w http.ResponseWriter, _ *http.Request) {
	file, err := os.Open(filepath.Join(s.outputDir, "coupons.csv"))
	if os.IsNotExist(err) {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	if err != nil {
		http.Error(w, "failed to read report", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err == io.EOF {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	if err != nil {
		http.Error(w, "failed to parse report", http.StatusInternalServerError)
		return
	}

	coupons := []map[string]string{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			http.Error(w, "failed to parse report", http.StatusInternalServerError)
			return
		}
		entry := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				entry[col] = row[i]
			}
		}
		coupons = append(coupons, entry)
	}

	writeJSON(w, http.StatusOK, coupons)
}

// handleRun triggers a discovery run. A second request while one is in
// flight gets 409 instead of queueing.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		http.Error(w, "run already in progress", http.StatusConflict)
		return
	}
	s.running = true
	s.mu.Unlock()

	started := time.Now()
	stats, err := s.run(r.Context())
	status := &runStatus{Started: started, Finished: time.Now(), Stats: stats}
	if err != nil {
		status.Error = err.Error()
	}

	s.mu.Lock()
	s.running = false
	s.lastRun = status
	s.mu.Unlock()

	if err != nil {
		s.log.Error().Err(err).Msg("triggered run failed")
		writeJSON(w, http.StatusInternalServerError, status)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
