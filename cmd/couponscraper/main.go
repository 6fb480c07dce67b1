// cmd/couponscraper/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/Raahul-01/Coupon-scrapper/internal/brands"
	"github.com/Raahul-01/Coupon-scrapper/internal/config"
	"github.com/Raahul-01/Coupon-scrapper/internal/extract"
	"github.com/Raahul-01/Coupon-scrapper/internal/history"
	"github.com/Raahul-01/Coupon-scrapper/internal/monitoring"
	"github.com/Raahul-01/Coupon-scrapper/internal/output"
	"github.com/Raahul-01/Coupon-scrapper/internal/pipeline"
	"github.com/Raahul-01/Coupon-scrapper/internal/server"
	"github.com/Raahul-01/Coupon-scrapper/internal/sources"
)

// Version information (set by build flags)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "run":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Error: config file required")
			fmt.Fprintln(os.Stderr, "Usage: couponscraper run <config.yaml>")
			os.Exit(1)
		}
		if err := runOnce(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "serve":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Error: config file required")
			fmt.Fprintln(os.Stderr, "Usage: couponscraper serve <config.yaml>")
			os.Exit(1)
		}
		if err := serve(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "validate":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Error: config file required")
			fmt.Fprintln(os.Stderr, "Usage: couponscraper validate <config.yaml>")
			os.Exit(1)
		}
		if err := validate(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration file '%s' is valid\n", os.Args[2])

	case "template":
		if err := config.WriteTemplate(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "version", "--version":
		printVersion()

	case "help", "--help", "-h":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command '%s'\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runOnce(configFile string) error {
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())

	runner, cleanup, err := buildRunner(cfg, log, metrics)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Run complete: %d new coupons, %d duplicates skipped, %d documents (%s)\n",
		stats.RecordsAccepted, stats.DuplicatesSkipped, stats.DocumentsFetched,
		stats.Duration.Round(time.Millisecond))
	return nil
}

func serve(configFile string) error {
	cfg, err := config.LoadFromFile(configFile)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	// Serve mode rebuilds the runner per triggered run so config edits
	// picked up by the watcher apply to the next run.
	var current atomic.Pointer[config.Config]
	current.Store(cfg)

	watcher, err := config.NewWatcher(configFile, log)
	if err != nil {
		return err
	}
	defer watcher.Close()
	watcher.OnChange(func(updated *config.Config) {
		current.Store(updated)
	})

	run := func(ctx context.Context) (pipeline.RunStats, error) {
		runner, cleanup, err := buildRunner(current.Load(), log, metrics)
		if err != nil {
			return pipeline.RunStats{}, err
		}
		defer cleanup()
		return runner.Run(ctx)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(log, cfg.Output.Directory, registry, run)
	return srv.ListenAndServe(ctx, cfg.Server.Address)
}

func validate(configFile string) error {
	_, err := config.LoadFromFile(configFile)
	return err
}

// buildRunner assembles the pipeline from configuration. The returned
// cleanup closes the history store.
func buildRunner(cfg *config.Config, log zerolog.Logger, metrics *monitoring.Metrics) (*pipeline.Runner, func(), error) {
	store, err := openHistory(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	client := sources.NewClient(sources.ClientConfig{
		Delay:         cfg.Request.RateLimitDelay(),
		Timeout:       cfg.Request.RequestTimeout(),
		RetryAttempts: cfg.Request.RetryAttempts,
		RetryDelay:    cfg.Request.RetryBackoff(),
		UserAgents:    cfg.Request.UserAgents,
	})

	var srcs []sources.Source
	for _, query := range cfg.YouTube.Queries {
		src := sources.NewSearchSource(client, cfg.YouTube.APIKey, query,
			cfg.YouTube.MaxResults, cfg.YouTube.Region)
		src.Skip = store.IsProcessed
		srcs = append(srcs, src)
	}
	for _, channelID := range cfg.YouTube.Channels {
		src := sources.NewChannelSource(client, cfg.YouTube.APIKey, channelID,
			cfg.YouTube.MaxResults)
		src.Skip = store.IsProcessed
		srcs = append(srcs, src)
	}
	for _, site := range cfg.Websites {
		if site.RenderJS {
			srcs = append(srcs, sources.NewBrowserSource(site.URL, site.Selector,
				cfg.Request.RequestTimeout()))
			continue
		}
		srcs = append(srcs, sources.NewPageSource(client, site.URL, site.Selector))
	}

	manager, err := output.NewManager(cfg.Output.Formats, cfg.Output.Directory)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	runner := &pipeline.Runner{
		Name:           cfg.Name,
		Sources:        srcs,
		Store:          store,
		Synthesizer:    extract.NewSynthesizer(brands.Default()),
		Output:         manager,
		Metrics:        metrics,
		Log:            log,
		MaxPerDocument: cfg.MaxPerDocument,
	}
	if cfg.Output.Summary {
		runner.SummaryDir = cfg.Output.Directory
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("closing history store")
		}
	}
	return runner, cleanup, nil
}

func openHistory(cfg *config.Config, log zerolog.Logger) (history.Store, error) {
	switch cfg.History.Backend {
	case "sqlite":
		return history.OpenSQLite(cfg.History.Path)
	default:
		return history.OpenFile(cfg.History.Path, log)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if hasFlag("-v") || hasFlag("--verbose") {
		level = "debug"
	}
	return config.NewLogger(level, hasFlag("--log-json"))
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args {
		if arg == flag {
			return true
		}
	}
	return false
}

func printUsage() {
	fmt.Println("couponscraper - coupon code discovery from YouTube and the web")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  couponscraper run <config.yaml>        Run discovery once and write reports")
	fmt.Println("  couponscraper serve <config.yaml>      Start the dashboard server")
	fmt.Println("  couponscraper validate <config.yaml>   Validate configuration file")
	fmt.Println("  couponscraper template                 Print a starter configuration")
	fmt.Println("  couponscraper version                  Show version information")
	fmt.Println("  couponscraper help                     Show this help message")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -v, --verbose                          Enable debug logging")
	fmt.Println("  --log-json                             Log as JSON instead of console format")
}

func printVersion() {
	fmt.Printf("couponscraper %s\n", version)
	fmt.Printf("Build time: %s\n", buildTime)
	fmt.Printf("Git commit: %s\n", gitCommit)
}
