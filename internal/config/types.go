// internal/config/types.go

// Package config loads, validates, and watches the YAML run configuration.
package config

import "time"

// Config is the top-level run configuration.
type Config struct {
	// Name identifies this configuration in logs and reports
	Name string `yaml:"name" json:"name"`

	// YouTube configures the YouTube Data API sources
	YouTube YouTubeConfig `yaml:"youtube" json:"youtube"`

	// Websites lists coupon pages to scrape directly
	Websites []WebsiteConfig `yaml:"websites,omitempty" json:"websites,omitempty"`

	// History configures the dedup store
	History HistoryConfig `yaml:"history" json:"history"`

	// Output configures report writing
	Output OutputConfig `yaml:"output" json:"output"`

	// Request configures the shared HTTP client
	Request RequestConfig `yaml:"request" json:"request"`

	// Server configures the optional dashboard
	Server ServerConfig `yaml:"server,omitempty" json:"server,omitempty"`

	// MaxPerDocument caps how many records one document may produce
	MaxPerDocument int `yaml:"max_per_document" json:"max_per_document"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// YouTubeConfig drives the search and channel source adapters.
type YouTubeConfig struct {
	// APIKey authenticates against the YouTube Data API; usually set via
	// ${YOUTUBE_API_KEY} expansion
	APIKey string `yaml:"api_key" json:"-"`

	// Queries are the search keywords, one source adapter each
	Queries []string `yaml:"queries,omitempty" json:"queries,omitempty"`

	// Channels are channel IDs whose recent uploads are traversed
	Channels []string `yaml:"channels,omitempty" json:"channels,omitempty"`

	// MaxResults bounds each API page (1-50)
	MaxResults int `yaml:"max_results" json:"max_results"`

	// Region biases search results, e.g. "US" or "IN"
	Region string `yaml:"region,omitempty" json:"region,omitempty"`
}

// WebsiteConfig describes one coupon page to scrape.
type WebsiteConfig struct {
	// URL of the page
	URL string `yaml:"url" json:"url"`

	// Selector narrows extraction to matching containers; empty means the
	// whole page body
	Selector string `yaml:"selector,omitempty" json:"selector,omitempty"`

	// RenderJS fetches through a headless browser instead of plain HTTP
	RenderJS bool `yaml:"render_js,omitempty" json:"render_js,omitempty"`
}

// HistoryConfig selects and locates the dedup store.
type HistoryConfig struct {
	// Backend is "json" or "sqlite"
	Backend string `yaml:"backend" json:"backend"`

	// Path to the history file or database
	Path string `yaml:"path" json:"path"`
}

// OutputConfig configures report writing.
type OutputConfig struct {
	// Formats lists report formats: csv, json, xlsx
	Formats []string `yaml:"formats" json:"formats"`

	// Directory receives the report files
	Directory string `yaml:"directory" json:"directory"`

	// Summary also writes a plain-text run summary when true
	Summary bool `yaml:"summary" json:"summary"`
}

// RequestConfig configures the shared HTTP client used by all sources.
type RequestConfig struct {
	// RateLimit is the fixed delay between requests, e.g. "2s"
	RateLimit string `yaml:"rate_limit" json:"rate_limit"`

	// Timeout bounds each request, e.g. "30s"
	Timeout string `yaml:"timeout" json:"timeout"`

	// RetryAttempts on 429 and 5xx responses
	RetryAttempts int `yaml:"retry_attempts" json:"retry_attempts"`

	// RetryDelay between attempts, e.g. "1s"
	RetryDelay string `yaml:"retry_delay" json:"retry_delay"`

	// UserAgents rotate per request; empty uses the builtin set
	UserAgents []string `yaml:"user_agents,omitempty" json:"user_agents,omitempty"`
}

// ServerConfig configures the dashboard HTTP server.
type ServerConfig struct {
	// Address to listen on, e.g. ":8089"
	Address string `yaml:"address" json:"address"`
}

// RateLimitDelay returns the parsed inter-request delay.
func (r RequestConfig) RateLimitDelay() time.Duration {
	return parseDuration(r.RateLimit, 2*time.Second)
}

// RequestTimeout returns the parsed per-request timeout.
func (r RequestConfig) RequestTimeout() time.Duration {
	return parseDuration(r.Timeout, 30*time.Second)
}

// RetryBackoff returns the parsed delay between retry attempts.
func (r RequestConfig) RetryBackoff() time.Duration {
	return parseDuration(r.RetryDelay, time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
