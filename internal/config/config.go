// internal/config/config.go
package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration filename cannot be empty")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes. ${VAR} references are
// expanded from the environment before parsing.
func LoadFromBytes(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("configuration data cannot be empty")
	}

	expanded := expandEnvironmentVariables(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from an io.Reader.
func LoadFromReader(reader io.Reader) (*Config, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader cannot be nil")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	return LoadFromBytes(data)
}

// expandEnvironmentVariables substitutes ${VAR} references. Unset variables
// expand to the empty string, which validation then catches for required
// fields such as the API key.
func expandEnvironmentVariables(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := envPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}

// applyDefaults fills zero-valued optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = "coupon-discovery"
	}
	if cfg.YouTube.MaxResults == 0 {
		cfg.YouTube.MaxResults = 20
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = "json"
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "data/history.json"
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"csv"}
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "output"
	}
	if cfg.Request.RateLimit == "" {
		cfg.Request.RateLimit = "2s"
	}
	if cfg.Request.Timeout == "" {
		cfg.Request.Timeout = "30s"
	}
	if cfg.Request.RetryAttempts == 0 {
		cfg.Request.RetryAttempts = 3
	}
	if cfg.Request.RetryDelay == "" {
		cfg.Request.RetryDelay = "1s"
	}
	if cfg.MaxPerDocument == 0 {
		cfg.MaxPerDocument = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8089"
	}
}

// Validate checks the configuration for inconsistencies that would make a
// run fail or silently do nothing.
func (c *Config) Validate() error {
	hasYouTube := len(c.YouTube.Queries) > 0 || len(c.YouTube.Channels) > 0
	if !hasYouTube && len(c.Websites) == 0 {
		return fmt.Errorf("no sources configured: need youtube queries, channels, or websites")
	}
	if hasYouTube && c.YouTube.APIKey == "" {
		return fmt.Errorf("youtube.api_key is required when youtube sources are configured")
	}
	if c.YouTube.MaxResults < 0 || c.YouTube.MaxResults > 50 {
		return fmt.Errorf("youtube.max_results must be between 1 and 50, got %d", c.YouTube.MaxResults)
	}

	for i, site := range c.Websites {
		if site.URL == "" {
			return fmt.Errorf("websites[%d]: url is required", i)
		}
		if !strings.HasPrefix(site.URL, "http://") && !strings.HasPrefix(site.URL, "https://") {
			return fmt.Errorf("websites[%d]: url must be http or https, got %q", i, site.URL)
		}
	}

	switch c.History.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("history.backend must be json or sqlite, got %q", c.History.Backend)
	}

	for _, format := range c.Output.Formats {
		switch format {
		case "csv", "json", "xlsx":
		default:
			return fmt.Errorf("output format %q not supported (csv, json, xlsx)", format)
		}
	}

	for _, field := range []struct{ name, value string }{
		{"request.rate_limit", c.Request.RateLimit},
		{"request.timeout", c.Request.Timeout},
		{"request.retry_delay", c.Request.RetryDelay},
	} {
		if field.value == "" {
			continue
		}
		if d, err := time.ParseDuration(field.value); err != nil || d <= 0 {
			return fmt.Errorf("%s: invalid duration %q", field.name, field.value)
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	return nil
}

// GenerateTemplate returns a starter configuration covering all sections.
func GenerateTemplate() Config {
	return Config{
		Name: "coupon-discovery",
		YouTube: YouTubeConfig{
			APIKey: "${YOUTUBE_API_KEY}",
			Queries: []string{
				"coupon codes today",
				"promo code haul",
			},
			MaxResults: 20,
			Region:     "US",
		},
		Websites: []WebsiteConfig{
			{URL: "https://example.com/coupons", Selector: ".coupon-card"},
		},
		History: HistoryConfig{
			Backend: "json",
			Path:    "data/history.json",
		},
		Output: OutputConfig{
			Formats:   []string{"csv", "json"},
			Directory: "output",
			Summary:   true,
		},
		Request: RequestConfig{
			RateLimit:     "2s",
			Timeout:       "30s",
			RetryAttempts: 3,
			RetryDelay:    "1s",
		},
		MaxPerDocument: 10,
		LogLevel:       "info",
	}
}

// WriteTemplate renders the starter configuration as YAML.
func WriteTemplate(w io.Writer) error {
	cfg := GenerateTemplate()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
