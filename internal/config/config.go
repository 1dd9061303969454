// Package config loads the commerce MCP server configuration from environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

const (
	envKeyAPIDomain      = "API_DOMAIN"
	envKeyBearerToken    = "BEARER_TOKEN"
	envKeyUserAgent      = "USER_AGENT"
	envKeyDatasets       = "DATASETS"
	envKeyDatasetsFile   = "DATASETS_FILE"
	envKeyListenAddr     = "LISTEN_ADDR"
	envKeyTransport      = "TRANSPORT"
	envKeyForwardHeaders = "FORWARD_HEADERS"
	envKeyHTTPTimeout    = "HTTP_TIMEOUT"
	envKeyLogLevel       = "LOG_LEVEL"
	envKeyLogFormat      = "LOG_FORMAT"
	envKeyAnalyticsURL   = "ANALYTICS_URL"
	envKeyTelemetry      = "TELEMETRY"
)

// Dataset is a single entry of the dataset mapping: Key names the tool, Name is the
// backend dataset it fetches.
type Dataset struct {
	Key  string
	Name string
}

// Config holds runtime configuration for the commerce MCP server.
// It is built once at startup and never mutated afterwards.
type Config struct {
	// Backend
	APIDomain   string // API_DOMAIN (required for tool calls)
	BearerToken string // BEARER_TOKEN (required for tool calls)
	UserAgent   string // USER_AGENT, sent as-is, empty when unset
	HTTPTimeout time.Duration

	// Datasets, sorted by key
	Datasets []Dataset

	// Server
	ListenAddr     string
	Transport      string
	ForwardHeaders []string

	// Logging
	LogLevel  slog.Level
	LogFormat string

	// Analytics
	AnalyticsURL string
	Telemetry    bool
}

// Load reads configuration from environment variables, applying defaults for missing values.
// Missing backend credentials are not an error here; they surface on every tool call instead.
func Load() (*Config, error) {
	cfg := &Config{
		APIDomain:      strings.TrimRight(os.Getenv(envKeyAPIDomain), "/"),
		BearerToken:    os.Getenv(envKeyBearerToken),
		UserAgent:      os.Getenv(envKeyUserAgent),
		ListenAddr:     envOr(envKeyListenAddr, ":8080"),
		Transport:      strings.ToLower(envOr(envKeyTransport, TransportHTTP)),
		ForwardHeaders: splitList(envOr(envKeyForwardHeaders, "X-Request-Id")),
		LogFormat:      strings.ToLower(envOr(envKeyLogFormat, "text")),
		AnalyticsURL:   os.Getenv(envKeyAnalyticsURL),
	}

	timeout, err := time.ParseDuration(envOr(envKeyHTTPTimeout, "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envKeyHTTPTimeout, err)
	}
	cfg.HTTPTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(envOr(envKeyLogLevel, "info"))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envKeyLogLevel, err)
	}

	telemetry, err := strconv.ParseBool(envOr(envKeyTelemetry, "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envKeyTelemetry, err)
	}
	cfg.Telemetry = telemetry

	datasets := make(map[string]string)
	if path := os.Getenv(envKeyDatasetsFile); path != "" {
		fromFile, err := LoadDatasetsFile(path)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			datasets[k] = v
		}
	}
	if raw := os.Getenv(envKeyDatasets); raw != "" {
		fromEnv, err := ParseDatasets(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envKeyDatasets, err)
		}
		for k, v := range fromEnv {
			datasets[k] = v
		}
	}
	if cfg.Datasets, err = NormalizeDatasets(datasets); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that must be correct for the process to start.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("invalid %s %q: must be %q or %q", envKeyTransport, c.Transport, TransportHTTP, TransportStdio)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid %s %q: must be \"text\" or \"json\"", envKeyLogFormat, c.LogFormat)
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("invalid %s: must not be negative", envKeyHTTPTimeout)
	}

	return nil
}

// HasBackendCredentials reports whether both API_DOMAIN and BEARER_TOKEN are set.
func (c *Config) HasBackendCredentials() bool {
	return c.APIDomain != "" && c.BearerToken != ""
}

// ParseDatasets parses the serialized dataset mapping. JSON object text is decoded with
// JSON rules (escapes such as \/ are valid, a repeated key keeps its last value); any
// other text is read as a YAML mapping.
func ParseDatasets(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]string{}, nil
	}

	if json.Valid([]byte(raw)) {
		return parseJSONDatasets(raw)
	}

	var datasets map[string]string
	if err := yaml.Unmarshal([]byte(raw), &datasets); err != nil {
		return nil, fmt.Errorf("dataset mapping must be a key/name object: %w", err)
	}
	if datasets == nil {
		return map[string]string{}, nil
	}

	return datasets, nil
}

func parseJSONDatasets(raw string) (map[string]string, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("dataset mapping must be a key/name object: %w", err)
	}

	datasets := make(map[string]string, len(values))
	for key, value := range values {
		switch v := value.(type) {
		case string:
			datasets[key] = v
		case json.Number:
			datasets[key] = v.String()
		case bool:
			datasets[key] = strconv.FormatBool(v)
		case nil:
			datasets[key] = ""
		default:
			return nil, fmt.Errorf("dataset %q must map to a name, got %T", key, value)
		}
	}

	return datasets, nil
}

type datasetsFile struct {
	Datasets map[string]string `yaml:"datasets"`
}

// LoadDatasetsFile reads a YAML file with a top-level "datasets" mapping.
func LoadDatasetsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read datasets file %s: %w", path, err)
	}

	var file datasetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse datasets file %s: %w", path, err)
	}
	if file.Datasets == nil {
		return map[string]string{}, nil
	}

	return file.Datasets, nil
}

// NormalizeDatasets validates a dataset mapping and returns it as a slice sorted by key.
func NormalizeDatasets(datasets map[string]string) ([]Dataset, error) {
	normalized := make([]Dataset, 0, len(datasets))
	for key, name := range datasets {
		key = strings.TrimSpace(key)
		name = strings.TrimSpace(name)
		if key == "" {
			return nil, fmt.Errorf("dataset key is required (dataset %q)", name)
		}
		if name == "" {
			return nil, fmt.Errorf("dataset name is required for key %q", key)
		}
		normalized = append(normalized, Dataset{Key: key, Name: name})
	}

	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Key < normalized[j].Key
	})

	return normalized, nil
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
