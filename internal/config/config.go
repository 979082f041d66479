// Package config loads console configuration from a YAML file with
// environment variable overrides. The loaded file can be watched for
// changes so the console picks up edits without a restart.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "15s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	dur, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Mode selects the data service backing the console.
type Mode string

const (
	// ModeDemo serves deterministic fixture data with no cluster.
	ModeDemo Mode = "demo"
	// ModeLive reads platform resources from the cluster.
	ModeLive Mode = "live"
)

// AuthConfig configures bearer-token authentication.
type AuthConfig struct {
	// Disabled turns off auth entirely (local development).
	Disabled bool `yaml:"disabled"`

	// Secret is the HS256 signing secret for bearer JWTs.
	Secret string `yaml:"secret"`
}

// PrometheusConfig points at the metrics backend.
type PrometheusConfig struct {
	// URL is the Prometheus base URL (e.g. http://prometheus:9090).
	URL string `yaml:"url"`
}

// SessionStoreConfig points at the platform session database.
type SessionStoreConfig struct {
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `yaml:"databaseURL"`
}

// EventBusConfig points at the platform event bus.
type EventBusConfig struct {
	// URL is the NATS server URL.
	URL string `yaml:"url"`
}

// TabsConfig configures the tab store.
type TabsConfig struct {
	// Path is the SQLite file backing tab persistence.
	Path string `yaml:"path"`

	// Capacity is the maximum number of open tabs per user.
	Capacity int `yaml:"capacity"`
}

// LogsConfig configures the runtime log poller.
type LogsConfig struct {
	// Interval between log polls.
	Interval Duration `yaml:"interval"`

	// Capacity is the maximum number of buffered log lines per stream.
	Capacity int `yaml:"capacity"`
}

// CostConfig configures the cost view.
type CostConfig struct {
	// RefreshSchedule is a cron expression for pre-warming cost snapshots.
	RefreshSchedule string `yaml:"refreshSchedule"`

	// DefaultWindow is the cost window used when the request omits one.
	DefaultWindow Duration `yaml:"defaultWindow"`
}

// Config is the console configuration.
type Config struct {
	// Mode selects demo or live data.
	Mode Mode `yaml:"mode"`

	// ListenAddr is the HTTP listen address.
	ListenAddr string `yaml:"listenAddr"`

	// WorkspaceLabel marks namespaces that are console workspaces.
	WorkspaceLabel string `yaml:"workspaceLabel"`

	// SharedNamespace holds Providers shared across workspaces.
	SharedNamespace string `yaml:"sharedNamespace"`

	// CacheTTL is the default request-cache TTL.
	CacheTTL Duration `yaml:"cacheTTL"`

	Auth         AuthConfig         `yaml:"auth"`
	Prometheus   PrometheusConfig   `yaml:"prometheus"`
	SessionStore SessionStoreConfig `yaml:"sessionStore"`
	EventBus     EventBusConfig     `yaml:"eventBus"`
	Tabs         TabsConfig         `yaml:"tabs"`
	Logs         LogsConfig         `yaml:"logs"`
	Cost         CostConfig         `yaml:"cost"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Mode:            ModeDemo,
		ListenAddr:      ":8090",
		WorkspaceLabel:  "omnia.altairalabs.ai/workspace",
		SharedNamespace: "omnia-shared",
		CacheTTL:        Duration(15 * time.Second),
		Auth:            AuthConfig{Disabled: true},
		Prometheus:      PrometheusConfig{URL: "http://prometheus:9090"},
		EventBus:        EventBusConfig{URL: "nats://nats.omnia:4222"},
		Tabs:            TabsConfig{Path: "tabs.db", Capacity: 12},
		Logs:            LogsConfig{Interval: Duration(2 * time.Second), Capacity: 2000},
		Cost:            CostConfig{RefreshSchedule: "*/15 * * * *", DefaultWindow: Duration(24 * time.Hour)},
	}
}

// Load reads the config file at path, applies env overrides, and validates.
// An empty path returns the defaults (with env overrides applied).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays OMNIA_CONSOLE_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("OMNIA_CONSOLE_MODE"); v != "" {
		c.Mode = Mode(v)
	}
	if v := os.Getenv("OMNIA_CONSOLE_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("OMNIA_CONSOLE_AUTH_SECRET"); v != "" {
		c.Auth.Secret = v
		c.Auth.Disabled = false
	}
	if v := os.Getenv("OMNIA_CONSOLE_PROMETHEUS_URL"); v != "" {
		c.Prometheus.URL = v
	}
	if v := os.Getenv("OMNIA_CONSOLE_DATABASE_URL"); v != "" {
		c.SessionStore.DatabaseURL = v
	}
	if v := os.Getenv("OMNIA_CONSOLE_EVENT_BUS_URL"); v != "" {
		c.EventBus.URL = v
	}
	if v := os.Getenv("OMNIA_CONSOLE_TABS_PATH"); v != "" {
		c.Tabs.Path = v
	}
	if v := os.Getenv("OMNIA_CONSOLE_TABS_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Tabs.Capacity = n
		}
	}
}

// Validate reports configuration errors that would break startup.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDemo, ModeLive:
	default:
		return fmt.Errorf("invalid mode %q (want demo or live)", c.Mode)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listenAddr is required")
	}
	if !c.Auth.Disabled && c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required unless auth is disabled")
	}
	if c.Tabs.Capacity < 1 {
		return fmt.Errorf("tabs.capacity must be at least 1")
	}
	if c.Logs.Capacity < 1 {
		return fmt.Errorf("logs.capacity must be at least 1")
	}
	return nil
}

// Frontend is the subset of config the web frontend is allowed to see.
// Served on /api/config; never include secrets here.
type Frontend struct {
	Mode            Mode   `json:"mode"`
	SharedNamespace string `json:"sharedNamespace"`
	AuthEnabled     bool   `json:"authEnabled"`
	TabCapacity     int    `json:"tabCapacity"`
	LogPollMillis   int64  `json:"logPollMillis"`
}

// Frontend returns the client-visible view of the config.
func (c *Config) Frontend() Frontend {
	return Frontend{
		Mode:            c.Mode,
		SharedNamespace: c.SharedNamespace,
		AuthEnabled:     !c.Auth.Disabled,
		TabCapacity:     c.Tabs.Capacity,
		LogPollMillis:   c.Logs.Interval.Std().Milliseconds(),
	}
}
