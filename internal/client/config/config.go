package config

import "time"

// Config holds runtime settings for the medtrack CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the medication API, without the /api path.
//   - DatabasePath: path of the local SQLite file holding the session.
//   - RequestTimeout: per-request timeout applied by the HTTP transport.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "medtrack.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
