package config

import "time"

// Config holds runtime settings for the postkeeper CLI.
//
// Fields:
//   - ServerBaseURL: root of the post service HTTP API.
//   - SearchDebounce: quiescence interval applied to search input.
//   - RequestTimeout: deadline of every remote call.
//   - DatabaseDSN: path of the local SQLite store holding the credential.
//   - MetricsAddr: host:port for the /metrics endpoint; empty disables it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL  string
	SearchDebounce time.Duration
	RequestTimeout time.Duration
	DatabaseDSN    string
	MetricsAddr    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000/server-api"
	c.SearchDebounce = 200 * time.Millisecond
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "postkeeper.db"
	c.MetricsAddr = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
