// Package config handles configuration for the CLI client: defaults, JSON
// overlay, and command-line flags.
package config

// Config holds runtime settings for the MoodFlow CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - PrefsPath: path of the local preference database.
//   - ReturnURL: optional payment-provider redirect URL to consume at startup.
type Config struct {
	ServerBaseURL string
	PrefsPath     string
	ReturnURL     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.PrefsPath = "moodflow.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
