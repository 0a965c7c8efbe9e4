package config

import (
	"encoding/json"
	"os"

	"moodflow/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	PrefsPath     string `json:"prefs_path"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. Absent flags mean no JSON is loaded. Read or unmarshal
// errors panic; intended usage is defaults -> parseJson -> parseFlags, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.PrefsPath != "" {
		cfg.PrefsPath = jc.PrefsPath
	}
}
