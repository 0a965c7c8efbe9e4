package config

import (
	"encoding/json"
	"os"
	"time"

	"moodflow/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing. Secrets are deliberately
// absent; they come from the environment.
type JsonConfig struct {
	EndpointAddr          string `json:"endpoint_addr"`
	BaseURL               string `json:"base_url"`
	DatabaseDSN           string `json:"database_dsn"`
	TokenValidityMinutes  int    `json:"token_validity_minutes"`
	SentimentAPIURL       string `json:"sentiment_api_url"`
	InsightAPIURL         string `json:"insight_api_url"`
	InsightModel          string `json:"insight_model"`
	PaymentAPIURL         string `json:"payment_api_url"`
	PaymentAmount         int    `json:"payment_amount"`
	PaymentCurrency       string `json:"payment_currency"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. Absent flags mean no JSON is loaded. Read or unmarshal
// errors panic; intended usage is defaults -> parseJson -> parseFlags ->
// parseEnv, where later stages override earlier ones.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.BaseURL != "" {
		config.BaseURL = c.BaseURL
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.TokenValidityMinutes != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityMinutes) * time.Minute
	}
	if c.SentimentAPIURL != "" {
		config.SentimentAPIURL = c.SentimentAPIURL
	}
	if c.InsightAPIURL != "" {
		config.InsightAPIURL = c.InsightAPIURL
	}
	if c.InsightModel != "" {
		config.InsightModel = c.InsightModel
	}
	if c.PaymentAPIURL != "" {
		config.PaymentAPIURL = c.PaymentAPIURL
	}
	if c.PaymentAmount != 0 {
		config.PaymentAmount = c.PaymentAmount
	}
	if c.PaymentCurrency != "" {
		config.PaymentCurrency = c.PaymentCurrency
	}
}
