package config

import "os"

// parseEnv overlays secrets from environment variables. Env wins over flags
// and JSON so deployments never have to put credentials on a command line.
func parseEnv(config *Config) {
	if v := os.Getenv("MOODFLOW_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("HF_API_KEY"); v != "" {
		config.SentimentAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		config.InsightAPIKey = v
	}
	if v := os.Getenv("INTASEND_SECRET_KEY"); v != "" {
		config.PaymentSecretKey = v
	}
	if v := os.Getenv("INTASEND_PUBLISHABLE_KEY"); v != "" {
		config.PaymentPublishableKey = v
	}
}
