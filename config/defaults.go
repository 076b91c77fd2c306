package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost",
		"https://localhost",
		"http://127.0.0.1",
		"https://127.0.0.1",
	})

	// Model defaults
	v.SetDefault("model.mode", "auto")
	v.SetDefault("model.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("model.model", "qwen/qwen-turbo")
	v.SetDefault("model.temperature", 0.1) // Deterministic classification
	v.SetDefault("model.max_tokens", 1024)
	v.SetDefault("model.timeout_seconds", 60)

	// Engine defaults
	v.SetDefault("engine.simulated_latency_ms", 100)
}

// BindSensitiveEnvVars explicitly binds sensitive configuration to environment variables
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("model.api_key", "SFDR_MODEL_API_KEY")
	v.BindEnv("model.base_url", "SFDR_MODEL_BASE_URL")
	v.BindEnv("model.model", "SFDR_MODEL_NAME")
}
