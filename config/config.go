package config

import "fmt"

// Config represents the SFDR engine configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Model  ModelConfig  `mapstructure:"model"`
	Engine EngineConfig `mapstructure:"engine"`
}

// ServerConfig configures the classification HTTP server
type ServerConfig struct {
	Port           *int     `mapstructure:"port"` // nil = default 8787, 0 is invalid (omit for default)
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server port constants
const (
	DefaultServerPort = 8787
)

// ModelConfig configures the external classification model.
// An empty APIKey is a valid configuration state: the engine degrades
// to its rule-based primary path rather than failing.
type ModelConfig struct {
	Mode           string   `mapstructure:"mode"`            // auto, remote, simulated, rules
	APIKey         string   `mapstructure:"api_key"`         // OpenRouter API key (optional)
	BaseURL        string   `mapstructure:"base_url"`        // API base URL
	Model          string   `mapstructure:"model"`           // Model name (e.g., "qwen/qwen-turbo")
	Temperature    *float64 `mapstructure:"temperature"`     // Sampling temperature (nil = default 0.1)
	MaxTokens      *int     `mapstructure:"max_tokens"`      // Maximum tokens per request (nil = default 1024)
	TimeoutSeconds int      `mapstructure:"timeout_seconds"` // Request timeout in seconds
}

// EngineConfig configures classification engine behavior
type EngineConfig struct {
	SimulatedLatencyMs int `mapstructure:"simulated_latency_ms"` // Latency of the simulated model call (default: 100)
}

// GetServerPort returns the configured server port or the default
func (c *Config) GetServerPort() int {
	if c.Server.Port == nil {
		return DefaultServerPort
	}
	return *c.Server.Port
}

// GetServerAllowedOrigins returns the allowed CORS origins
func (c *Config) GetServerAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) == 0 {
		return []string{
			"http://localhost",
			"https://localhost",
			"http://127.0.0.1",
			"https://127.0.0.1",
		}
	}
	return c.Server.AllowedOrigins
}

// String returns a string representation of the config with secrets masked
func (c *Config) String() string {
	key := "unset"
	if c.Model.APIKey != "" {
		key = "****"
	}
	return fmt.Sprintf("Config{Server: {Port: %d}, Model: {Mode: %s, Model: %s, APIKey: %s}}",
		c.GetServerPort(), c.Model.Mode, c.Model.Model, key)
}
