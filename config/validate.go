package config

import "github.com/veridis/sfdr-engine/errors"

var validModes = map[string]bool{
	"auto":      true,
	"remote":    true,
	"simulated": true,
	"rules":     true,
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Server port: 0 is invalid (omit for default), negative is invalid
	if c.Server.Port != nil && *c.Server.Port == 0 {
		return errors.New("server.port cannot be 0 (omit for default port 8787)")
	}
	if c.Server.Port != nil && *c.Server.Port < 0 {
		return errors.Newf("server.port must be positive, got %d", *c.Server.Port)
	}

	if c.Model.Mode != "" && !validModes[c.Model.Mode] {
		return errors.Newf("model.mode must be one of auto, remote, simulated, rules; got %q", c.Model.Mode)
	}

	// Remote mode requires a credential and a reachable endpoint
	if c.Model.Mode == "remote" {
		if c.Model.APIKey == "" {
			return errors.New("model.api_key is required when model.mode is remote")
		}
		if c.Model.BaseURL == "" {
			return errors.New("model.base_url cannot be empty when model.mode is remote")
		}
	}

	if c.Model.TimeoutSeconds < 0 {
		return errors.Newf("model.timeout_seconds must be >= 0, got %d", c.Model.TimeoutSeconds)
	}

	if c.Engine.SimulatedLatencyMs < 0 {
		return errors.Newf("engine.simulated_latency_ms must be >= 0, got %d", c.Engine.SimulatedLatencyMs)
	}

	return nil
}
