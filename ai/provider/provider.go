package provider

import (
	"time"

	"go.uber.org/zap"

	"github.com/veridis/sfdr-engine/ai/openrouter"
	"github.com/veridis/sfdr-engine/config"
	"github.com/veridis/sfdr-engine/engine"
	"github.com/veridis/sfdr-engine/errors"
)

// Mode selects how the primary classification strategy is backed
type Mode string

const (
	// ModeAuto picks remote when credentials are configured, otherwise
	// falls back to rules-only
	ModeAuto Mode = "auto"
	// ModeRemote requires an OpenRouter API key and always calls out
	ModeRemote Mode = "remote"
	// ModeSimulated uses the local simulated model
	ModeSimulated Mode = "simulated"
	// ModeRules disables the model entirely; both strategies run on rules
	ModeRules Mode = "rules"
)

// ParseMode validates a mode string
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeRemote, ModeSimulated, ModeRules:
		return Mode(s), nil
	case "":
		return ModeAuto, nil
	default:
		return "", errors.Newf("unknown model mode: %q", s)
	}
}

// Selection is the outcome of provider resolution: the classifier to
// install as the primary strategy (nil for rules-only) and the model
// name to record in audit trails.
type Selection struct {
	Model     engine.ModelClassifier
	ModelName string
}

// New resolves the model provider from configuration.
//
// Auto mode prefers the remote provider when an API key is present and
// degrades to rules-only when it is not; explicit modes fail fast when
// their requirements are unmet.
func New(cfg *config.Config, log *zap.SugaredLogger) (*Selection, error) {
	mode, err := ParseMode(cfg.Model.Mode)
	if err != nil {
		return nil, err
	}

	if mode == ModeAuto {
		if cfg.Model.APIKey != "" {
			mode = ModeRemote
		} else {
			if log != nil {
				log.Infow("No model credentials configured, using rule-based classification only")
			}
			mode = ModeRules
		}
	}

	switch mode {
	case ModeRemote:
		if cfg.Model.APIKey == "" {
			return nil, errors.Wrap(errors.ErrModelUnavailable, "remote mode requires an API key")
		}
		client := openrouter.NewClient(openrouter.Config{
			APIKey:      cfg.Model.APIKey,
			BaseURL:     cfg.Model.BaseURL,
			Model:       cfg.Model.Model,
			Temperature: cfg.Model.Temperature,
			MaxTokens:   cfg.Model.MaxTokens,
			Timeout:     time.Duration(cfg.Model.TimeoutSeconds) * time.Second,
			Logger:      log,
		})
		if log != nil {
			log.Infow("Using remote model provider", "model", cfg.Model.Model, "base_url", cfg.Model.BaseURL)
		}
		return &Selection{
			Model:     openrouter.NewClassifier(client),
			ModelName: cfg.Model.Model,
		}, nil

	case ModeSimulated:
		latency := time.Duration(cfg.Engine.SimulatedLatencyMs) * time.Millisecond
		if log != nil {
			log.Infow("Using simulated model provider", "latency", latency)
		}
		return &Selection{
			Model:     &engine.SimulatedModel{Latency: latency},
			ModelName: engine.MethodSimulation,
		}, nil

	case ModeRules:
		return &Selection{Model: nil, ModelName: engine.MethodRules}, nil

	default:
		return nil, errors.Newf("unhandled model mode: %q", mode)
	}
}
