package engine

import (
	"context"

	"go.uber.org/zap"
)

// PrimaryStrategy runs the configured model classifier and degrades to
// the rule-based classifier when no model is configured or the model
// call fails. Degradation is silent from the caller's perspective; the
// returned result simply carries the rule method.
type PrimaryStrategy struct {
	model ModelClassifier
	rules *RuleClassifier
	log   *zap.SugaredLogger
}

// NewPrimaryStrategy wires a model (may be nil) over a rule fallback
func NewPrimaryStrategy(model ModelClassifier, rules *RuleClassifier, log *zap.SugaredLogger) *PrimaryStrategy {
	return &PrimaryStrategy{model: model, rules: rules, log: log}
}

// Classify runs the model path when available, falling back to rules on
// any model error. Rule classification cannot fail, so neither can this.
func (p *PrimaryStrategy) Classify(ctx context.Context, text string, features FeatureSet) *StrategyResult {
	if p.model == nil {
		return p.rules.Classify(text)
	}

	result, err := p.model.Classify(ctx, text, features)
	if err != nil {
		if p.log != nil {
			p.log.Warnw("Model classification failed, falling back to rules", "error", err)
		}
		return p.rules.Classify(text)
	}
	return result
}
