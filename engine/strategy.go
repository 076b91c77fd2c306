package engine

import "context"

// Strategy method identifiers recorded in results and audit trails
const (
	MethodSimulation = "model_simulation"
	MethodRemote     = "remote_model"
	MethodRules      = "enhanced_rules"
)

// StrategyResult is the output of a single classification strategy.
// Each strategy produces its own result; results are never shared or
// mutated across strategies.
type StrategyResult struct {
	Category            Category `json:"classification"`
	Confidence          float64  `json:"confidence"`
	Reasoning           string   `json:"reasoning"`
	KeyIndicators       []string `json:"key_indicators"`
	SustainabilityScore float64  `json:"sustainability_score"`
	Method              string   `json:"method"`
}

// EnsembleResult is the combined output of the primary and secondary
// strategies.
type EnsembleResult struct {
	StrategyResult
	Agreement bool `json:"ensemble_agreement"`
}

// ModelClassifier is the capability interface for the primary
// strategy's external-model call. Implementations: the OpenRouter
// remote adapter (ai/openrouter) and the local SimulatedModel.
//
// A Classify error means the external call failed; the caller degrades
// to the rule-based path rather than surfacing the error.
type ModelClassifier interface {
	Classify(ctx context.Context, text string, features FeatureSet) (*StrategyResult, error)
}
