package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineAgreement(t *testing.T) {
	primary := &StrategyResult{
		Category:            PromotesCharacteristics,
		Confidence:          0.80,
		Reasoning:           "model reasoning",
		KeyIndicators:       []string{"esg", "screening"},
		SustainabilityScore: 0.4,
		Method:              MethodSimulation,
	}
	secondary := &StrategyResult{
		Category:            PromotesCharacteristics,
		Confidence:          0.70,
		Reasoning:           "rule reasoning",
		KeyIndicators:       []string{"esg", "environmental"},
		SustainabilityScore: 0.3,
		Method:              MethodRules,
	}

	res := Combine(primary, secondary)

	assert.True(t, res.Agreement)
	assert.Equal(t, PromotesCharacteristics, res.Category)
	// 0.80*0.7 + 0.70*0.3 + 0.10
	assert.InDelta(t, 0.87, res.Confidence, 1e-9)
	assert.Equal(t, []string{"esg", "screening", "environmental"}, res.KeyIndicators)
	assert.InDelta(t, 0.35, res.SustainabilityScore, 1e-9)
	assert.Equal(t, MethodSimulation, res.Method)
}

func TestCombineAgreementConfidenceCap(t *testing.T) {
	primary := &StrategyResult{Category: SustainableObjective, Confidence: 0.95}
	secondary := &StrategyResult{Category: SustainableObjective, Confidence: 0.95}

	res := Combine(primary, secondary)
	assert.InDelta(t, 0.95, res.Confidence, 1e-9)
}

func TestCombineDisagreement(t *testing.T) {
	primary := &StrategyResult{
		Category:      SustainableObjective,
		Confidence:    0.95,
		KeyIndicators: []string{"taxonomy aligned"},
		Method:        MethodSimulation,
	}
	secondary := &StrategyResult{
		Category:      PromotesCharacteristics,
		Confidence:    0.90,
		KeyIndicators: []string{"esg"},
		Method:        MethodRules,
	}

	res := Combine(primary, secondary)

	assert.False(t, res.Agreement)
	// Primary wins with a 20% confidence discount
	assert.Equal(t, SustainableObjective, res.Category)
	assert.InDelta(t, 0.76, res.Confidence, 1e-9)
	assert.Equal(t, []string{"taxonomy aligned", "esg"}, res.KeyIndicators)
}

func TestMergeIndicators(t *testing.T) {
	merged := mergeIndicators(
		[]string{"a", "b", "c"},
		[]string{"b", "d", "a", "e"},
	)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, merged)

	assert.Empty(t, mergeIndicators(nil, nil))
}
