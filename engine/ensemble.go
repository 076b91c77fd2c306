package engine

import "fmt"

// Combine merges the primary and secondary strategy results.
//
// When both strategies pick the same category the ensemble keeps it
// with boosted confidence. On disagreement the primary's category wins
// with its confidence discounted; key indicators from both strategies
// are merged either way.
func Combine(primary, secondary *StrategyResult) *EnsembleResult {
	agreement := primary.Category == secondary.Category

	var confidence float64
	var reasoning string
	if agreement {
		confidence = primary.Confidence*0.7 + secondary.Confidence*0.3 + 0.10
		if confidence > 0.95 {
			confidence = 0.95
		}
		reasoning = fmt.Sprintf("Both strategies agree on %s. Primary: %s Secondary: %s",
			primary.Category, primary.Reasoning, secondary.Reasoning)
	} else {
		confidence = primary.Confidence * 0.8
		reasoning = fmt.Sprintf("Strategies disagree (%s vs %s); primary strategy takes precedence. Primary: %s",
			primary.Category, secondary.Category, primary.Reasoning)
	}

	return &EnsembleResult{
		StrategyResult: StrategyResult{
			Category:            primary.Category,
			Confidence:          confidence,
			Reasoning:           reasoning,
			KeyIndicators:       mergeIndicators(primary.KeyIndicators, secondary.KeyIndicators),
			SustainabilityScore: (primary.SustainabilityScore + secondary.SustainabilityScore) / 2,
			Method:              primary.Method,
		},
		Agreement: agreement,
	}
}

// mergeIndicators unions two indicator lists preserving first-seen order
func mergeIndicators(primary, secondary []string) []string {
	merged := make([]string, 0, len(primary)+len(secondary))
	seen := make(map[string]bool)
	for _, list := range [][]string{primary, secondary} {
		for _, ind := range list {
			if !seen[ind] {
				merged = append(merged, ind)
				seen[ind] = true
			}
		}
	}
	return merged
}
