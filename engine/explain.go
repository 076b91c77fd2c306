package engine

import "strings"

// Explainability scoring constants. The score rewards results that a
// reviewer can trace: more matched indicators and higher confidence
// both make a classification easier to justify.
const (
	explainBase             = 0.6
	explainPerIndicator     = 0.06
	explainIndicatorCeiling = 0.3
	explainConfidenceWeight = 0.1
	fallbackExplainability  = 0.3
)

// ExplainabilityScore rates how well-evidenced a classification is,
// in [0, 1].
func ExplainabilityScore(keyIndicators []string, confidence float64) float64 {
	indicatorComponent := float64(len(keyIndicators)) * explainPerIndicator
	if indicatorComponent > explainIndicatorCeiling {
		indicatorComponent = explainIndicatorCeiling
	}

	score := explainBase + indicatorComponent + confidence*explainConfidenceWeight
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Risk factor messages, ordered by severity of the underlying signal
const (
	riskLowConfidence     = "Low confidence classification"
	riskGreenwashing      = "Potential greenwashing indicators"
	riskLimitedEvidence   = "Limited sustainability evidence"
	riskArticle9Threshold = "Article 9 classification requires high confidence"
	riskShortText         = "Limited text for comprehensive analysis"
	riskNone              = "No significant risks identified"
)

// AssessRisks evaluates a classification for reviewer attention. When
// no trigger fires it returns the single "no significant risks"
// sentinel rather than an empty list, so downstream consumers always
// have something to display.
func AssessRisks(text string, category Category, confidence float64, keyIndicators []string) []string {
	textLower := strings.ToLower(text)
	var risks []string

	if confidence < 0.7 {
		risks = append(risks, riskLowConfidence)
	}
	if strings.Contains(textLower, "greenwashing") || strings.Contains(textLower, "green washing") {
		risks = append(risks, riskGreenwashing)
	}
	if len(keyIndicators) < 2 {
		risks = append(risks, riskLimitedEvidence)
	}
	if category == SustainableObjective && confidence < 0.8 {
		risks = append(risks, riskArticle9Threshold)
	}
	if wordCount(text) < 50 {
		risks = append(risks, riskShortText)
	}

	if len(risks) == 0 {
		return []string{riskNone}
	}
	return risks
}
