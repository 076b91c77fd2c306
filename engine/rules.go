package engine

import (
	"fmt"
	"strings"
)

// specificityTerms boost rule-based confidence when the document uses
// regulatory language rather than generic marketing copy.
var specificityTerms = []string{"sfdr", "article 8", "article 9", "taxonomy", "esg disclosure"}

// Scoring weights for the rule-based classifier. Every category starts
// from the same base so an empty document produces a three-way tie
// resolved by declaration order.
const (
	ruleBaseScore       = 0.1
	ruleKeywordWeight   = 0.15
	ruleIndicatorWeight = 0.10
	ruleExclusionWeight = 0.10
)

// RuleClassifier scores a document against the SFDR framework table.
// It is deterministic, requires no credentials, and serves both as the
// secondary strategy and as the primary fallback when no external
// model is available.
type RuleClassifier struct {
	framework *Framework
}

// NewRuleClassifier builds a classifier over the given framework table,
// defaulting to the built-in table when nil.
func NewRuleClassifier(framework *Framework) *RuleClassifier {
	if framework == nil {
		framework = DefaultFramework()
	}
	return &RuleClassifier{framework: framework}
}

// Classify scores text against every category profile and returns the
// result for the highest-scoring category. Ties resolve in declaration
// order, so a document matching nothing classifies as NoPromotion.
func (r *RuleClassifier) Classify(text string) *StrategyResult {
	textLower := strings.ToLower(text)

	scores := make(map[Category]float64, 3)
	matched := make(map[Category][]string, 3)

	for _, category := range Categories() {
		profile := r.framework.Profile(category)
		score := ruleBaseScore
		var hits []string

		for _, kw := range profile.Keywords {
			if strings.Contains(textLower, kw) {
				score += ruleKeywordWeight
				hits = append(hits, kw)
			}
		}
		for _, ind := range profile.Indicators {
			if strings.Contains(textLower, ind) {
				score += ruleIndicatorWeight
				hits = append(hits, ind)
			}
		}
		for _, excl := range profile.Exclusions {
			if strings.Contains(textLower, excl) {
				score -= ruleExclusionWeight
			}
		}

		scores[category] = score
		matched[category] = hits
	}

	best := NoPromotion
	for _, category := range Categories() {
		if scores[category] > scores[best] {
			best = category
		}
	}

	indicators := matched[best]
	if len(indicators) > 5 {
		indicators = indicators[:5]
	}
	if indicators == nil {
		indicators = []string{}
	}

	return &StrategyResult{
		Category:            best,
		Confidence:          r.confidence(best, scores[best], textLower),
		Reasoning:           r.reasoning(best, scores[best], len(matched[best])),
		KeyIndicators:       indicators,
		SustainabilityScore: sustainabilityFromScores(scores[PromotesCharacteristics], scores[SustainableObjective]),
		Method:              MethodRules,
	}
}

// confidence maps a raw category score into [0.50, 0.95], dampens
// under-evidenced Article 9 calls, and rewards document length and
// regulatory specificity.
func (r *RuleClassifier) confidence(category Category, rawScore float64, textLower string) float64 {
	base := rawScore
	if base > 0.95 {
		base = 0.95
	}
	if base < 0.50 {
		base = 0.50
	}

	if category == SustainableObjective && base < 0.8 {
		base *= 0.9
	}

	lengthBonus := float64(wordCount(textLower)) / 1000.0
	if lengthBonus > 0.05 {
		lengthBonus = 0.05
	}

	specificityBonus := 0.0
	for _, term := range specificityTerms {
		if strings.Contains(textLower, term) {
			specificityBonus += 0.02
		}
	}

	confidence := base + lengthBonus + specificityBonus
	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}

func (r *RuleClassifier) reasoning(category Category, score float64, matches int) string {
	return fmt.Sprintf("Rule-based analysis classified the product as %s (score %.2f, %d framework matches)",
		category, score, matches)
}

// sustainabilityFromScores converts the Article 8 and Article 9 raw
// scores into a single [0,1] sustainability score. Article 9 evidence
// weighs twice as heavily as Article 8 evidence.
func sustainabilityFromScores(article8Score, article9Score float64) float64 {
	score := (article8Score*0.5 + article9Score*1.0) / 1.5
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
