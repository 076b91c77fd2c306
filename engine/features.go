package engine

import "strings"

// FeatureSet is the ordered sequence of vocabulary terms found in a
// document. Insertion order is scan order; duplicates are removed.
type FeatureSet []string

// esgTerms and impactTerms form the fixed extraction vocabulary.
// Matching is case-insensitive substring containment: no stemming, no
// tokenization.
var esgTerms = []string{
	"environmental", "social", "governance", "sustainability", "esg",
	"green", "renewable", "carbon", "emission", "climate", "biodiversity",
	"social impact", "human rights", "diversity", "inclusion",
	"board independence", "transparency", "ethics", "compliance",
}

var impactTerms = []string{
	"impact investing", "sustainable development goals", "sdg",
	"positive impact", "measurable impact", "additionality",
	"do no significant harm", "dnsh", "taxonomy aligned",
}

// ExtractFeatures scans text for the ESG and impact vocabularies.
// Empty text yields an empty FeatureSet; there is no failure mode.
func ExtractFeatures(text string) FeatureSet {
	textLower := strings.ToLower(text)
	features := make(FeatureSet, 0, 8)
	seen := make(map[string]bool)

	for _, term := range esgTerms {
		if strings.Contains(textLower, term) && !seen[term] {
			features = append(features, term)
			seen[term] = true
		}
	}
	for _, term := range impactTerms {
		if strings.Contains(textLower, term) && !seen[term] {
			features = append(features, term)
			seen[term] = true
		}
	}

	return features
}

// wordCount counts whitespace-separated words, matching the length
// heuristics used by confidence scoring and risk assessment.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
