package engine

// ComplianceStatus values reported by the validator
const (
	StatusCompliant      = "Compliant"
	StatusReviewRequired = "Review Required"
)

// ComplianceCheck is the regulatory validation outcome for a
// classification: the SFDR provisions it rests on and whether the
// confidence clears the thresholds human reviewers expect.
type ComplianceCheck struct {
	Status                 string   `json:"status"`
	RegulatoryBasis        []string `json:"regulatory_basis"`
	ConfidenceThresholdMet bool     `json:"confidence_threshold_met"`
	ReviewRequired         bool     `json:"review_required"`
}

// regulatoryCitations maps each category to the SFDR provisions that
// justify the classification.
var regulatoryCitations = map[Category][]string{
	NoPromotion: {
		"SFDR Article 6 - Other financial products",
		"No specific sustainability promotion requirements",
	},
	PromotesCharacteristics: {
		"SFDR Article 8 - Products promoting E/S characteristics",
		"RTS Article 2 - Disclosure requirements for Article 8 products",
	},
	SustainableObjective: {
		"SFDR Article 9 - Products with sustainable investment objective",
		"RTS Article 3 - Disclosure requirements for Article 9 products",
		"Taxonomy Regulation alignment requirements",
	},
}

// Review thresholds. Article 8 and 9 classifications carry disclosure
// obligations, so low-confidence calls in those categories are flagged
// for human review. Article 9 demands the most scrutiny.
const (
	complianceThreshold     = 0.70
	article8ReviewThreshold = 0.70
	article9ReviewThreshold = 0.80
)

// ValidateCompliance checks a classification against SFDR review
// thresholds and attaches the supporting regulatory citations.
func ValidateCompliance(category Category, confidence float64) ComplianceCheck {
	reviewRequired := false
	switch category {
	case PromotesCharacteristics:
		reviewRequired = confidence < article8ReviewThreshold
	case SustainableObjective:
		reviewRequired = confidence < article9ReviewThreshold
	}

	status := StatusCompliant
	if reviewRequired {
		status = StatusReviewRequired
	}

	basis := regulatoryCitations[category]
	citations := make([]string, len(basis))
	copy(citations, basis)

	return ComplianceCheck{
		Status:                 status,
		RegulatoryBasis:        citations,
		ConfidenceThresholdMet: confidence >= complianceThreshold,
		ReviewRequired:         reviewRequired,
	}
}
