package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCompliance(t *testing.T) {
	tests := []struct {
		name           string
		category       Category
		confidence     float64
		wantStatus     string
		wantThreshold  bool
		wantReview     bool
		wantBasisCount int
	}{
		{"article 6 low confidence", NoPromotion, 0.55, StatusCompliant, false, false, 2},
		{"article 6 high confidence", NoPromotion, 0.90, StatusCompliant, true, false, 2},
		{"article 8 below review threshold", PromotesCharacteristics, 0.65, StatusReviewRequired, false, true, 2},
		{"article 8 at review threshold", PromotesCharacteristics, 0.70, StatusCompliant, true, false, 2},
		{"article 9 below review threshold", SustainableObjective, 0.75, StatusReviewRequired, true, true, 3},
		{"article 9 at review threshold", SustainableObjective, 0.80, StatusCompliant, true, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := ValidateCompliance(tt.category, tt.confidence)
			assert.Equal(t, tt.wantStatus, check.Status)
			assert.Equal(t, tt.wantThreshold, check.ConfidenceThresholdMet)
			assert.Equal(t, tt.wantReview, check.ReviewRequired)
			assert.Len(t, check.RegulatoryBasis, tt.wantBasisCount)
		})
	}
}

func TestValidateComplianceCitations(t *testing.T) {
	check := ValidateCompliance(SustainableObjective, 0.9)
	assert.Contains(t, check.RegulatoryBasis, "SFDR Article 9 - Products with sustainable investment objective")
	assert.Contains(t, check.RegulatoryBasis, "Taxonomy Regulation alignment requirements")

	// Returned citations are a copy; mutating them must not corrupt the
	// shared table
	check.RegulatoryBasis[0] = "mutated"
	fresh := ValidateCompliance(SustainableObjective, 0.9)
	assert.Equal(t, "SFDR Article 9 - Products with sustainable investment objective", fresh.RegulatoryBasis[0])
}
