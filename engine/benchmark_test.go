package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareToBenchmark(t *testing.T) {
	b := DefaultBenchmarks()

	tests := []struct {
		name           string
		category       Category
		confidence     float64
		wantBaseline   float64
		wantDelta      float64
		wantPercentile float64
	}{
		{"article 8 above baseline", PromotesCharacteristics, 0.85, 0.75, 0.10, 70},
		{"article 9 below baseline", SustainableObjective, 0.80, 0.85, -0.05, 60},
		{"percentile floor", NoPromotion, 0.50, 0.65, -0.15, 5},
		{"percentile ceiling", SustainableObjective, 0.95, 0.85, 0.10, 90},
		{"above ceiling clamps", SustainableObjective, 1.0, 0.85, 0.15, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := CompareToBenchmark(b, tt.category, tt.confidence)
			assert.InDelta(t, tt.wantBaseline, cmp.CategoryBaseline, 1e-9)
			assert.InDelta(t, 0.72, cmp.IndustryAverage, 1e-9)
			assert.InDelta(t, tt.wantDelta, cmp.ConfidenceDelta, 1e-9)
			assert.InDelta(t, tt.wantPercentile, cmp.PercentileRank, 1e-9)
		})
	}
}
