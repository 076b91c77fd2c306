package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplainabilityScore(t *testing.T) {
	tests := []struct {
		name       string
		indicators int
		confidence float64
		want       float64
	}{
		{"no evidence", 0, 0.5, 0.65},
		{"two indicators", 2, 0.8, 0.80},
		{"indicator component capped at five", 8, 0.8, 0.98},
		{"overall cap", 8, 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indicators := make([]string, tt.indicators)
			got := ExplainabilityScore(indicators, tt.confidence)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAssessRisks(t *testing.T) {
	longText := strings.Repeat("The portfolio invests across global markets seeking returns. ", 10)

	tests := []struct {
		name       string
		text       string
		category   Category
		confidence float64
		indicators []string
		want       []string
	}{
		{
			name:       "no risks",
			text:       longText,
			category:   PromotesCharacteristics,
			confidence: 0.85,
			indicators: []string{"esg", "screening"},
			want:       []string{riskNone},
		},
		{
			name:       "low confidence and thin evidence",
			text:       longText,
			category:   PromotesCharacteristics,
			confidence: 0.60,
			indicators: []string{"esg"},
			want:       []string{riskLowConfidence, riskLimitedEvidence},
		},
		{
			name:       "greenwashing mention",
			text:       longText + " Critics allege greenwashing.",
			category:   PromotesCharacteristics,
			confidence: 0.85,
			indicators: []string{"esg", "screening"},
			want:       []string{riskGreenwashing},
		},
		{
			name:       "spaced greenwashing variant",
			text:       longText + " Concerns about green washing persist.",
			category:   PromotesCharacteristics,
			confidence: 0.85,
			indicators: []string{"esg", "screening"},
			want:       []string{riskGreenwashing},
		},
		{
			name:       "article 9 under high-confidence bar",
			text:       longText,
			category:   SustainableObjective,
			confidence: 0.75,
			indicators: []string{"impact investing", "taxonomy aligned"},
			want:       []string{riskArticle9Threshold},
		},
		{
			name:       "short text",
			text:       "Brief summary.",
			category:   PromotesCharacteristics,
			confidence: 0.85,
			indicators: []string{"esg", "screening"},
			want:       []string{riskShortText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessRisks(tt.text, tt.category, tt.confidence, tt.indicators)
			assert.Equal(t, tt.want, got)
		})
	}
}
