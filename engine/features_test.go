package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text yields empty set",
			text: "",
			want: []string{},
		},
		{
			name: "no vocabulary matches",
			text: "A diversified portfolio of large-cap equities.",
			want: []string{},
		},
		{
			name: "case insensitive matching",
			text: "Our ESG approach addresses CLIMATE and Governance concerns.",
			want: []string{"governance", "esg", "climate"},
		},
		{
			name: "substring containment matches compound terms",
			text: "The strategy targets measurable impact and taxonomy aligned assets.",
			want: []string{"measurable impact", "taxonomy aligned"},
		},
		{
			name: "duplicates removed, scan order preserved",
			text: "esg esg environmental environmental carbon",
			want: []string{"environmental", "esg", "carbon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFeatures(tt.text)
			assert.Equal(t, FeatureSet(tt.want), got)
		})
	}
}

func TestExtractFeaturesScanOrder(t *testing.T) {
	// ESG vocabulary is scanned before the impact vocabulary regardless
	// of term position in the document
	got := ExtractFeatures("impact investing with carbon reduction")
	assert.Equal(t, FeatureSet{"carbon", "impact investing"}, got)
}
