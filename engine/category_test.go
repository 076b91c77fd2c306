package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Article 6", NoPromotion.String())
	assert.Equal(t, "Article 8", PromotesCharacteristics.String())
	assert.Equal(t, "Article 9", SustainableObjective.String())
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var back Category
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, c, back)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("article_8")
	require.NoError(t, err)
	assert.Equal(t, PromotesCharacteristics, c)

	_, err = ParseCategory("Article 7")
	assert.Error(t, err)
}
