package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleClassifierEmptyText(t *testing.T) {
	rc := NewRuleClassifier(nil)
	res := rc.Classify("")

	// All categories tie at the base score; declaration order breaks
	// the tie in favor of Article 6
	assert.Equal(t, NoPromotion, res.Category)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
	assert.Empty(t, res.KeyIndicators)
	assert.Equal(t, MethodRules, res.Method)
	assert.InDelta(t, 0.1, res.SustainabilityScore, 1e-9)
}

func TestRuleClassifierArticle8(t *testing.T) {
	rc := NewRuleClassifier(nil)
	text := "The fund promotes environmental and social characteristics through ESG screening and integration of sustainability data"
	res := rc.Classify(text)

	assert.Equal(t, PromotesCharacteristics, res.Category)
	// 4 keywords and 2 indicators: 0.1 + 4*0.15 + 2*0.10 = 0.90 base,
	// plus 15 words of length bonus
	assert.InDelta(t, 0.915, res.Confidence, 1e-9)
	assert.Equal(t, []string{"esg", "environmental", "social", "sustainability", "screening"}, res.KeyIndicators)
}

func TestRuleClassifierArticle9Dampening(t *testing.T) {
	rc := NewRuleClassifier(nil)
	text := "This Article 9 fund pursues impact investing, positive impact goals, measurable impact targets, and additionality evidence"
	res := rc.Classify(text)

	assert.Equal(t, SustainableObjective, res.Category)
	// Raw 0.45 clamps to the 0.50 floor, Article 9 dampening brings it
	// to 0.45, then 16 words and the "article 9" specificity term add
	// 0.016 + 0.02
	assert.InDelta(t, 0.486, res.Confidence, 1e-9)
}

func TestRuleClassifierExclusionsPenalizeNoPromotion(t *testing.T) {
	rc := NewRuleClassifier(nil)
	// "traditional" scores for Article 6 but the ESG exclusion terms
	// subtract more than the keyword adds
	res := rc.Classify("A traditional fund that also considers esg and green criteria")
	assert.NotEqual(t, NoPromotion, res.Category)

	res = rc.Classify("A traditional conventional fund following standard index methodology")
	assert.Equal(t, NoPromotion, res.Category)
}

func TestRuleClassifierIndicatorCap(t *testing.T) {
	rc := NewRuleClassifier(nil)
	text := "esg environmental social governance sustainability green responsible screening integration"
	res := rc.Classify(text)

	require.Equal(t, PromotesCharacteristics, res.Category)
	assert.Len(t, res.KeyIndicators, 5)
	assert.Equal(t, []string{"esg", "environmental", "social", "governance", "sustainability"}, res.KeyIndicators)
}

func TestRuleClassifierConfidenceCeiling(t *testing.T) {
	rc := NewRuleClassifier(nil)
	// Saturate every Article 8 signal plus all specificity terms
	text := strings.Repeat("word ", 200) +
		"sfdr article 8 taxonomy esg disclosure environmental social governance sustainability green responsible screening integration factor consideration"
	res := rc.Classify(text)

	assert.Equal(t, PromotesCharacteristics, res.Category)
	assert.LessOrEqual(t, res.Confidence, 0.95)
}

func TestRuleClassifierIdempotent(t *testing.T) {
	rc := NewRuleClassifier(nil)
	text := "An esg fund with impact investing and environmental screening"

	first := rc.Classify(text)
	second := rc.Classify(text)
	assert.Equal(t, first, second)
}

func TestRuleClassifierArticle9Monotonic(t *testing.T) {
	rc := NewRuleClassifier(nil)
	base := rc.Classify("The fund pursues impact through measurable impact targets")
	stronger := rc.Classify("The fund pursues impact through measurable impact targets and additionality and taxonomy aligned holdings")

	require.Equal(t, SustainableObjective, base.Category)
	require.Equal(t, SustainableObjective, stronger.Category)
	// Additional Article 9 evidence never lowers confidence
	assert.GreaterOrEqual(t, stronger.Confidence, base.Confidence)
}

func TestRuleClassifierSpecificityBonus(t *testing.T) {
	rc := NewRuleClassifier(nil)
	base := rc.Classify("environmental social governance screening")
	specific := rc.Classify("environmental social governance screening under sfdr")

	assert.Equal(t, base.Category, specific.Category)
	// "sfdr" adds 0.02, the extra two words add 0.002
	assert.InDelta(t, base.Confidence+0.022, specific.Confidence, 1e-9)
}
