package engine

// CategoryProfile holds the keyword, indicator, and exclusion lists the
// rule-based scorer matches against for one category. Keywords carry a
// stronger signal weight than indicators; exclusion terms (only present
// on NoPromotion) signal sustainability promotion and therefore count
// against a "no promotion" classification.
type CategoryProfile struct {
	Keywords           []string
	Indicators         []string
	Exclusions         []string
	BaselineConfidence float64
}

// Framework is the SFDR regulatory framework table. Constructed once at
// startup and shared read-only across all classification requests.
type Framework struct {
	profiles map[Category]CategoryProfile
}

// Profile returns the profile for a category
func (f *Framework) Profile(c Category) CategoryProfile {
	return f.profiles[c]
}

// DefaultFramework returns the built-in SFDR framework table
func DefaultFramework() *Framework {
	return &Framework{
		profiles: map[Category]CategoryProfile{
			NoPromotion: {
				Keywords:           []string{"traditional", "conventional", "standard"},
				Exclusions:         []string{"sustainability", "esg", "green", "impact"},
				BaselineConfidence: 0.65,
			},
			PromotesCharacteristics: {
				Keywords:           []string{"esg", "environmental", "social", "governance", "sustainability", "green", "responsible"},
				Indicators:         []string{"screening", "integration", "factor", "consideration"},
				BaselineConfidence: 0.75,
			},
			SustainableObjective: {
				Keywords:           []string{"impact", "sustainable objective", "positive contribution", "taxonomy aligned"},
				Indicators:         []string{"investment objective", "measurable impact", "do no significant harm", "additionality"},
				BaselineConfidence: 0.85,
			},
		},
	}
}

// Benchmarks holds per-category confidence baselines used for
// benchmark comparison. Read-only after construction.
type Benchmarks struct {
	baselines       map[Category]float64
	industryAverage float64
}

// DefaultBenchmarks returns the built-in industry benchmark table
func DefaultBenchmarks() *Benchmarks {
	return &Benchmarks{
		baselines: map[Category]float64{
			NoPromotion:             0.65,
			PromotesCharacteristics: 0.75,
			SustainableObjective:    0.85,
		},
		industryAverage: 0.72,
	}
}

// Baseline returns the baseline confidence for a category, falling back
// to the industry average when the category has no entry.
func (b *Benchmarks) Baseline(c Category) float64 {
	if baseline, ok := b.baselines[c]; ok {
		return baseline
	}
	return b.industryAverage
}
