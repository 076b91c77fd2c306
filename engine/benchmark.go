package engine

// BenchmarkComparison positions a classification's confidence against
// the per-category industry baseline.
type BenchmarkComparison struct {
	CategoryBaseline float64 `json:"category_baseline"`
	IndustryAverage  float64 `json:"industry_average"`
	ConfidenceDelta  float64 `json:"confidence_delta"`
	PercentileRank   float64 `json:"percentile_rank"`
}

// CompareToBenchmark measures confidence against the category baseline.
// The percentile rank is a linear projection of confidence onto
// [5, 95]: 0.5 confidence maps to the 5th percentile and 0.95 or above
// to the 95th.
func CompareToBenchmark(benchmarks *Benchmarks, category Category, confidence float64) BenchmarkComparison {
	baseline := benchmarks.Baseline(category)

	percentile := (confidence - 0.5) * 200
	if percentile < 5 {
		percentile = 5
	}
	if percentile > 95 {
		percentile = 95
	}

	return BenchmarkComparison{
		CategoryBaseline: baseline,
		IndustryAverage:  benchmarks.industryAverage,
		ConfidenceDelta:  confidence - baseline,
		PercentileRank:   percentile,
	}
}
