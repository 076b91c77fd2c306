package engine

// ClassificationResult is the complete disclosure classification for a
// single document: the ensemble decision plus compliance, benchmark,
// risk, and audit annotations.
type ClassificationResult struct {
	Classification       Category            `json:"classification"`
	Confidence           float64             `json:"confidence"`
	Reasoning            string              `json:"reasoning"`
	SustainabilityScore  float64             `json:"sustainability_score"`
	KeyIndicators        []string            `json:"key_indicators"`
	RiskFactors          []string            `json:"risk_factors"`
	RegulatoryCompliance ComplianceCheck     `json:"regulatory_compliance"`
	BenchmarkComparison  BenchmarkComparison `json:"benchmark_comparison"`
	ExplainabilityScore  float64             `json:"explainability_score"`
	ProcessingTime       float64             `json:"processing_time_seconds"`
	AuditTrail           *AuditTrail         `json:"audit_trail"`
}
