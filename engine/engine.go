package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/veridis/sfdr-engine/errors"
	"github.com/veridis/sfdr-engine/logger"
)

// Options configures an Engine. The zero value is fully usable: no
// external model, built-in framework and benchmark tables, and the
// global logger.
type Options struct {
	// Model is the primary-strategy classifier. Nil means the primary
	// strategy runs on rules alone.
	Model ModelClassifier
	// ModelName is recorded in audit trails. Defaults to the rule
	// method when no model is configured.
	ModelName string
	// Framework overrides the built-in SFDR framework table.
	Framework *Framework
	// Benchmarks overrides the built-in industry benchmark table.
	Benchmarks *Benchmarks
	// Logger overrides the global logger.
	Logger *zap.SugaredLogger
}

// Engine orchestrates the full classification pipeline: feature
// extraction, dual-strategy classification, ensemble combination,
// compliance validation, benchmarking, and risk assessment. Safe for
// concurrent use; all tables are read-only after construction.
type Engine struct {
	primary    *PrimaryStrategy
	secondary  *RuleClassifier
	benchmarks *Benchmarks
	modelName  string
	log        *zap.SugaredLogger
}

// New builds an engine from options
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Logger
	}

	framework := opts.Framework
	if framework == nil {
		framework = DefaultFramework()
	}
	benchmarks := opts.Benchmarks
	if benchmarks == nil {
		benchmarks = DefaultBenchmarks()
	}

	rules := NewRuleClassifier(framework)

	modelName := opts.ModelName
	if modelName == "" {
		if opts.Model != nil {
			modelName = MethodSimulation
		} else {
			modelName = MethodRules
		}
	}

	return &Engine{
		primary:    NewPrimaryStrategy(opts.Model, rules, log),
		secondary:  rules,
		benchmarks: benchmarks,
		modelName:  modelName,
		log:        log,
	}
}

// Classify runs the full pipeline on a document. It always returns a
// usable result: any internal error or panic produces the conservative
// fallback classification with the failure recorded in the audit trail.
func (e *Engine) Classify(ctx context.Context, text, documentType string) *ClassificationResult {
	start := time.Now()

	result, err := func() (result *ClassificationResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Newf("classification panic: %v", r)
			}
		}()
		return e.classify(ctx, text, documentType)
	}()
	if err != nil {
		if e.log != nil {
			e.log.Errorw("Classification failed, returning fallback result",
				"document_type", documentType,
				"error", err)
		}
		return e.fallbackResult(documentType, err, time.Since(start))
	}
	return result
}

func (e *Engine) classify(ctx context.Context, text, documentType string) (*ClassificationResult, error) {
	start := time.Now()
	trail := newAuditTrail(documentType, e.modelName)

	features := ExtractFeatures(text)
	trail.FeaturesExtracted = len(features)

	primary := e.primary.Classify(ctx, text, features)
	secondary := e.secondary.Classify(text)
	trail.PrimaryConfidence = primary.Confidence
	trail.SecondaryConfidence = secondary.Confidence

	ensemble := Combine(primary, secondary)
	trail.FinalConfidence = ensemble.Confidence

	compliance := ValidateCompliance(ensemble.Category, ensemble.Confidence)
	trail.ComplianceStatus = compliance.Status

	benchmark := CompareToBenchmark(e.benchmarks, ensemble.Category, ensemble.Confidence)
	risks := AssessRisks(text, ensemble.Category, ensemble.Confidence, ensemble.KeyIndicators)

	elapsed := time.Since(start)
	trail.ProcessingTime = elapsed.Seconds()

	if e.log != nil {
		e.log.Infow("Classification complete",
			"classification_id", trail.ClassificationID,
			"category", ensemble.Category.String(),
			"confidence", ensemble.Confidence,
			"agreement", ensemble.Agreement,
			"status", compliance.Status,
			"duration_ms", elapsed.Milliseconds())
	}

	return &ClassificationResult{
		Classification:       ensemble.Category,
		Confidence:           ensemble.Confidence,
		Reasoning:            ensemble.Reasoning,
		SustainabilityScore:  ensemble.SustainabilityScore,
		KeyIndicators:        ensemble.KeyIndicators,
		RiskFactors:          risks,
		RegulatoryCompliance: compliance,
		BenchmarkComparison:  benchmark,
		ExplainabilityScore:  ExplainabilityScore(ensemble.KeyIndicators, ensemble.Confidence),
		ProcessingTime:       elapsed.Seconds(),
		AuditTrail:           trail,
	}, nil
}

// fallbackResult is the conservative Article 6 result returned when
// the pipeline itself fails. Confidence is fixed at 0.5 so downstream
// thresholds always route the document to review.
func (e *Engine) fallbackResult(documentType string, cause error, elapsed time.Duration) *ClassificationResult {
	const fallbackConfidence = 0.5

	trail := newAuditTrail(documentType, e.modelName)
	trail.FinalConfidence = fallbackConfidence
	trail.ComplianceStatus = StatusReviewRequired
	trail.ProcessingTime = elapsed.Seconds()
	trail.Error = cause.Error()
	trail.FallbackUsed = true

	return &ClassificationResult{
		Classification:      NoPromotion,
		Confidence:          fallbackConfidence,
		Reasoning:           fmt.Sprintf("Fallback classification due to error: %v", cause),
		SustainabilityScore: 0,
		KeyIndicators:       []string{"fallback_classification"},
		RiskFactors:         []string{"Classification error occurred"},
		RegulatoryCompliance: ComplianceCheck{
			Status:                 StatusReviewRequired,
			RegulatoryBasis:        regulatoryCitations[NoPromotion],
			ConfidenceThresholdMet: false,
			ReviewRequired:         true,
		},
		BenchmarkComparison: CompareToBenchmark(e.benchmarks, NoPromotion, fallbackConfidence),
		ExplainabilityScore: fallbackExplainability,
		ProcessingTime:      elapsed.Seconds(),
		AuditTrail:          trail,
	}
}
