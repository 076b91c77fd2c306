package server

import (
	"sync"

	"github.com/veridis/sfdr-engine/engine"
)

// Metrics accumulates in-process classification counters. All methods
// are safe for concurrent use.
type Metrics struct {
	mu              sync.Mutex
	total           int64
	byCategory      map[string]int64
	fallbacks       int64
	reviewsRequired int64
	totalSeconds    float64
}

// NewMetrics returns an empty metrics accumulator
func NewMetrics() *Metrics {
	return &Metrics{byCategory: make(map[string]int64)}
}

// Record tallies one classification result
func (m *Metrics) Record(res *engine.ClassificationResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	m.byCategory[res.Classification.String()]++
	m.totalSeconds += res.ProcessingTime
	if res.AuditTrail != nil && res.AuditTrail.FallbackUsed {
		m.fallbacks++
	}
	if res.RegulatoryCompliance.ReviewRequired {
		m.reviewsRequired++
	}
}

// MetricsSnapshot is the JSON shape served by the metrics endpoint
type MetricsSnapshot struct {
	TotalClassifications int64            `json:"total_classifications"`
	ByCategory           map[string]int64 `json:"by_category"`
	FallbacksUsed        int64            `json:"fallbacks_used"`
	ReviewsRequired      int64            `json:"reviews_required"`
	AvgProcessingSeconds float64          `json:"avg_processing_seconds"`
}

// Snapshot returns a point-in-time copy of the counters
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	byCategory := make(map[string]int64, len(m.byCategory))
	for k, v := range m.byCategory {
		byCategory[k] = v
	}

	avg := 0.0
	if m.total > 0 {
		avg = m.totalSeconds / float64(m.total)
	}

	return MetricsSnapshot{
		TotalClassifications: m.total,
		ByCategory:           byCategory,
		FallbacksUsed:        m.fallbacks,
		ReviewsRequired:      m.reviewsRequired,
		AvgProcessingSeconds: avg,
	}
}
