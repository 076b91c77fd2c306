package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veridis/sfdr-engine/version"
)

// AuditTrail records the full provenance of one classification run for
// regulatory traceability. IDs are UUID-based so concurrent
// classifications never collide.
type AuditTrail struct {
	ClassificationID    string    `json:"classification_id"`
	Timestamp           time.Time `json:"timestamp"`
	DocumentType        string    `json:"document_type"`
	EngineVersion       string    `json:"engine_version"`
	ModelUsed           string    `json:"model_used"`
	FeaturesExtracted   int       `json:"features_extracted"`
	PrimaryConfidence   float64   `json:"primary_confidence"`
	SecondaryConfidence float64   `json:"secondary_confidence"`
	FinalConfidence     float64   `json:"final_confidence"`
	ComplianceStatus    string    `json:"compliance_status"`
	ProcessingTime      float64   `json:"processing_time_seconds"`
	Error               string    `json:"error,omitempty"`
	FallbackUsed        bool      `json:"fallback_used,omitempty"`
}

// newClassificationID mints a unique audit identifier
func newClassificationID() string {
	return fmt.Sprintf("clf_%s", uuid.NewString())
}

// newAuditTrail starts a trail for a classification run
func newAuditTrail(documentType, modelUsed string) *AuditTrail {
	return &AuditTrail{
		ClassificationID: newClassificationID(),
		Timestamp:        time.Now().UTC(),
		DocumentType:     documentType,
		EngineVersion:    version.EngineVersion,
		ModelUsed:        modelUsed,
	}
}
