package models

import "time"

// AnomalyCategory classifies what kind of irregularity a finding describes.
type AnomalyCategory string

const (
	CategoryTemporal     AnomalyCategory = "TEMPORAL"
	CategoryGeographic   AnomalyCategory = "GEOGRAPHIC"
	CategoryDuplicate    AnomalyCategory = "DUPLICATE"
	CategoryVerification AnomalyCategory = "VERIFICATION"
	CategoryOther        AnomalyCategory = "OTHER"
)

// Valid reports whether c is a known category.
func (c AnomalyCategory) Valid() bool {
	switch c {
	case CategoryTemporal, CategoryGeographic, CategoryDuplicate, CategoryVerification, CategoryOther:
		return true
	}
	return false
}

// Severity ranks how serious a finding is.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// AnomalyFinding is a single flagged irregularity. Findings are
// write-once: they are appended to reports and never mutated or
// individually deleted, so the audit trail stays intact.
type AnomalyFinding struct {
	SubjectID string                 `json:"subject_id"`
	Category  AnomalyCategory        `json:"category"`
	Severity  Severity               `json:"severity"`
	Score     float64                `json:"score"`
	Evidence  map[string]interface{} `json:"evidence,omitempty"`
}

// IntegrityReport is the composite output of a batch analysis. The JSON
// field names are a stable contract consumed by downstream dashboards
// and report generators; do not rename them.
type IntegrityReport struct {
	Scope           string           `json:"scope"`
	TotalRecords    int              `json:"total_records"`
	Anomalies       []AnomalyFinding `json:"anomalies"`
	SecurityScore   float64          `json:"security_score"`
	Recommendations []string         `json:"recommendations"`
	GeneratedAt     time.Time        `json:"generated_at"`

	// Data-quality counters. Skipped records are malformed inputs the
	// scorer could not evaluate; they are counted, never silently dropped.
	SkippedRecords int `json:"skipped_records"`
	ErrorsFound    int `json:"errors_found"`
}

// AnomalyRate is the proportion of analyzed records with at least one
// finding. Returns 0 for an empty report.
func (r *IntegrityReport) AnomalyRate() float64 {
	if r.TotalRecords == 0 {
		return 0
	}
	subjects := make(map[string]struct{}, len(r.Anomalies))
	for _, f := range r.Anomalies {
		subjects[f.SubjectID] = struct{}{}
	}
	return float64(len(subjects)) / float64(r.TotalRecords)
}
