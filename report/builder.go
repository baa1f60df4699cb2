// Package report assembles validator, deduplicator, and scorer outputs
// into the structured integrity report consumed by dashboards.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/fortis-br/integrity-engine/anomaly"
	"github.com/fortis-br/integrity-engine/models"
)

// Recommendation texts. These strings are part of the report contract;
// downstream tooling matches on them.
const (
	RecommendInvestigate      = "high anomaly rate detected - investigate immediately"
	RecommendMonitor          = "moderate anomaly rate - monitor closely"
	RecommendTightenChecks    = "duplicate votes detected - tighten validation"
	RecommendReviewAccessLogs = "night-hour votes detected - review access logs"
	RecommendAllClear         = "operating within normal parameters"
)

// Builder turns scored batches into immutable integrity reports.
type Builder struct {
	bands []anomaly.ScoreBand
	floor float64
}

// NewBuilder creates a report builder with the given score calibration.
func NewBuilder(bands []anomaly.ScoreBand, floor float64) *Builder {
	return &Builder{bands: bands, floor: floor}
}

// Build composes one report from a batch assessment. An empty scope gets
// a generated batch ID. Reports are write-once; callers must not mutate
// the findings slice afterwards.
func (b *Builder) Build(scope string, assessment anomaly.Assessment, generatedAt time.Time) *models.IntegrityReport {
	if scope == "" {
		scope = "batch-" + uuid.NewString()
	}

	rep := &models.IntegrityReport{
		Scope:          scope,
		TotalRecords:   assessment.Total,
		Anomalies:      assessment.Findings,
		SecurityScore:  anomaly.SecurityScore(assessment.AnomalyRate, b.bands, b.floor),
		GeneratedAt:    generatedAt,
		SkippedRecords: assessment.Skipped,
		ErrorsFound:    assessment.Errors,
	}
	if rep.Anomalies == nil {
		rep.Anomalies = []models.AnomalyFinding{}
	}
	rep.Recommendations = Recommendations(assessment)
	return rep
}

// Recommendations derives the advice list from a batch assessment. The
// rules run in a fixed order and each appends at most one entry, so the
// same findings always yield the same list.
func Recommendations(assessment anomaly.Assessment) []string {
	recs := []string{}

	if assessment.AnomalyRate > 0.05 {
		recs = append(recs, RecommendInvestigate)
	} else if assessment.AnomalyRate > 0.02 {
		recs = append(recs, RecommendMonitor)
	}

	hasDuplicates := false
	hasNightVotes := false
	for _, f := range assessment.Findings {
		if f.Category == models.CategoryDuplicate {
			hasDuplicates = true
		}
		if night, ok := f.Evidence["is_night"].(bool); ok && night {
			hasNightVotes = true
		}
	}

	if hasDuplicates {
		recs = append(recs, RecommendTightenChecks)
	}
	if hasNightVotes {
		recs = append(recs, RecommendReviewAccessLogs)
	}

	if len(assessment.Findings) == 0 {
		recs = append(recs, RecommendAllClear)
	}
	return recs
}
