package anomaly

import "github.com/fortis-br/integrity-engine/models"

// ScoreBand maps an anomaly-rate ceiling to a security score. Bands are
// calibration points, not hard-coded policy; callers may tune them as
// long as they stay monotonic.
type ScoreBand struct {
	MaxRate float64
	Score   float64
}

// DefaultScoreBands are the reference calibration: under 1% anomalous
// scores 95, under 5% scores 85, under 10% scores 70.
var DefaultScoreBands = []ScoreBand{
	{MaxRate: 0.01, Score: 95},
	{MaxRate: 0.05, Score: 85},
	{MaxRate: 0.10, Score: 70},
}

// DefaultFloorScore applies when the anomaly rate exceeds every band.
const DefaultFloorScore = 50.0

// SecurityScore converts an anomaly rate into a 0-100 health score via
// a monotonic step function over the given bands. A rate of exactly
// zero scores 100.
func SecurityScore(anomalyRate float64, bands []ScoreBand, floor float64) float64 {
	if anomalyRate <= 0 {
		return 100
	}
	for _, band := range bands {
		if anomalyRate < band.MaxRate {
			return band.Score
		}
	}
	return floor
}

// Assessment is the outcome of scoring one batch.
type Assessment struct {
	Findings    []models.AnomalyFinding
	FlaggedIDs  map[string]struct{}
	Total       int
	Skipped     int
	Errors      int
	AnomalyRate float64
}

// EvaluateHeuristic scores an extracted batch with fixed thresholds: a
// vote is flagged when any signal fires. Findings come back in input
// order, one per flagged vote, with every fired category in evidence.
func EvaluateHeuristic(ex Extraction, zoneQuantile float64) Assessment {
	threshold := ZoneShareThreshold(ex.Features, zoneQuantile)

	assessment := Assessment{
		FlaggedIDs: make(map[string]struct{}),
		Total:      len(ex.Features),
		Skipped:    ex.Skipped,
		Errors:     ex.Errors,
	}

	for _, f := range ex.Features {
		fired := f.Signals(threshold)
		if len(fired) == 0 {
			continue
		}

		category, severity := Classify(f, fired, threshold)
		score := float64(len(fired)) / float64(len(categoryPriority))

		assessment.FlaggedIDs[f.VoteID] = struct{}{}
		assessment.Findings = append(assessment.Findings, models.AnomalyFinding{
			SubjectID: f.VoteID,
			Category:  category,
			Severity:  severity,
			Score:     score,
			Evidence:  evidence(f, fired),
		})
	}

	if assessment.Total > 0 {
		assessment.AnomalyRate = float64(len(assessment.FlaggedIDs)) / float64(assessment.Total)
	}
	return assessment
}

func evidence(f Features, fired []models.AnomalyCategory) map[string]interface{} {
	cats := make([]string, len(fired))
	for i, c := range fired {
		cats[i] = string(c)
	}
	ev := map[string]interface{}{
		"categories":    cats,
		"hour":          f.Hour,
		"is_night":      f.IsNight,
		"zone_id":       f.ZoneID,
		"zone_share":    f.ZoneShare,
		"has_duplicate": f.HasDuplicate,
		"is_unverified": f.IsUnverified,
	}
	if f.OutsideWindow {
		ev["outside_window"] = true
	}
	return ev
}
