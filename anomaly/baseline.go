package anomaly

import (
	"math"

	"github.com/fortis-br/integrity-engine/models"
)

// featureDims is the numeric feature vector used by the statistical
// outlier mode: night flag, outside-window flag, zone share, duplicate
// flag, unverified flag.
const featureDims = 5

// capZ bounds the contribution of a dimension whose reference stddev is
// zero but whose observed value deviates from the reference mean.
const capZ = 10.0

// Baseline is a fitted reference boundary: per-dimension mean/stddev and
// a distance threshold at the contamination quantile. The math is
// deliberately plain (standardized distance, not a learned model) so an
// auditor can recompute every flag by hand.
type Baseline struct {
	Means         [featureDims]float64 `json:"means"`
	Stddevs       [featureDims]float64 `json:"stddevs"`
	Threshold     float64              `json:"threshold"`
	Contamination float64              `json:"contamination"`
	Samples       int                  `json:"samples"`
}

func vector(f Features) [featureDims]float64 {
	var v [featureDims]float64
	if f.IsNight {
		v[0] = 1
	}
	if f.OutsideWindow {
		v[1] = 1
	}
	v[2] = f.ZoneShare
	if f.HasDuplicate {
		v[3] = 1
	}
	if f.IsUnverified {
		v[4] = 1
	}
	return v
}

// FitBaseline computes a reference boundary from a batch assumed to be
// mostly clean. The threshold is set so that roughly the contamination
// fraction of the reference itself would be flagged.
func FitBaseline(features []Features, contamination float64) (*Baseline, error) {
	if len(features) == 0 {
		return nil, models.ErrBaselineEmpty
	}

	b := &Baseline{
		Contamination: contamination,
		Samples:       len(features),
	}

	n := float64(len(features))
	for _, f := range features {
		v := vector(f)
		for d := 0; d < featureDims; d++ {
			b.Means[d] += v[d]
		}
	}
	for d := 0; d < featureDims; d++ {
		b.Means[d] /= n
	}

	for _, f := range features {
		v := vector(f)
		for d := 0; d < featureDims; d++ {
			diff := v[d] - b.Means[d]
			b.Stddevs[d] += diff * diff
		}
	}
	for d := 0; d < featureDims; d++ {
		b.Stddevs[d] = math.Sqrt(b.Stddevs[d] / n)
	}

	distances := make([]float64, len(features))
	for i, f := range features {
		distances[i] = b.Distance(f)
	}
	b.Threshold = Quantile(distances, 1-contamination)

	return b, nil
}

// Distance is the mean absolute z-score of a vote's feature vector
// against the baseline.
func (b *Baseline) Distance(f Features) float64 {
	v := vector(f)
	sum := 0.0
	for d := 0; d < featureDims; d++ {
		diff := math.Abs(v[d] - b.Means[d])
		if b.Stddevs[d] > 0 {
			sum += math.Min(diff/b.Stddevs[d], capZ)
		} else if diff > 0 {
			sum += capZ
		}
	}
	return sum / featureDims
}

// Probability converts a distance into a suspicion probability in
// [0,1], zero at or below the threshold.
func (b *Baseline) Probability(f Features) float64 {
	if b.Threshold <= 0 {
		if b.Distance(f) > 0 {
			return 1
		}
		return 0
	}
	p := (b.Distance(f) - b.Threshold) / b.Threshold
	return math.Max(0, math.Min(1, p))
}

// EvaluateBaseline scores an extracted batch against a fitted baseline.
// Votes whose distance exceeds the threshold are flagged; category and
// severity still come from the deterministic signal rules so findings
// stay explainable.
func EvaluateBaseline(ex Extraction, b *Baseline, zoneQuantile float64) Assessment {
	zoneThreshold := ZoneShareThreshold(ex.Features, zoneQuantile)

	assessment := Assessment{
		FlaggedIDs: make(map[string]struct{}),
		Total:      len(ex.Features),
		Skipped:    ex.Skipped,
		Errors:     ex.Errors,
	}

	for _, f := range ex.Features {
		distance := b.Distance(f)
		if distance <= b.Threshold {
			continue
		}

		fired := f.Signals(zoneThreshold)
		category := models.CategoryOther
		severity := RiskLevel(b.Probability(f))
		if len(fired) > 0 {
			category, severity = Classify(f, fired, zoneThreshold)
		}

		ev := evidence(f, fired)
		ev["distance"] = distance
		ev["threshold"] = b.Threshold

		assessment.FlaggedIDs[f.VoteID] = struct{}{}
		assessment.Findings = append(assessment.Findings, models.AnomalyFinding{
			SubjectID: f.VoteID,
			Category:  category,
			Severity:  severity,
			Score:     b.Probability(f),
			Evidence:  ev,
		})
	}

	if assessment.Total > 0 {
		assessment.AnomalyRate = float64(len(assessment.FlaggedIDs)) / float64(assessment.Total)
	}
	return assessment
}
