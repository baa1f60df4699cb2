package anomaly

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortis-br/integrity-engine/dedup"
	"github.com/fortis-br/integrity-engine/models"
)

// referenceBatch builds a batch of 100 votes in one zone, nightVotes of
// them cast at night, the rest mid-morning.
func referenceBatch(nightVotes int) Extraction {
	votes := make([]models.VoteRecord, 0, 100)
	for i := 0; i < 100; i++ {
		hour := 10
		if i < nightVotes {
			hour = 2
		}
		votes = append(votes, voteAt(fmt.Sprintf("vote-%03d", i), fmt.Sprintf("V%03d", i), "Z1", hour))
	}
	return Extract(votes, nil, dedup.GroupByVoterKey, defaultNight, nil)
}

func TestFitBaseline(t *testing.T) {
	ex := referenceBatch(5)

	baseline, err := FitBaseline(ex.Features, 0.10)
	require.NoError(t, err)

	assert.Equal(t, 100, baseline.Samples)
	assert.InDelta(t, 0.05, baseline.Means[0], 1e-9, "night flag mean")
	assert.Greater(t, baseline.Stddevs[0], 0.0)
	assert.Equal(t, 0.10, baseline.Contamination)
}

func TestFitBaseline_Empty(t *testing.T) {
	_, err := FitBaseline(nil, 0.10)
	assert.ErrorIs(t, err, models.ErrBaselineEmpty)
}

func TestBaseline_DistanceSeparatesOutliers(t *testing.T) {
	ex := referenceBatch(5)
	baseline, err := FitBaseline(ex.Features, 0.10)
	require.NoError(t, err)

	clean := Features{ZoneShare: 1}
	night := Features{ZoneShare: 1, IsNight: true}

	assert.Greater(t, baseline.Distance(night), baseline.Distance(clean))
	assert.Greater(t, baseline.Distance(night), baseline.Threshold)
	assert.LessOrEqual(t, baseline.Distance(clean), baseline.Threshold)
}

func TestEvaluateBaseline(t *testing.T) {
	baseline, err := FitBaseline(referenceBatch(5).Features, 0.10)
	require.NoError(t, err)

	votes := make([]models.VoteRecord, 0, 10)
	for i := 0; i < 10; i++ {
		hour := 11
		if i < 2 {
			hour = 3
		}
		votes = append(votes, voteAt(fmt.Sprintf("fresh-%d", i), fmt.Sprintf("W%d", i), "Z1", hour))
	}
	ex := Extract(votes, nil, dedup.GroupByVoterKey, defaultNight, nil)

	assessment := EvaluateBaseline(ex, baseline, 0.95)

	require.Len(t, assessment.Findings, 2)
	for _, f := range assessment.Findings {
		assert.Equal(t, models.CategoryTemporal, f.Category)
		assert.Contains(t, f.Evidence, "distance")
		assert.Contains(t, f.Evidence, "threshold")
	}
	assert.InDelta(t, 0.2, assessment.AnomalyRate, 1e-9)
}

func TestBaseline_Probability(t *testing.T) {
	baseline, err := FitBaseline(referenceBatch(5).Features, 0.10)
	require.NoError(t, err)

	clean := Features{ZoneShare: 1}
	night := Features{ZoneShare: 1, IsNight: true}

	assert.Zero(t, baseline.Probability(clean))
	p := baseline.Probability(night)
	assert.Greater(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}
