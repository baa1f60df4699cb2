package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortis-br/integrity-engine/anomaly"
	"github.com/fortis-br/integrity-engine/models"
)

func testBuilder() *Builder {
	return NewBuilder(anomaly.DefaultScoreBands, anomaly.DefaultFloorScore)
}

func finding(subject string, category models.AnomalyCategory, night bool) models.AnomalyFinding {
	return models.AnomalyFinding{
		SubjectID: subject,
		Category:  category,
		Severity:  models.SeverityMedium,
		Score:     0.25,
		Evidence:  map[string]interface{}{"is_night": night},
	}
}

func assessmentWith(total int, findings ...models.AnomalyFinding) anomaly.Assessment {
	flagged := make(map[string]struct{})
	for _, f := range findings {
		flagged[f.SubjectID] = struct{}{}
	}
	a := anomaly.Assessment{
		Findings:   findings,
		FlaggedIDs: flagged,
		Total:      total,
	}
	if total > 0 {
		a.AnomalyRate = float64(len(flagged)) / float64(total)
	}
	return a
}

func TestBuild_EmptyBatch(t *testing.T) {
	rep := testBuilder().Build("E1", assessmentWith(0), time.Now().UTC())

	assert.Equal(t, "E1", rep.Scope)
	assert.Equal(t, 0, rep.TotalRecords)
	assert.Equal(t, 100.0, rep.SecurityScore)
	assert.Empty(t, rep.Anomalies)
	assert.Equal(t, []string{RecommendAllClear}, rep.Recommendations)
}

func TestBuild_GeneratesScopeWhenEmpty(t *testing.T) {
	rep := testBuilder().Build("", assessmentWith(0), time.Now().UTC())
	assert.NotEmpty(t, rep.Scope)
	assert.Contains(t, rep.Scope, "batch-")
}

func TestBuild_MarshalsWithContractFieldNames(t *testing.T) {
	rep := testBuilder().Build("E1", assessmentWith(10, finding("vote-1", models.CategoryTemporal, true)), time.Now().UTC())

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, field := range []string{"scope", "total_records", "anomalies", "security_score", "recommendations", "generated_at", "skipped_records", "errors_found"} {
		assert.Contains(t, decoded, field)
	}
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name       string
		assessment anomaly.Assessment
		want       []string
	}{
		{
			name:       "no findings",
			assessment: assessmentWith(100),
			want:       []string{RecommendAllClear},
		},
		{
			name: "high anomaly rate",
			assessment: assessmentWith(100,
				finding("v1", models.CategoryVerification, false),
				finding("v2", models.CategoryVerification, false),
				finding("v3", models.CategoryVerification, false),
				finding("v4", models.CategoryVerification, false),
				finding("v5", models.CategoryVerification, false),
				finding("v6", models.CategoryVerification, false),
			),
			want: []string{RecommendInvestigate},
		},
		{
			name: "moderate anomaly rate",
			assessment: assessmentWith(100,
				finding("v1", models.CategoryVerification, false),
				finding("v2", models.CategoryVerification, false),
				finding("v3", models.CategoryVerification, false),
			),
			want: []string{RecommendMonitor},
		},
		{
			name: "duplicates and night votes",
			assessment: assessmentWith(100,
				finding("v1", models.CategoryDuplicate, false),
				finding("v2", models.CategoryTemporal, true),
			),
			want: []string{RecommendTightenChecks, RecommendReviewAccessLogs},
		},
		{
			name: "high rate with duplicates",
			assessment: assessmentWith(10,
				finding("v1", models.CategoryDuplicate, false),
			),
			want: []string{RecommendInvestigate, RecommendTightenChecks},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommendations(tt.assessment))
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	assessment := assessmentWith(50,
		finding("v1", models.CategoryDuplicate, false),
		finding("v2", models.CategoryTemporal, true),
	)

	first := testBuilder().Build("E1", assessment, time.Unix(0, 0).UTC())
	second := testBuilder().Build("E1", assessment, time.Unix(0, 0).UTC())

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}
