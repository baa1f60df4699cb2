package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnomalyCategoryValid(t *testing.T) {
	for _, c := range []AnomalyCategory{CategoryTemporal, CategoryGeographic, CategoryDuplicate, CategoryVerification, CategoryOther} {
		assert.True(t, c.Valid())
	}
	assert.False(t, AnomalyCategory("BOGUS").Valid())
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Severity("CRITICAL").Valid())
}

func TestCheckVote(t *testing.T) {
	valid := VoteRecord{
		VoteID:     "vote-1",
		ElectionID: "E1",
		VoterKey:   "V1",
		CastAt:     time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, CheckVote(&valid))

	tests := []struct {
		name   string
		mutate func(*VoteRecord)
		want   error
	}{
		{name: "missing vote id", mutate: func(v *VoteRecord) { v.VoteID = "" }, want: ErrMissingVoteID},
		{name: "missing election id", mutate: func(v *VoteRecord) { v.ElectionID = "" }, want: ErrMissingElectionID},
		{name: "missing voter key", mutate: func(v *VoteRecord) { v.VoterKey = "" }, want: ErrMissingVoterKey},
		{name: "missing cast time", mutate: func(v *VoteRecord) { v.CastAt = time.Time{} }, want: ErrMissingCastTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := valid
			tt.mutate(&v)
			assert.ErrorIs(t, CheckVote(&v), tt.want)
		})
	}
}

func TestIntegrityReportAnomalyRate(t *testing.T) {
	empty := &IntegrityReport{}
	assert.Zero(t, empty.AnomalyRate())

	rep := &IntegrityReport{
		TotalRecords: 10,
		Anomalies: []AnomalyFinding{
			{SubjectID: "v1", Category: CategoryTemporal},
			{SubjectID: "v1", Category: CategoryVerification},
			{SubjectID: "v2", Category: CategoryDuplicate},
		},
	}
	assert.InDelta(t, 0.2, rep.AnomalyRate(), 1e-9, "findings on the same vote count once")
}
