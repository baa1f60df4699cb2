package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fortis-br/integrity-engine/models"
)

func validVoter() models.VoterRecord {
	return models.VoterRecord{
		NationalID:    "11144477735",
		FullName:      "Maria da Silva",
		BirthDate:     time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC),
		VotingZone:    12,
		VotingSection: 345,
		MotherName:    "Ana da Silva",
	}
}

func TestValidateVoter(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid record", func(t *testing.T) {
		rec := validVoter()
		result := ValidateVoter(&rec, now)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("bad national id", func(t *testing.T) {
		rec := validVoter()
		rec.NationalID = "11144477736"
		result := ValidateVoter(&rec, now)
		assert.False(t, result.IsValid)
		assert.Equal(t, "national_id", result.Errors[0].Field)
		assert.Equal(t, ReasonBadCheckDigit, result.Errors[0].Reason)
	})

	t.Run("multiple field errors", func(t *testing.T) {
		rec := validVoter()
		rec.VotingZone = 0
		rec.MotherName = "X"
		result := ValidateVoter(&rec, now)
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 2)
	})

	t.Run("bad optional fields are warnings", func(t *testing.T) {
		email := "not-an-email"
		phone := "123"
		rec := validVoter()
		rec.Email = &email
		rec.Phone = &phone
		result := ValidateVoter(&rec, now)
		assert.True(t, result.IsValid, "optional fields must not invalidate the record")
		assert.Len(t, result.Warnings, 2)
	})
}
