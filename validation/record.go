package validation

import (
	"strconv"
	"time"

	"github.com/fortis-br/integrity-engine/models"
)

// ValidateVoter runs every field validator against a voter record and
// aggregates the outcome. Required-field failures invalidate the record;
// failures on the optional email and phone fields are warnings only.
func ValidateVoter(rec *models.VoterRecord, now time.Time) *Result {
	result := NewResult()

	if ok, reason := ValidateNationalID(rec.NationalID); !ok {
		result.AddError("national_id", reason)
	}
	if CleanName(rec.FullName) == "" {
		result.AddError("full_name", ReasonTooShort)
	}
	if ok, reason := ValidateBirthDate(rec.BirthDate, now); !ok {
		result.AddError("birth_date", reason)
	}
	if ok, reason := ValidateMotherName(rec.MotherName); !ok {
		result.AddError("mother_name", reason)
	}
	if ok, reason := ValidateZoneOrSection(strconv.Itoa(rec.VotingZone)); !ok {
		result.AddError("voting_zone", reason)
	}
	if ok, reason := ValidateZoneOrSection(strconv.Itoa(rec.VotingSection)); !ok {
		result.AddError("voting_section", reason)
	}

	if rec.Email != nil {
		if ok, reason := ValidateEmail(*rec.Email); !ok {
			result.AddWarning("email", reason)
		}
	}
	if rec.Phone != nil {
		if ok, reason := ValidatePhone(*rec.Phone); !ok {
			result.AddWarning("phone", reason)
		}
	}

	return result
}
