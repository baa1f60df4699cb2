package report

import (
	"math"
	"time"
)

// RollSummary reports the outcome of cleaning one voter roll: how many
// records survived validation and deduplication, what was dropped, and
// an overall data-quality score.
type RollSummary struct {
	TotalRecords      int       `json:"total_records"`
	KeptRecords       int       `json:"kept_records"`
	RemovedDuplicates int       `json:"removed_duplicates"`
	RemovedInvalid    int       `json:"removed_invalid"`
	ErrorsFound       int       `json:"errors_found"`
	Warnings          []string  `json:"warnings,omitempty"`
	QualityScore      float64   `json:"quality_score"`
	RollHash          string    `json:"roll_hash"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// QualityScore rates a cleaned roll from 0 to 100: the valid-record
// ratio minus an error penalty capped at 0.2.
func QualityScore(total, kept, errorsFound int) float64 {
	if total == 0 {
		return 0
	}
	validRatio := float64(kept) / float64(total)
	penalty := math.Min(0.2, float64(errorsFound)/float64(total))
	score := math.Max(0, validRatio-penalty)
	return math.Round(score*100*100) / 100
}
