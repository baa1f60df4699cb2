package engine

import (
	"fmt"

	"github.com/fortis-br/integrity-engine/anomaly"
	"github.com/fortis-br/integrity-engine/dedup"
	"github.com/fortis-br/integrity-engine/models"
)

// Options is the full configuration surface of the engine. There are no
// hidden globals: every threshold the engine consults lives here, and an
// out-of-range value fails construction instead of being clamped.
type Options struct {
	// ContaminationRate is the fraction of a reference batch assumed
	// anomalous when fitting a baseline.
	ContaminationRate float64

	// NightHours are the cast hours treated as a temporal signal.
	NightHours []int

	// DuplicateGroupingKey selects how vote records identify a voter.
	DuplicateGroupingKey dedup.GroupingKey

	// ScoreBands calibrate the anomaly-rate to security-score step
	// function; FloorScore applies beyond the last band.
	ScoreBands []anomaly.ScoreBand
	FloorScore float64

	// ZoneConcentrationQuantile sets the per-batch cutoff above which a
	// vote's zone share counts as a geographic signal.
	ZoneConcentrationQuantile float64

	// ElectionWindow, when set, flags votes cast outside it as temporal
	// anomalies.
	ElectionWindow *anomaly.Window
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		ContaminationRate:         0.10,
		NightHours:                []int{0, 1, 2, 3, 4, 5},
		DuplicateGroupingKey:      dedup.GroupByVoterKey,
		ScoreBands:                anomaly.DefaultScoreBands,
		FloorScore:                anomaly.DefaultFloorScore,
		ZoneConcentrationQuantile: 0.95,
	}
}

// Validate checks every option and fails fast on the first problem.
// Configuration errors are programmer errors, never data errors.
func (o *Options) Validate() error {
	if o.ContaminationRate <= 0 || o.ContaminationRate >= 1 {
		return fmt.Errorf("%w: got %v", models.ErrInvalidContamination, o.ContaminationRate)
	}
	for _, h := range o.NightHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: got %d", models.ErrInvalidNightHour, h)
		}
	}
	if !o.DuplicateGroupingKey.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidGroupingKey, o.DuplicateGroupingKey)
	}
	if err := validateBands(o.ScoreBands, o.FloorScore); err != nil {
		return err
	}
	if o.ZoneConcentrationQuantile <= 0 || o.ZoneConcentrationQuantile >= 1 {
		return fmt.Errorf("%w: got %v", models.ErrInvalidQuantile, o.ZoneConcentrationQuantile)
	}
	if o.ElectionWindow != nil && !o.ElectionWindow.Closes.After(o.ElectionWindow.Opens) {
		return models.ErrInvalidWindow
	}
	return nil
}

func validateBands(bands []anomaly.ScoreBand, floor float64) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: no bands", models.ErrInvalidScoreBands)
	}
	prevRate := 0.0
	prevScore := 101.0
	for _, band := range bands {
		if band.MaxRate <= prevRate || band.MaxRate > 1 {
			return fmt.Errorf("%w: rate %v", models.ErrInvalidScoreBands, band.MaxRate)
		}
		if band.Score < 0 || band.Score > 100 || band.Score >= prevScore {
			return fmt.Errorf("%w: score %v", models.ErrInvalidScoreBands, band.Score)
		}
		prevRate = band.MaxRate
		prevScore = band.Score
	}
	if floor < 0 || floor > prevScore {
		return fmt.Errorf("%w: floor %v", models.ErrInvalidScoreBands, floor)
	}
	return nil
}

func (o *Options) nightSet() map[int]struct{} {
	set := make(map[int]struct{}, len(o.NightHours))
	for _, h := range o.NightHours {
		set[h] = struct{}{}
	}
	return set
}
