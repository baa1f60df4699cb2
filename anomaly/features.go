// Package anomaly builds per-vote fraud signals and scores batches,
// either with fixed heuristics or against a fitted statistical baseline.
package anomaly

import (
	"sort"
	"time"

	"github.com/fortis-br/integrity-engine/dedup"
	"github.com/fortis-br/integrity-engine/models"
	"github.com/fortis-br/integrity-engine/validation"
)

// Window is an election's open voting window. Votes cast outside it are
// a temporal signal.
type Window struct {
	Opens  time.Time
	Closes time.Time
}

// Contains reports whether t falls inside the window.
func (w *Window) Contains(t time.Time) bool {
	return !t.Before(w.Opens) && !t.After(w.Closes)
}

// Features is the deterministic signal vector extracted for one vote.
type Features struct {
	VoteID        string
	VoterKey      string
	ZoneID        string
	Hour          int
	IsNight       bool
	OutsideWindow bool
	ZoneShare     float64
	HasDuplicate  bool
	IsUnverified  bool
}

// Extraction is the feature set for a batch plus the counts of records
// it could not score: Skipped for malformed input, Errors for records
// whose voter identity failed checksum validation.
type Extraction struct {
	Features []Features
	Skipped  int
	Errors   int
}

// Extract computes the feature vector for every well-formed vote in the
// batch. Malformed records are skipped and counted, never dropped
// silently. Extraction is order-independent: the same set of votes
// yields the same features for each vote regardless of input order.
func Extract(votes []models.VoteRecord, duplicates map[string][]string, key dedup.GroupingKey, nightHours map[int]struct{}, window *Window) Extraction {
	valid := make([]*models.VoteRecord, 0, len(votes))
	skipped := 0
	invalid := 0
	for i := range votes {
		if err := models.CheckVote(&votes[i]); err != nil {
			skipped++
			continue
		}
		// Pipelines that key votes by raw national ID get the checksum
		// applied to the key itself; failing records are excluded from
		// the valid set and counted, not scored.
		if key == dedup.GroupByNationalID {
			if ok, _ := validation.ValidateNationalID(votes[i].VoterKey); !ok {
				invalid++
				continue
			}
		}
		valid = append(valid, &votes[i])
	}

	votesPerZone := make(map[string]int, 16)
	for _, v := range valid {
		votesPerZone[v.ZoneID]++
	}
	total := float64(len(valid))

	dupVoters := make(map[string]struct{}, len(duplicates))
	for voter := range duplicates {
		dupVoters[voter] = struct{}{}
	}

	features := make([]Features, 0, len(valid))
	for _, v := range valid {
		voter := v.VoterKey
		if key == dedup.GroupByNationalID {
			voter = validation.NormalizeNationalID(voter)
		}
		_, hasDup := dupVoters[voter]

		hour := v.CastAt.Hour()
		_, night := nightHours[hour]

		features = append(features, Features{
			VoteID:        v.VoteID,
			VoterKey:      voter,
			ZoneID:        v.ZoneID,
			Hour:          hour,
			IsNight:       night,
			OutsideWindow: window != nil && !window.Contains(v.CastAt),
			ZoneShare:     float64(votesPerZone[v.ZoneID]) / total,
			HasDuplicate:  hasDup,
			IsUnverified:  !v.IsVerified,
		})
	}

	return Extraction{Features: features, Skipped: skipped, Errors: invalid}
}

// ZoneShareThreshold computes the zone concentration cutoff for a batch:
// the given quantile of the per-vote zone shares. Records whose share
// lies strictly above the cutoff carry the geographic signal, so a batch
// spread evenly over its zones flags nothing.
func ZoneShareThreshold(features []Features, quantile float64) float64 {
	if len(features) == 0 {
		return 1
	}
	shares := make([]float64, len(features))
	for i, f := range features {
		shares[i] = f.ZoneShare
	}
	return Quantile(shares, quantile)
}

// Quantile returns the q-quantile of values using linear interpolation.
// The input slice is not modified.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
