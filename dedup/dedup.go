// Package dedup enforces the at-most-one-record-per-key invariants of
// the voter roll and the vote stream.
package dedup

import (
	"github.com/fortis-br/integrity-engine/models"
	"github.com/fortis-br/integrity-engine/validation"
)

// GroupingKey names the identifier field used to group vote records.
type GroupingKey string

const (
	// GroupByVoterKey groups votes by the hashed voter key. This is the
	// normal mode: vote records carry digests, not raw CPFs.
	GroupByVoterKey GroupingKey = "voter_key"

	// GroupByNationalID marks pipelines whose vote records carry raw
	// national IDs in the voter key field. Grouping is identical, but
	// keys are normalized as CPFs before comparison and must be masked
	// before they reach logs or evidence.
	GroupByNationalID GroupingKey = "national_id"
)

// Valid reports whether k is a known grouping key.
func (k GroupingKey) Valid() bool {
	return k == GroupByVoterKey || k == GroupByNationalID
}

// RollResult is the outcome of deduplicating a voter roll.
type RollResult struct {
	Kept         []models.VoterRecord
	RemovedCount int
}

// DedupeVoters keeps the first record seen for each national ID and
// drops the rest. The input order is authoritative: callers that care
// about which duplicate survives must pre-sort by trusted ingestion
// order. The input slice is never mutated.
func DedupeVoters(records []models.VoterRecord) RollResult {
	kept := make([]models.VoterRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		id := validation.NormalizeNationalID(rec.NationalID)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, rec)
	}

	return RollResult{Kept: kept, RemovedCount: len(records) - len(kept)}
}

// FindDuplicateVotes groups votes by (election_id, voter key) and
// returns the groups holding more than one vote, keyed by voter key
// with vote IDs in input order. The result is the sole source of truth
// for DUPLICATE findings. The input is never mutated and the function
// is idempotent.
func FindDuplicateVotes(records []models.VoteRecord, key GroupingKey) map[string][]string {
	type group struct{ election, voter string }

	votesPer := make(map[group][]string, len(records))
	order := make([]group, 0, len(records))
	for _, rec := range records {
		voter := rec.VoterKey
		if key == GroupByNationalID {
			voter = validation.NormalizeNationalID(voter)
		}
		g := group{election: rec.ElectionID, voter: voter}
		if _, ok := votesPer[g]; !ok {
			order = append(order, g)
		}
		votesPer[g] = append(votesPer[g], rec.VoteID)
	}

	// Groups are folded in first-seen order so a voter duplicated in
	// more than one election yields a stable vote-ID list.
	duplicates := make(map[string][]string)
	for _, g := range order {
		if voteIDs := votesPer[g]; len(voteIDs) > 1 {
			duplicates[g.voter] = append(duplicates[g.voter], voteIDs...)
		}
	}
	return duplicates
}
