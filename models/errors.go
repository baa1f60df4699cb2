package models

import "errors"

// Error constants for malformed vote records. These mark records the
// engine skips and counts rather than aborting the batch.
var (
	ErrMissingVoteID     = errors.New("vote record missing vote_id")
	ErrMissingElectionID = errors.New("vote record missing election_id")
	ErrMissingVoterKey   = errors.New("vote record missing voter_key")
	ErrMissingCastTime   = errors.New("vote record missing cast_at timestamp")
)

// Error constants for engine configuration. Configuration problems are
// programmer errors and fail fast at construction time; they are never
// clamped or silently corrected.
var (
	ErrInvalidContamination = errors.New("contamination rate must be within (0, 1)")
	ErrInvalidNightHour     = errors.New("night hours must be within [0, 23]")
	ErrInvalidGroupingKey   = errors.New("unknown duplicate grouping key")
	ErrInvalidScoreBands    = errors.New("score bands must be non-empty and monotonic")
	ErrInvalidQuantile      = errors.New("zone concentration quantile must be within (0, 1)")
	ErrInvalidWindow        = errors.New("election window must close after it opens")
	ErrBaselineEmpty        = errors.New("baseline reference batch has no usable records")
	ErrBaselineRequired     = errors.New("baseline has not been fitted")
)

// CheckVote reports the first malformed-input error for a vote record,
// or nil when the record has every field the scorer needs.
func CheckVote(v *VoteRecord) error {
	switch {
	case v.VoteID == "":
		return ErrMissingVoteID
	case v.ElectionID == "":
		return ErrMissingElectionID
	case v.VoterKey == "":
		return ErrMissingVoterKey
	case v.CastAt.IsZero():
		return ErrMissingCastTime
	}
	return nil
}
