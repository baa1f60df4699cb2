package models

import "time"

// VoterRecord is a single voter roll entry as ingested from the
// registration pipeline. NationalID is the raw CPF; it never leaves
// this record unmasked (see observability.MaskCPF).
type VoterRecord struct {
	NationalID    string    `json:"national_id"`
	FullName      string    `json:"full_name"`
	BirthDate     time.Time `json:"birth_date"`
	VotingZone    int       `json:"voting_zone"`
	VotingSection int       `json:"voting_section"`
	MotherName    string    `json:"mother_name"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
}

// VoteRecord is an immutable cast-vote entry. VoterKey is a digest of
// the national ID so vote streams carry no raw PII; IsVerified and
// IsAudited are set by downstream audit processes.
type VoteRecord struct {
	VoteID      string    `json:"vote_id"`
	ElectionID  string    `json:"election_id"`
	VoterKey    string    `json:"voter_key"`
	CandidateID string    `json:"candidate_id"`
	ZoneID      string    `json:"zone_id"`
	SectionID   string    `json:"section_id"`
	CastAt      time.Time `json:"cast_at"`
	IsVerified  bool      `json:"is_verified"`
	IsAudited   bool      `json:"is_audited"`
}
