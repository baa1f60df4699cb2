package report

import "github.com/fortis-br/integrity-engine/models"

// Patterns summarizes how a batch of votes distributes over time,
// geography, candidates, and verification state. It is descriptive
// context for auditors, not an anomaly signal by itself.
type Patterns struct {
	HourlyDistribution map[int]int    `json:"hourly_distribution"`
	PeakHour           int            `json:"peak_hour"`
	QuietHour          int            `json:"quiet_hour"`
	ZoneDistribution   map[string]int `json:"zone_distribution"`
	BusiestZone        string         `json:"busiest_zone"`
	QuietestZone       string         `json:"quietest_zone"`
	CandidateVotes     map[string]int `json:"candidate_votes"`
	DominantCandidate  string         `json:"dominant_candidate"`
	CandidateDominance float64        `json:"candidate_dominance"`
	VerificationRate   float64        `json:"verification_rate"`
	UnverifiedVotes    int            `json:"unverified_votes"`
	AuditRate          float64        `json:"audit_rate"`
}

// AnalyzePatterns builds the voting-pattern summary for a batch.
// Malformed records are ignored here; the scorer already counts them.
// Ties pick the lexicographically (or numerically) smallest key so the
// summary is deterministic.
func AnalyzePatterns(votes []models.VoteRecord) *Patterns {
	p := &Patterns{
		HourlyDistribution: make(map[int]int),
		ZoneDistribution:   make(map[string]int),
		CandidateVotes:     make(map[string]int),
	}

	total := 0
	verified := 0
	audited := 0
	for i := range votes {
		v := &votes[i]
		if models.CheckVote(v) != nil {
			continue
		}
		total++
		p.HourlyDistribution[v.CastAt.Hour()]++
		p.ZoneDistribution[v.ZoneID]++
		if v.CandidateID != "" {
			p.CandidateVotes[v.CandidateID]++
		}
		if v.IsVerified {
			verified++
		} else {
			p.UnverifiedVotes++
		}
		if v.IsAudited {
			audited++
		}
	}

	if total == 0 {
		return p
	}

	p.PeakHour, p.QuietHour = extremeHours(p.HourlyDistribution)
	p.BusiestZone, p.QuietestZone = extremeKeys(p.ZoneDistribution)
	p.VerificationRate = float64(verified) / float64(total)
	p.AuditRate = float64(audited) / float64(total)

	if dominant, _ := extremeKeys(p.CandidateVotes); dominant != "" {
		p.DominantCandidate = dominant
		p.CandidateDominance = float64(p.CandidateVotes[dominant]) / float64(total)
	}

	return p
}

func extremeHours(counts map[int]int) (peak, quiet int) {
	first := true
	for hour, n := range counts {
		if first {
			peak, quiet = hour, hour
			first = false
			continue
		}
		if n > counts[peak] || (n == counts[peak] && hour < peak) {
			peak = hour
		}
		if n < counts[quiet] || (n == counts[quiet] && hour < quiet) {
			quiet = hour
		}
	}
	return peak, quiet
}

func extremeKeys(counts map[string]int) (most, least string) {
	first := true
	for key, n := range counts {
		if first {
			most, least = key, key
			first = false
			continue
		}
		if n > counts[most] || (n == counts[most] && key < most) {
			most = key
		}
		if n < counts[least] || (n == counts[least] && key < least) {
			least = key
		}
	}
	return most, least
}
