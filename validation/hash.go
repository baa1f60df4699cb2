package validation

import (
	"encoding/hex"
	"fmt"
	"sort"

	"golang.org/x/crypto/sha3"

	"github.com/fortis-br/integrity-engine/models"
)

// VoterKey derives the stable anonymous identifier for a voter from the
// national ID. Vote records carry this digest instead of raw PII, so
// duplicate detection works without exposing CPFs.
func VoterKey(nationalID string) string {
	sum := sha3.Sum256([]byte(NormalizeNationalID(nationalID)))
	return hex.EncodeToString(sum[:])
}

// RollHash computes a deterministic integrity digest over a voter roll.
// Records are folded in a canonical order so two rolls with the same
// content always hash identically, regardless of input order.
func RollHash(records []models.VoterRecord) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf("%s|%s|%s|%d|%d",
			NormalizeNationalID(rec.NationalID),
			rec.FullName,
			rec.BirthDate.UTC().Format("2006-01-02"),
			rec.VotingZone,
			rec.VotingSection,
		))
	}
	sort.Strings(lines)

	h := sha3.New256()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
