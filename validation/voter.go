package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	voterIDPattern = regexp.MustCompile(`^\d{8,12}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern    = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'-]+$`)
	nameCleaner    = regexp.MustCompile(`[^a-zA-ZÀ-ÿ\s]`)
)

// brazilianStates is the set of valid UF codes.
var brazilianStates = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// ValidateVoterID validates a título de eleitor: numeric, 8 to 12
// digits, not a same-digit sequence.
func ValidateVoterID(id string) (bool, Reason) {
	clean := NormalizeNationalID(id)
	if clean == "" {
		return false, ReasonEmpty
	}
	if !voterIDPattern.MatchString(clean) {
		if len(clean) < 8 {
			return false, ReasonTooShort
		}
		return false, ReasonTooLong
	}

	allSame := true
	for i := 1; i < len(clean); i++ {
		if clean[i] != clean[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false, ReasonAllDigitsIdentical
	}

	return true, ""
}

// ValidateBirthDate checks that a birth date is not in the future and
// implies an age between 16 (minimum voting age) and 120.
func ValidateBirthDate(birthDate, now time.Time) (bool, Reason) {
	if birthDate.IsZero() {
		return false, ReasonEmpty
	}
	if birthDate.After(now) {
		return false, ReasonFutureDate
	}

	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}

	if age < 16 {
		return false, ReasonUnderage
	}
	if age > 120 {
		return false, ReasonImplausibleAge
	}

	return true, ""
}

// ValidateZoneOrSection validates an electoral zone or section code:
// numeric, 1 to 4 digits, value between 1 and 9999.
func ValidateZoneOrSection(code string) (bool, Reason) {
	clean := strings.TrimSpace(code)
	if clean == "" {
		return false, ReasonEmpty
	}
	for i := 0; i < len(clean); i++ {
		if clean[i] < '0' || clean[i] > '9' {
			return false, ReasonNotNumeric
		}
	}
	if len(clean) > 4 {
		return false, ReasonTooLong
	}

	n, err := strconv.Atoi(clean)
	if err != nil || n < 1 || n > 9999 {
		return false, ReasonOutOfRange
	}

	return true, ""
}

// ValidateMotherName validates the mother's name field: 3 to 100
// characters after collapsing whitespace, letters plus common name
// punctuation only.
func ValidateMotherName(name string) (bool, Reason) {
	clean := strings.Join(strings.Fields(name), " ")
	if clean == "" {
		return false, ReasonEmpty
	}
	if len(clean) < 3 {
		return false, ReasonTooShort
	}
	if len(clean) > 100 {
		return false, ReasonTooLong
	}
	if !namePattern.MatchString(clean) {
		return false, ReasonBadCharset
	}
	return true, ""
}

// ValidateEmail validates an optional email address. Empty input is
// valid because the field is optional.
func ValidateEmail(email string) (bool, Reason) {
	if email == "" {
		return true, ""
	}
	if len(email) > 254 {
		return false, ReasonTooLong
	}
	if !emailPattern.MatchString(email) {
		return false, ReasonBadFormat
	}
	return true, ""
}

// ValidateStateCode validates a UF code against the 27 Brazilian states.
func ValidateStateCode(uf string) (bool, Reason) {
	clean := strings.ToUpper(strings.TrimSpace(uf))
	if clean == "" {
		return false, ReasonEmpty
	}
	if _, ok := brazilianStates[clean]; !ok {
		return false, ReasonUnknownState
	}
	return true, ""
}

// CleanName normalizes a voter name: strips characters outside letters
// and spaces, collapses whitespace, title-cases each word. Returns the
// empty string when nothing usable remains.
func CleanName(name string) string {
	cleaned := nameCleaner.ReplaceAllString(name, "")
	words := strings.Fields(strings.ToLower(cleaned))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	result := strings.Join(words, " ")
	if len(result) < 3 {
		return ""
	}
	return result
}
