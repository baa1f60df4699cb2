package validation

import (
	"regexp"
	"strconv"
)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizeNationalID strips formatting punctuation from a CPF, leaving
// digits only.
func NormalizeNationalID(id string) string {
	return nonDigit.ReplaceAllString(id, "")
}

// ValidateNationalID validates a Brazilian CPF number. It checks that
// the value has 11 digits after stripping punctuation, is not a
// same-digit sequence, and carries correct check digits.
func ValidateNationalID(id string) (bool, Reason) {
	cpf := NormalizeNationalID(id)

	if cpf == "" {
		return false, ReasonEmpty
	}
	if len(cpf) != 11 {
		return false, ReasonWrongLength
	}

	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false, ReasonAllDigitsIdentical
	}

	// First check digit
	sum := 0
	for i := 0; i < 9; i++ {
		digit, _ := strconv.Atoi(string(cpf[i]))
		sum += digit * (10 - i)
	}
	d1 := 11 - sum%11
	if d1 >= 10 {
		d1 = 0
	}
	if int(cpf[9]-'0') != d1 {
		return false, ReasonBadCheckDigit
	}

	// Second check digit
	sum = 0
	for i := 0; i < 10; i++ {
		digit, _ := strconv.Atoi(string(cpf[i]))
		sum += digit * (11 - i)
	}
	d2 := 11 - sum%11
	if d2 >= 10 {
		d2 = 0
	}
	if int(cpf[10]-'0') != d2 {
		return false, ReasonBadCheckDigit
	}

	return true, ""
}
