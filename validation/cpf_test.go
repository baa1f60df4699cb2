package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNationalID(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		valid  bool
		reason Reason
	}{
		{
			name:  "valid CPF without formatting",
			id:    "11144477735",
			valid: true,
		},
		{
			name:  "valid CPF with formatting",
			id:    "111.444.777-35",
			valid: true,
		},
		{
			name:  "valid CPF - real example",
			id:    "52998224725",
			valid: true,
		},
		{
			name:  "valid CPF - sequential base digits",
			id:    "12345678909",
			valid: true,
		},
		{
			name:   "wrong second check digit",
			id:     "11144477736",
			valid:  false,
			reason: ReasonBadCheckDigit,
		},
		{
			name:   "wrong first check digit",
			id:     "11144477745",
			valid:  false,
			reason: ReasonBadCheckDigit,
		},
		{
			name:   "all zeros",
			id:     "00000000000",
			valid:  false,
			reason: ReasonAllDigitsIdentical,
		},
		{
			name:   "all ones",
			id:     "11111111111",
			valid:  false,
			reason: ReasonAllDigitsIdentical,
		},
		{
			name:   "too short",
			id:     "123456789",
			valid:  false,
			reason: ReasonWrongLength,
		},
		{
			name:   "too long",
			id:     "123456789012",
			valid:  false,
			reason: ReasonWrongLength,
		},
		{
			name:   "empty string",
			id:     "",
			valid:  false,
			reason: ReasonEmpty,
		},
		{
			name:   "only letters",
			id:     "abcdefghijk",
			valid:  false,
			reason: ReasonEmpty,
		},
		{
			name:   "mixed alphanumeric",
			id:     "123abc78909",
			valid:  false,
			reason: ReasonWrongLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ValidateNationalID(tt.id)
			assert.Equal(t, tt.valid, ok, "ValidateNationalID(%q) should be %v", tt.id, tt.valid)
			if !tt.valid {
				assert.Equal(t, tt.reason, reason)
			}
		})
	}
}

func TestValidateNationalID_CheckDigitMutations(t *testing.T) {
	// Any single-digit mutation of a valid CPF's check digits must fail.
	const valid = "11144477735"
	for pos := 9; pos < 11; pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[pos] == d {
				continue
			}
			mutated := valid[:pos] + string(d) + valid[pos+1:]
			ok, _ := ValidateNationalID(mutated)
			assert.False(t, ok, "mutation %q should be invalid", mutated)
		}
	}
}

func TestNormalizeNationalID(t *testing.T) {
	assert.Equal(t, "11144477735", NormalizeNationalID("111.444.777-35"))
	assert.Equal(t, "11144477735", NormalizeNationalID(" 111 444 777 35 "))
	assert.Equal(t, "", NormalizeNationalID("no digits here"))
}
