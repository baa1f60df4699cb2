package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "optional empty", phone: "", valid: true},
		{name: "mobile with country code", phone: "+5521987654321", valid: true},
		{name: "mobile without plus", phone: "5521987654321", valid: true},
		{name: "bare national number", phone: "21987654321", valid: true},
		{name: "too short", phone: "1234", valid: false},
		{name: "letters", phone: "telefone", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidatePhone(tt.phone)
			assert.Equal(t, tt.valid, ok)
		})
	}
}
