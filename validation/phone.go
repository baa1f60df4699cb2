package validation

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ValidatePhone validates an optional Brazilian phone number with
// libphonenumber. Empty input is valid because the field is optional.
// Numbers without a country prefix are assumed to be Brazilian.
func ValidatePhone(phone string) (bool, Reason) {
	if phone == "" {
		return true, ""
	}

	clean := strings.TrimSpace(phone)
	if !strings.HasPrefix(clean, "+") {
		if strings.HasPrefix(clean, "55") {
			clean = "+" + clean
		} else {
			clean = "+55" + clean
		}
	}

	num, err := phonenumbers.Parse(clean, "")
	if err != nil {
		return false, ReasonBadFormat
	}
	if !phonenumbers.IsValidNumber(num) {
		return false, ReasonBadFormat
	}

	return true, ""
}
