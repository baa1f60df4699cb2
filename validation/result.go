package validation

// Reason is a typed cause for a failed validation. Expected bad input
// yields a Reason, never an error or panic.
type Reason string

const (
	ReasonEmpty              Reason = "empty"
	ReasonNotNumeric         Reason = "not_numeric"
	ReasonWrongLength        Reason = "wrong_length"
	ReasonAllDigitsIdentical Reason = "all_digits_identical"
	ReasonBadCheckDigit      Reason = "bad_check_digit"
	ReasonFutureDate         Reason = "future_date"
	ReasonUnderage           Reason = "underage"
	ReasonImplausibleAge     Reason = "implausible_age"
	ReasonOutOfRange         Reason = "out_of_range"
	ReasonTooShort           Reason = "too_short"
	ReasonTooLong            Reason = "too_long"
	ReasonBadCharset         Reason = "bad_charset"
	ReasonBadFormat          Reason = "bad_format"
	ReasonUnknownState       Reason = "unknown_state"
)

// FieldError pairs a record field with the reason it failed.
type FieldError struct {
	Field  string `json:"field"`
	Reason Reason `json:"reason"`
}

// Result aggregates the per-field outcome of validating a full record.
type Result struct {
	IsValid  bool         `json:"is_valid"`
	Errors   []FieldError `json:"errors,omitempty"`
	Warnings []FieldError `json:"warnings,omitempty"`
}

// NewResult creates a valid, empty result.
func NewResult() *Result {
	return &Result{IsValid: true}
}

// AddError records a failed required field and marks the result invalid.
func (r *Result) AddError(field string, reason Reason) {
	r.IsValid = false
	r.Errors = append(r.Errors, FieldError{Field: field, Reason: reason})
}

// AddWarning records a failed optional field without invalidating the record.
func (r *Result) AddWarning(field string, reason Reason) {
	r.Warnings = append(r.Warnings, FieldError{Field: field, Reason: reason})
}
