package errors

import (
	"regexp"
	"unicode"
)

// carrierCodeRegex matches IATA/ICAO style airline designators (2-3 alphanumerics).
var carrierCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)

// ValidateCarrierCode validates an airline carrier code.
func ValidateCarrierCode(code string) error {
	if code == "" {
		return New(ErrCodeInvalidCode, "carrier code cannot be empty")
	}
	if !carrierCodeRegex.MatchString(code) {
		return New(ErrCodeInvalidCode, "invalid carrier code: %q", code)
	}
	return nil
}

// ValidateBrandCode validates a fare brand code.
//
// Brand codes are opaque but must be non-empty, at most 32 characters, and
// free of whitespace and control characters. The reserved no-brand sentinel
// is rejected so that scenario data cannot smuggle it in as a real brand.
func ValidateBrandCode(code, reserved string) error {
	if code == "" {
		return New(ErrCodeInvalidCode, "brand code cannot be empty")
	}
	if len(code) > 32 {
		return New(ErrCodeInvalidCode, "brand code too long (max 32 characters): %q", code)
	}
	if code == reserved {
		return New(ErrCodeInvalidCode, "brand code %q is reserved", code)
	}
	for _, r := range code {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidCode, "brand code contains invalid characters: %q", code)
		}
	}
	return nil
}

// ValidateProgramID validates a brand program identifier.
func ValidateProgramID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCode, "program ID cannot be empty")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCode, "program ID contains invalid control characters")
		}
	}
	return nil
}
