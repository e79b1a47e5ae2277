// Package validation holds pure input validators shared by the API.
// Validators never return errors: malformed input is a normal
// ValidationResult with IsValid=false, not an error condition.
package validation

import (
	"strings"

	"github.com/craftkart/storefront-api/internal/models"
)

// DefaultCountry is assumed when the caller does not send a country code.
const DefaultCountry = "IN"

const (
	postalCodeLength = 6
	// Codes starting with this digit belong to regions we do not ship to.
	unserviceableLeadingDigit = '9'
)

const (
	msgUnserviceableRegion = "Sorry, we do not deliver to this region yet."
	msgInvalidFormat       = "Postal code must be exactly 6 digits."
)

// ValidatePostalCode checks a postal code against the rules for the given
// country. Countries without defined rules pass by default (open extension
// point). Checks run in order; the first failure wins.
func ValidatePostalCode(code, countryCode string) models.ValidationResult {
	if countryCode == "" {
		countryCode = DefaultCountry
	}
	if !strings.EqualFold(countryCode, DefaultCountry) {
		return models.ValidationResult{IsValid: true}
	}

	// Rule 1: unserviceable region, decided on the leading digit alone.
	if len(code) > 0 && code[0] == unserviceableLeadingDigit {
		return models.ValidationResult{IsValid: false, Message: msgUnserviceableRegion}
	}

	// Rule 2: exactly six decimal digits.
	if !isDigits(code) || len(code) != postalCodeLength {
		return models.ValidationResult{IsValid: false, Message: msgInvalidFormat}
	}

	return models.ValidationResult{IsValid: true}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
