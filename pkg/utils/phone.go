package utils

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

const defaultPhoneRegion = "IN"

// FormatPhoneNumber normalizes a dealer contact number to E.164 (+91 for
// ten-digit Indian mobiles). Returns an empty string when the input cannot
// be parsed as a valid number.
func FormatPhoneNumber(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return ""
	}

	parsed, err := libphonenumber.Parse(trimmed, defaultPhoneRegion)
	if err != nil {
		return ""
	}

	if !libphonenumber.IsValidNumber(parsed) {
		return ""
	}

	return libphonenumber.Format(parsed, libphonenumber.E164)
}
