package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ten digit mobile gets +91", input: "9876543210", expected: "+919876543210"},
		{name: "leading zero stripped", input: "09876543210", expected: "+919876543210"},
		{name: "already e164", input: "+919876543210", expected: "+919876543210"},
		{name: "formatted with spaces", input: "98765 43210", expected: "+919876543210"},
		{name: "too short", input: "12345", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhoneNumber(tt.input))
		})
	}
}
