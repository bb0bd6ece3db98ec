package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "lakhs with space", input: "75 L", expected: 7_500_000},
		{name: "crores with decimals", input: "5.5 Cr", expected: 55_000_000},
		{name: "lac spelling", input: "3 Lac", expected: 300_000},
		{name: "thousands", input: "10 K", expected: 10_000},
		{name: "billion", input: "2.8 B", expected: 2_800_000_000},
		{name: "billion bn spelling", input: "1 BN", expected: 1_000_000_000},
		{name: "trillion", input: "1.2 T", expected: 1_200_000_000_000},
		{name: "currency prefix stripped", input: "₹5 Cr", expected: 50_000_000},
		{name: "plain numeric string", input: "12345", expected: 12345},
		{name: "number passed through", input: 1000, expected: 1000},
		{name: "float passed through", input: 1234.5, expected: 1234.5},
		{name: "not available marker", input: "N/A", expected: 0},
		{name: "dash marker", input: "-", expected: 0},
		{name: "empty string", input: "", expected: 0},
		{name: "garbage", input: "bad", expected: 0},
		{name: "nil", input: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMagnitude(tt.input))
		})
	}
}

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "crores", input: 50_000_000, expected: "5.00 Cr"},
		{name: "lakhs", input: 7_500_000, expected: "75.00 L"},
		{name: "thousands one decimal", input: 5_500, expected: "5.5 k"},
		{name: "billions", input: 1_500_000_000, expected: "1.50 B"},
		{name: "trillions", input: 1_500_000_000_000, expected: "1.50 T"},
		{name: "below a thousand", input: 999, expected: "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMagnitude(tt.input))
		})
	}
}

// Formatting is lossy at tier boundaries; parsing the formatted value must
// stay within the rounding error of two decimal places.
func TestFormatParseBoundaryPrecision(t *testing.T) {
	original := 55_555_555.0 // 5.555... Cr, formats as "5.56 Cr"

	formatted := FormatMagnitude(original)
	assert.Equal(t, "5.56 Cr", formatted)

	reparsed := ParseMagnitude(formatted)
	assert.NotEqual(t, original, reparsed)
	assert.InDelta(t, original, reparsed, 0.005*Crore)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "123.5", FormatNumber(123.456))
	assert.Equal(t, "789.0", FormatNumber(789))
	assert.Equal(t, "0.0", FormatNumber(0))
}
