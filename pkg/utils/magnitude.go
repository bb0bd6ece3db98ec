package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Multipliers for the Indian number system plus western billion/trillion,
// checked in priority order so "CR" is not mistaken for a bare "R" etc.
const (
	Trillion = 1_000_000_000_000
	Billion  = 1_000_000_000
	Crore    = 10_000_000
	Lakh     = 100_000
	Thousand = 1_000
)

// ParseMagnitude parses a human-entered magnitude value ("75 L", "5.5 Cr",
// "1.2 T") into its numeric form. Numeric inputs are passed through
// unchanged. Empty, "N/A", "-" and unparseable inputs yield 0; this function
// never returns an error because KPI sheets are full of free-text noise.
func ParseMagnitude(val any) float64 {
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseMagnitudeString(v)
	default:
		return 0
	}
}

func parseMagnitudeString(val string) float64 {
	str := strings.ToUpper(strings.TrimSpace(val))
	if str == "" || str == "N/A" || str == "-" {
		return 0
	}

	multiplier := 1.0
	numPart := str

	switch {
	case strings.Contains(str, "T"):
		multiplier = Trillion
		numPart = strings.ReplaceAll(str, "T", "")
	case strings.Contains(str, "B"):
		// Covers both "B" and "BN"
		multiplier = Billion
		numPart = strings.NewReplacer("B", "", "N", "").Replace(str)
	case strings.Contains(str, "CR"):
		multiplier = Crore
		numPart = strings.ReplaceAll(str, "CR", "")
	case strings.Contains(str, "L"):
		// Covers both "L" and "LAC"
		multiplier = Lakh
		numPart = strings.NewReplacer("LAC", "", "L", "").Replace(str)
	case strings.Contains(str, "K"):
		multiplier = Thousand
		numPart = strings.ReplaceAll(str, "K", "")
	}

	// Strip currency symbols and any other non-numeric noise except the decimal point
	var sb strings.Builder
	for _, r := range numPart {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}

	num, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0
	}

	return num * multiplier
}

// FormatMagnitude renders a number in the Indian number system for display
// (Cr/L with two decimals, k with one). Round-tripping through ParseMagnitude
// loses precision at the tier boundary, which is acceptable for display use.
func FormatMagnitude(n float64) string {
	switch {
	case n >= Trillion:
		return fmt.Sprintf("%.2f T", n/Trillion)
	case n >= Billion:
		return fmt.Sprintf("%.2f B", n/Billion)
	case n >= Crore:
		return fmt.Sprintf("%.2f Cr", n/Crore)
	case n >= Lakh:
		return fmt.Sprintf("%.2f L", n/Lakh)
	case n >= Thousand:
		return fmt.Sprintf("%.1f k", n/Thousand)
	default:
		return fmt.Sprintf("%.0f", n)
	}
}

// FormatNumber formats with a single decimal place, matching how achievement
// percentages are displayed on the dashboard.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', 1, 64)
}
