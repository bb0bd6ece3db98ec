package utils

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// LevenshteinDistance calculates the minimum number of single-character edits
// (insertions, deletions or substitutions, each costing 1) required to turn a
// into b. Safe for empty strings and never fails.
func LevenshteinDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// CleanString normalizes a string for comparison: lowercase, "&" becomes
// "and", and everything outside [a-z0-9] is stripped. Idempotent, so it is
// safe to clean an already cleaned value.
func CleanString(s string) string {
	lower := strings.ToLower(s)
	lower = strings.ReplaceAll(lower, "&", "and")

	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
