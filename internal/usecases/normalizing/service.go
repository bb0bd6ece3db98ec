// Package normalizing maps free-text location names onto canonical ones.
package normalizing

import (
	"strings"

	"github.com/yes-weigh/yesbheem-sub001/pkg/utils"
)

// Fuzzy-match thresholds, empirically chosen: short cleaned names tolerate a
// single edit, longer names up to three.
const (
	shortNameLength = 5
	shortThreshold  = 1
	longThreshold   = 3
)

// Normalizer resolves raw state and district text to canonical names.
type Normalizer interface {
	NormalizeState(raw string) string
	NormalizeDistrict(raw string, validList []string) string
	Key(name string) string
}

type service struct{}

// NewService creates a stateless location normalizer.
func NewService() Normalizer {
	return service{}
}

// NormalizeState resolves spelling variants ("Tamilnadu", "Jammu & Kashmir")
// onto the canonical state list. Exact match on the cleaned string wins;
// otherwise the closest canonical name within the edit-distance threshold is
// used. When nothing clears the threshold the trimmed original is returned
// so no data is silently lost.
func (service) NormalizeState(raw string) string {
	if raw == "" {
		return UnknownRegion
	}

	target := utils.CleanString(raw)

	// 1. Exact match on the cleaned string
	for _, canonical := range CanonicalStates {
		if utils.CleanString(canonical) == target {
			return canonical
		}
	}

	// 2. Fuzzy match on the cleaned string
	bestMatch := ""
	bestDist := -1

	for _, canonical := range CanonicalStates {
		dist := utils.LevenshteinDistance(target, utils.CleanString(canonical))
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestMatch = canonical
		}
	}

	threshold := longThreshold
	if len(target) < shortNameLength {
		threshold = shortThreshold
	}

	if bestMatch != "" && bestDist <= threshold {
		return bestMatch
	}

	return strings.TrimSpace(raw)
}

// NormalizeDistrict resolves a district name against the list of valid
// district identifiers, falling back to the historical alias table. There is
// no fuzzy fallback for districts; an unresolvable name yields "".
func (service) NormalizeDistrict(raw string, validList []string) string {
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(strings.TrimSpace(raw))
	cleanID := strings.Join(strings.Fields(lower), "-")

	if containsString(validList, cleanID) {
		return cleanID
	}
	if containsString(validList, lower) {
		return lower
	}

	if mapped, ok := districtAliases[lower]; ok && containsString(validList, mapped) {
		return mapped
	}

	return ""
}

// Key derives the lookup key used for KPI entries from a region name.
func (service) Key(name string) string {
	return utils.CleanString(name)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
