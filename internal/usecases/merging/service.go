// Package merging combines the immutable report with overrides and the
// deactivation list into a single merged record set.
package merging

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yes-weigh/yesbheem-sub001/internal/config"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/pkg/utils"
)

// Default house-account prefixes used when configuration does not provide
// them. These are internal fulfillment accounts, not real dealers.
var defaultInternalPrefixes = []string{"yescloud", "retail cloud"}

// Merger produces merged dealer records from the three reconciliation inputs.
// Implementations must be pure: the output depends only on the arguments.
type Merger interface {
	Merge(report []domain.Dealer, overrides map[string]domain.DealerOverride, deactivated []string) []domain.MergedDealer
	IsInternalAccount(customerName string) bool
}

type service struct {
	internalPrefixes []string
}

// NewService creates a merge service using the configured house-account
// prefixes.
func NewService(cfg *config.Config) Merger {
	prefixes := defaultInternalPrefixes
	if cfg != nil && len(cfg.Dealers.InternalPrefixes) > 0 {
		prefixes = make([]string, 0, len(cfg.Dealers.InternalPrefixes))
		for _, p := range cfg.Dealers.InternalPrefixes {
			prefixes = append(prefixes, strings.ToLower(strings.TrimSpace(p)))
		}
	}

	return &service{internalPrefixes: prefixes}
}

// IsInternalAccount reports whether the name belongs to a house account that
// must be excluded from dealer counts and merged output.
func (s *service) IsInternalAccount(customerName string) bool {
	lower := strings.ToLower(customerName)
	for _, prefix := range s.internalPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// Merge runs the reconciliation pipeline: exclusion filter, consolidation of
// duplicate dealers, deactivation filter, then override overlay. The report
// slice is never mutated.
func (s *service) Merge(
	report []domain.Dealer,
	overrides map[string]domain.DealerOverride,
	deactivated []string,
) []domain.MergedDealer {
	logrus.WithFields(logrus.Fields{
		"report_rows": len(report),
		"overrides":   len(overrides),
		"deactivated": len(deactivated),
	}).Debug("Merging report with overrides")

	consolidated := s.consolidate(report)

	if len(deactivated) > 0 {
		deactivatedSet := make(map[string]struct{}, len(deactivated))
		for _, name := range deactivated {
			deactivatedSet[name] = struct{}{}
		}

		kept := consolidated[:0]
		for _, dealer := range consolidated {
			// Exact, non-normalized name match against the deactivation list
			if _, isDeactivated := deactivatedSet[dealer.CustomerName]; !isDeactivated {
				kept = append(kept, dealer)
			}
		}

		if dropped := len(consolidated) - len(kept); dropped > 0 {
			logrus.WithField("count", dropped).Debug("Filtered out deactivated dealers")
		}
		consolidated = kept
	}

	merged := make([]domain.MergedDealer, 0, len(consolidated))
	for _, dealer := range consolidated {
		override, found := overrides[dealer.CustomerName]
		if !found || override.IsEmpty() {
			merged = append(merged, domain.MergedDealer{Dealer: dealer, HasOverride: false})
			continue
		}

		original := dealer.Clone()
		merged = append(merged, domain.MergedDealer{
			Dealer:       override.Apply(dealer),
			HasOverride:  true,
			OriginalData: &original,
		})
	}

	return merged
}

// consolidate groups records by cleaned customer name so "ABC Dealers" and
// "abc-dealers" collapse into one entry with summed sales. The first record
// seen in a group seeds the entry and keeps its display casing; later
// records backfill missing address fields and union categories. Group order
// is first-seen order so output is deterministic.
func (s *service) consolidate(report []domain.Dealer) []domain.Dealer {
	grouped := make(map[string]*domain.Dealer, len(report))
	order := make([]string, 0, len(report))

	for _, row := range report {
		if row.CustomerName == "" {
			// Cannot participate in the natural key; skip the single row
			continue
		}
		if s.IsInternalAccount(row.CustomerName) {
			continue
		}

		key := utils.CleanString(row.CustomerName)
		sales := safeSales(row.Sales)

		existing, found := grouped[key]
		if !found {
			seed := row.Clone()
			seed.Sales = sales
			seed.TotalSales = sales
			grouped[key] = &seed
			order = append(order, key)
			continue
		}

		existing.Sales += sales
		existing.TotalSales += sales

		if existing.BillingZip == "" && row.BillingZip != "" {
			existing.BillingZip = row.BillingZip
		}
		if existing.ShippingZip == "" && row.ShippingZip != "" {
			existing.ShippingZip = row.ShippingZip
		}
		if existing.BillingCity == "" && row.BillingCity != "" {
			existing.BillingCity = row.BillingCity
		}
		if existing.ShippingCity == "" && row.ShippingCity != "" {
			existing.ShippingCity = row.ShippingCity
		}
		if existing.BillingState == "" && row.BillingState != "" {
			existing.BillingState = row.BillingState
		}
		if existing.ShippingState == "" && row.ShippingState != "" {
			existing.ShippingState = row.ShippingState
		}
		if existing.Phone == "" && row.Phone != "" {
			existing.Phone = row.Phone
		}

		existing.Categories = unionCategories(existing.Categories, row.Categories)
	}

	consolidated := make([]domain.Dealer, 0, len(order))
	for _, key := range order {
		consolidated = append(consolidated, *grouped[key])
	}

	return consolidated
}

// safeSales coerces malformed sales values to 0 instead of letting NaN
// poison the totals.
func safeSales(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func unionCategories(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}

	seen := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		seen[c] = struct{}{}
	}

	out := existing
	for _, c := range incoming {
		if _, dup := seen[c]; !dup {
			out = append(out, c)
			seen[c] = struct{}{}
		}
	}

	return out
}
