// Package aggregating rolls merged dealer records up into per-region
// summaries enriched with externally supplied KPI targets.
package aggregating

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yes-weigh/yesbheem-sub001/internal/config"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/normalizing"
	"github.com/yes-weigh/yesbheem-sub001/pkg/utils"
)

const (
	fallbackStateTarget = 500000
	countryName         = "Pan India"
	countryKPIName      = "India"
	// Country population shown when no KPI entry provides one
	fallbackCountryPopulation = "1.4B+"
	notAvailable              = "N/A"
	// Pan India target fallback approximates one default target per state
	countryTargetMultiplier = 30
	unknownDistrict         = "Unknown"
)

// InternalAccountChecker identifies house accounts excluded from dealer
// counts. Satisfied by the merging service.
type InternalAccountChecker interface {
	IsInternalAccount(customerName string) bool
}

// Aggregator builds region rollups. All operations are pure given their
// inputs; nothing is cached here.
type Aggregator interface {
	AggregateByState(merged []domain.MergedDealer, kpi domain.KPIData) []domain.AggregatedRegion
	GetRegionData(regionID string, merged []domain.MergedDealer, overrides map[string]domain.DealerOverride, kpi domain.KPIData, zipCache map[string]string) *domain.AggregatedRegion
	GetCountryData(merged []domain.MergedDealer, overrides map[string]domain.DealerOverride, kpi domain.KPIData, zipCache map[string]string) *domain.AggregatedRegion
	DistrictsSortedBySales(districtStats map[string]domain.DistrictStats) []domain.DistrictStats
}

type service struct {
	normalizer         normalizing.Normalizer
	internalChecker    InternalAccountChecker
	defaultStateTarget float64
}

// NewService creates the aggregation service.
func NewService(cfg *config.Config, normalizer normalizing.Normalizer, internalChecker InternalAccountChecker) Aggregator {
	target := fallbackStateTarget
	if cfg != nil && cfg.Dealers.DefaultStateTarget > 0 {
		target = int(cfg.Dealers.DefaultStateTarget)
	}

	return &service{
		normalizer:         normalizer,
		internalChecker:    internalChecker,
		defaultStateTarget: float64(target),
	}
}

// AggregateByState groups merged dealers by normalized state. Every
// canonical state appears in the result even with zero dealers; records
// whose normalized state matches no canonical name get a dynamic region so
// their sales stay visible. Result is sorted by sales, descending.
func (s *service) AggregateByState(merged []domain.MergedDealer, kpi domain.KPIData) []domain.AggregatedRegion {
	regionMap := make(map[string]*domain.AggregatedRegion, len(normalizing.CanonicalStates))
	order := make([]string, 0, len(normalizing.CanonicalStates))

	for _, name := range normalizing.CanonicalStates {
		regionMap[name] = &domain.AggregatedRegion{
			Name:       name,
			Population: notAvailable,
			GDP:        notAvailable,
		}
		order = append(order, name)
	}

	for _, dealer := range merged {
		stateKey := s.normalizer.NormalizeState(dealer.StateHint())

		region, found := regionMap[stateKey]
		if !found {
			region = &domain.AggregatedRegion{
				Name:       stateKey,
				Population: notAvailable,
				GDP:        notAvailable,
			}
			regionMap[stateKey] = region
			order = append(order, stateKey)
		}

		region.CurrentSales += dealer.Sales
		region.TotalSales += dealer.Sales

		if !s.internalChecker.IsInternalAccount(dealer.CustomerName) {
			region.DealerCount++
		}
	}

	regions := make([]domain.AggregatedRegion, 0, len(order))
	for _, name := range order {
		region := regionMap[name]
		s.enrichWithKPI(region, kpi)
		regions = append(regions, *region)
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].CurrentSales > regions[j].CurrentSales
	})

	return regions
}

// enrichWithKPI fills population, GDP and target from the KPI entry for the
// region, falling back to the default target when the entry is missing.
func (s *service) enrichWithKPI(region *domain.AggregatedRegion, kpi domain.KPIData) {
	entry, found := kpi[s.normalizer.Key(region.Name)]
	if found {
		if entry.Population != "" {
			region.Population = entry.Population
		}
		if entry.GDP != "" {
			region.GDP = entry.GDP
		}
		if entry.Target != "" {
			region.MonthlyTarget = utils.ParseMagnitude(entry.Target)
		} else {
			region.MonthlyTarget = s.defaultStateTarget
		}
	} else {
		region.MonthlyTarget = s.defaultStateTarget
	}

	region.Achievement = achievement(region.CurrentSales, region.MonthlyTarget)
}

// GetRegionData builds the detailed view for one region. Overrides are
// applied to the records before the state filter runs so an override that
// moves a dealer to another state relocates it into the right view.
func (s *service) GetRegionData(
	regionID string,
	merged []domain.MergedDealer,
	overrides map[string]domain.DealerOverride,
	kpi domain.KPIData,
	zipCache map[string]string,
) *domain.AggregatedRegion {
	stateName, found := normalizing.StateNamesByID[regionID]
	if !found {
		stateName = regionID
	}

	logrus.WithFields(logrus.Fields{
		"region_id": regionID,
		"state":     stateName,
	}).Debug("Aggregating region data")

	rows := applyOverrides(merged, overrides)

	targetState := s.normalizer.NormalizeState(stateName)

	entry, hasKPI := kpi[s.normalizer.Key(stateName)]
	region := &domain.AggregatedRegion{
		Name:          stateName,
		Population:    notAvailable,
		GDP:           notAvailable,
		MonthlyTarget: s.defaultStateTarget,
		Dealers:       make([]domain.RegionDealer, 0),
		Districts:     make(map[string]domain.DistrictStats),
	}
	if hasKPI {
		if entry.Population != "" {
			region.Population = entry.Population
		}
		if entry.GDP != "" {
			region.GDP = entry.GDP
		}
		if entry.Target != "" {
			region.MonthlyTarget = utils.ParseMagnitude(entry.Target)
		}
	}

	for _, row := range rows {
		if s.normalizer.NormalizeState(row.StateHint()) != targetState {
			continue
		}

		s.accumulateDealer(region, row, zipCache)
	}

	s.finalizeRegion(region)
	return region
}

// GetCountryData builds the Pan India view over the full merged set. The KPI
// lookup prefers an explicit country entry; otherwise per-state entries are
// summed, skipping any country-level alias to avoid double counting.
func (s *service) GetCountryData(
	merged []domain.MergedDealer,
	overrides map[string]domain.DealerOverride,
	kpi domain.KPIData,
	zipCache map[string]string,
) *domain.AggregatedRegion {
	logrus.WithField("rows", len(merged)).Debug("Aggregating Pan India data")

	region := &domain.AggregatedRegion{
		Name:       countryName,
		Population: fallbackCountryPopulation,
		GDP:        notAvailable,
		Dealers:    make([]domain.RegionDealer, 0),
	}

	if countryEntry, found := kpi[s.normalizer.Key(countryKPIName)]; found {
		if countryEntry.Population != "" {
			region.Population = countryEntry.Population
		}
		if countryEntry.GDP != "" {
			region.GDP = countryEntry.GDP
		}
		region.MonthlyTarget = utils.ParseMagnitude(countryEntry.Target)
	} else {
		var totalPop, totalGDP, totalTarget float64
		for _, entry := range kpi {
			name := strings.ToLower(entry.Name)
			if name == "india" || name == "pan india" {
				continue
			}
			totalPop += utils.ParseMagnitude(entry.Population)
			totalGDP += utils.ParseMagnitude(entry.GDP)
			totalTarget += utils.ParseMagnitude(entry.Target)
		}

		if totalPop > 0 {
			region.Population = utils.FormatMagnitude(totalPop)
		}
		if totalGDP > 0 {
			region.GDP = utils.FormatMagnitude(totalGDP)
		}
		region.MonthlyTarget = totalTarget
	}

	if region.MonthlyTarget <= 0 {
		region.MonthlyTarget = s.defaultStateTarget * countryTargetMultiplier
	}

	rows := applyOverrides(merged, overrides)
	for _, row := range rows {
		s.accumulateDealer(region, row, zipCache)
	}

	s.finalizeRegion(region)
	return region
}

// DistrictsSortedBySales projects a district stats map into a list sorted by
// sales, descending.
func (s *service) DistrictsSortedBySales(districtStats map[string]domain.DistrictStats) []domain.DistrictStats {
	if len(districtStats) == 0 {
		return []domain.DistrictStats{}
	}

	districts := make([]domain.DistrictStats, 0, len(districtStats))
	for _, stats := range districtStats {
		districts = append(districts, stats)
	}

	sort.SliceStable(districts, func(i, j int) bool {
		return districts[i].CurrentSales > districts[j].CurrentSales
	})

	return districts
}

// accumulateDealer folds one row into the region view, resolving its
// district through the zip cache.
func (s *service) accumulateDealer(region *domain.AggregatedRegion, row domain.Dealer, zipCache map[string]string) {
	isInternal := s.internalChecker.IsInternalAccount(row.CustomerName)
	if !isInternal {
		region.DealerCount++
	}

	sales := row.Sales
	region.CurrentSales += sales
	region.TotalSales += sales

	district := row.District
	if district == "" {
		zip := strings.ReplaceAll(row.ZipHint(), " ", "")
		if resolved, found := zipCache[zip]; found && resolved != "" {
			district = resolved
		} else {
			district = unknownDistrict
		}
	}

	state := row.StateHint()
	if state == "" {
		state = normalizing.UnknownRegion
	}

	region.Dealers = append(region.Dealers, domain.RegionDealer{
		Name:        row.CustomerName,
		Sales:       sales,
		State:       state,
		District:    district,
		BillingZip:  row.BillingZip,
		ShippingZip: row.ShippingZip,
		IsInternal:  isInternal,
	})

	if region.Districts != nil {
		stats := region.Districts[district]
		stats.Name = district
		stats.CurrentSales += sales
		if !isInternal {
			stats.DealerCount++
		}
		region.Districts[district] = stats
	}
}

// finalizeRegion sorts the dealer list and computes the achievement string.
func (s *service) finalizeRegion(region *domain.AggregatedRegion) {
	sort.SliceStable(region.Dealers, func(i, j int) bool {
		return region.Dealers[i].Sales > region.Dealers[j].Sales
	})

	region.Achievement = achievement(region.CurrentSales, region.MonthlyTarget) + "%"
}

// applyOverrides overlays overrides onto the merged rows without touching
// the input slice.
func applyOverrides(merged []domain.MergedDealer, overrides map[string]domain.DealerOverride) []domain.Dealer {
	rows := make([]domain.Dealer, 0, len(merged))
	for _, m := range merged {
		row := m.Dealer
		if override, found := overrides[m.CustomerName]; found {
			row = override.Apply(row)
		}
		rows = append(rows, row)
	}
	return rows
}

// achievement renders currentSales/target as a percentage with one decimal,
// "0.0" when the target is not positive.
func achievement(currentSales, target float64) string {
	if target <= 0 {
		return "0.0"
	}
	return utils.FormatNumber(currentSales / target * 100)
}
