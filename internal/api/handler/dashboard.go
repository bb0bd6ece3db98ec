package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/aggregating"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore"
	"github.com/yes-weigh/yesbheem-sub001/pkg/apiErrors"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
)

// dashboardInputs collects everything the aggregator needs for one request.
type dashboardInputs struct {
	merged    []domain.MergedDealer
	overrides map[string]domain.DealerOverride
	kpi       domain.KPIData
	zipCache  map[string]string
}

func loadDashboardInputs(r *http.Request, store dealerstore.Store) (dashboardInputs, error) {
	ctx := r.Context()
	reportID := r.URL.Query().Get("report_id")
	forceRefresh := r.URL.Query().Get("refresh") == "true"

	var inputs dashboardInputs
	var err error

	if inputs.merged, err = store.GetMergedDealers(ctx, reportID, forceRefresh); err != nil {
		return inputs, err
	}
	if inputs.overrides, err = store.GetOverrides(ctx); err != nil {
		return inputs, err
	}
	if inputs.kpi, err = store.GetKPIData(ctx); err != nil {
		return inputs, err
	}
	if inputs.zipCache, err = store.GetZipCache(ctx); err != nil {
		return inputs, err
	}

	return inputs, nil
}

// GetStates returns one summary row per state, sorted by sales.
func GetStates(store dealerstore.Store, aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		inputs, err := loadDashboardInputs(r, store)
		if err != nil {
			logger.WithError(err).Error("dashboard: loading state rollup inputs failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not load dealer data", nil)
			return
		}

		regions := aggregator.AggregateByState(inputs.merged, inputs.kpi)

		writeJSON(w, logger, regions)
	})
}

// GetRegion returns the detail view for one state, including its dealers and
// district breakdown.
func GetRegion(store dealerstore.Store, aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		regionID, err := url.PathUnescape(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil || regionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid region id", nil)
			return
		}

		inputs, err := loadDashboardInputs(r, store)
		if err != nil {
			logger.WithError(err).WithField("region_id", regionID).Error("dashboard: loading region inputs failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not load dealer data", nil)
			return
		}

		region := aggregator.GetRegionData(regionID, inputs.merged, inputs.overrides, inputs.kpi, inputs.zipCache)
		if region == nil {
			apiErrors.WriteError(w, apiErrors.ErrRegionNotFound, "Unknown region: "+regionID, nil)
			return
		}

		writeJSON(w, logger, region)
	})
}

// GetCountry returns the pan-India rollup.
func GetCountry(store dealerstore.Store, aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		inputs, err := loadDashboardInputs(r, store)
		if err != nil {
			logger.WithError(err).Error("dashboard: loading country inputs failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not load dealer data", nil)
			return
		}

		country := aggregator.GetCountryData(inputs.merged, inputs.overrides, inputs.kpi, inputs.zipCache)

		writeJSON(w, logger, country)
	})
}

// GetRegionDistricts returns the district ranking for one state, sorted by
// sales.
func GetRegionDistricts(store dealerstore.Store, aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		regionID, err := url.PathUnescape(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil || regionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid region id", nil)
			return
		}

		inputs, err := loadDashboardInputs(r, store)
		if err != nil {
			logger.WithError(err).WithField("region_id", regionID).Error("dashboard: loading district inputs failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not load dealer data", nil)
			return
		}

		region := aggregator.GetRegionData(regionID, inputs.merged, inputs.overrides, inputs.kpi, inputs.zipCache)
		if region == nil {
			apiErrors.WriteError(w, apiErrors.ErrRegionNotFound, "Unknown region: "+regionID, nil)
			return
		}

		writeJSON(w, logger, aggregator.DistrictsSortedBySales(region.Districts))
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}
