package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yes-weigh/yesbheem-sub001/internal/api/handler/router"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/aggregating"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore/mocks"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/merging"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/normalizing"
	"go.uber.org/mock/gomock"
)

func newDashboardRouter(t *testing.T) (router.Router, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	merger := merging.NewService(nil)
	aggregator := aggregating.NewService(nil, normalizing.NewService(), merger)

	rt := router.New(router.WithRoutes(Dashboard(store, aggregator)...))
	return rt, store
}

func expectDashboardInputs(store *mocks.MockStore, merged []domain.MergedDealer) {
	store.EXPECT().GetMergedDealers(gomock.Any(), "", false).Return(merged, nil)
	store.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil)
	store.EXPECT().GetKPIData(gomock.Any()).Return(domain.KPIData{}, nil)
	store.EXPECT().GetZipCache(gomock.Any()).Return(map[string]string{}, nil)
}

func TestGetStates(t *testing.T) {
	rt, store := newDashboardRouter(t)

	merged := []domain.MergedDealer{
		{Dealer: domain.Dealer{CustomerName: "Alpha Traders", Sales: 300000, BillingState: "Kerala"}},
		{Dealer: domain.Dealer{CustomerName: "Beta Agencies", Sales: 100000, BillingState: "Karnataka"}},
	}
	expectDashboardInputs(store, merged)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/states", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var regions []domain.AggregatedRegion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&regions))
	require.NotEmpty(t, regions)

	assert.Equal(t, "Kerala", regions[0].Name)
	assert.Equal(t, float64(300000), regions[0].CurrentSales)
	assert.Equal(t, "Karnataka", regions[1].Name)
}

func TestGetStates_StoreError(t *testing.T) {
	rt, store := newDashboardRouter(t)

	store.EXPECT().GetMergedDealers(gomock.Any(), "", false).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/states", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_002")
}

func TestGetRegion(t *testing.T) {
	rt, store := newDashboardRouter(t)

	merged := []domain.MergedDealer{
		{Dealer: domain.Dealer{CustomerName: "Alpha Traders", Sales: 300000, BillingState: "Kerala", District: "Ernakulam"}},
		{Dealer: domain.Dealer{CustomerName: "Beta Agencies", Sales: 100000, BillingState: "Karnataka"}},
	}
	expectDashboardInputs(store, merged)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/regions/Kerala", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var region domain.AggregatedRegion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&region))

	assert.Equal(t, "Kerala", region.Name)
	assert.Equal(t, float64(300000), region.CurrentSales)
	require.Len(t, region.Dealers, 1)
	assert.Equal(t, "Alpha Traders", region.Dealers[0].Name)
	assert.Contains(t, region.Districts, "Ernakulam")
}

func TestGetRegion_UnmatchedIDGetsEmptyView(t *testing.T) {
	rt, store := newDashboardRouter(t)

	expectDashboardInputs(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/regions/Atlantis", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var region domain.AggregatedRegion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&region))

	assert.Equal(t, "Atlantis", region.Name)
	assert.Zero(t, region.CurrentSales)
	assert.Empty(t, region.Dealers)
}

func TestGetCountry(t *testing.T) {
	rt, store := newDashboardRouter(t)

	merged := []domain.MergedDealer{
		{Dealer: domain.Dealer{CustomerName: "Alpha Traders", Sales: 300000, BillingState: "Kerala"}},
		{Dealer: domain.Dealer{CustomerName: "Beta Agencies", Sales: 100000, BillingState: "Karnataka"}},
	}
	expectDashboardInputs(store, merged)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/country", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var country domain.AggregatedRegion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&country))

	assert.Equal(t, "Pan India", country.Name)
	assert.Equal(t, float64(400000), country.CurrentSales)
	assert.Len(t, country.Dealers, 2)
}

func TestGetRegionDistricts(t *testing.T) {
	rt, store := newDashboardRouter(t)

	merged := []domain.MergedDealer{
		{Dealer: domain.Dealer{CustomerName: "Alpha Traders", Sales: 300000, BillingState: "Kerala", District: "Ernakulam"}},
		{Dealer: domain.Dealer{CustomerName: "Gamma Stores", Sales: 500000, BillingState: "Kerala", District: "Kozhikode"}},
	}
	expectDashboardInputs(store, merged)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/regions/Kerala/districts", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var districts []domain.DistrictStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&districts))
	require.Len(t, districts, 2)

	assert.Equal(t, "Kozhikode", districts[0].Name)
	assert.Equal(t, "Ernakulam", districts[1].Name)
}
