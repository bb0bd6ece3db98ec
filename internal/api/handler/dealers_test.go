package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yes-weigh/yesbheem-sub001/internal/api/handler/router"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore/mocks"
	"go.uber.org/mock/gomock"
)

func newDealersRouter(t *testing.T) (router.Router, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	rt := router.New(router.WithRoutes(Dealers(store)...))
	return rt, store
}

func TestListDealers(t *testing.T) {
	rt, store := newDealersRouter(t)

	merged := []domain.MergedDealer{
		{Dealer: domain.Dealer{CustomerName: "Alpha Traders", Sales: 100000}},
	}
	store.EXPECT().GetMergedDealers(gomock.Any(), "report-1", true).Return(merged, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dealers?report_id=report-1&refresh=true", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alpha Traders")
}

func TestListDealers_StoreError(t *testing.T) {
	rt, store := newDealersRouter(t)

	store.EXPECT().GetMergedDealers(gomock.Any(), "", false).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/v1/dealers", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_002")
}

func TestUpdateOverride(t *testing.T) {
	tests := []struct {
		name       string
		dealer     string
		body       string
		setup      func(store *mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "valid override is saved",
			dealer: "Alpha Traders",
			body:   `{"billing_state": "Karnataka", "sales": 250000}`,
			setup: func(store *mocks.MockStore) {
				store.EXPECT().
					UpdateOverride(gomock.Any(), "Alpha Traders", gomock.Any()).
					Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "malformed payload",
			dealer:     "Alpha Traders",
			body:       `{"sales": "not-a-number"`,
			setup:      func(store *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_001",
		},
		{
			name:       "empty override",
			dealer:     "Alpha Traders",
			body:       `{}`,
			setup:      func(store *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_002",
		},
		{
			name:       "negative sales fails validation",
			dealer:     "Alpha Traders",
			body:       `{"sales": -5}`,
			setup:      func(store *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_003",
		},
		{
			name:       "bad zip fails validation",
			dealer:     "Alpha Traders",
			body:       `{"billing_zipcode": "68200"}`,
			setup:      func(store *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_003",
		},
		{
			name:   "store failure",
			dealer: "Alpha Traders",
			body:   `{"billing_state": "Karnataka"}`,
			setup: func(store *mocks.MockStore) {
				store.EXPECT().
					UpdateOverride(gomock.Any(), "Alpha Traders", gomock.Any()).
					Return(assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "SRV_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, store := newDealersRouter(t)
			tt.setup(store)

			req := httptest.NewRequest(
				http.MethodPut,
				"/v1/dealers/"+strings.ReplaceAll(tt.dealer, " ", "%20")+"/override",
				strings.NewReader(tt.body),
			)
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRevertOverride(t *testing.T) {
	rt, store := newDealersRouter(t)

	store.EXPECT().RevertOverride(gomock.Any(), "Alpha Traders").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/dealers/Alpha%20Traders/override", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeactivateAndReactivate(t *testing.T) {
	rt, store := newDealersRouter(t)

	store.EXPECT().DeactivateDealer(gomock.Any(), "Alpha Traders").Return(nil)
	store.EXPECT().ReactivateDealer(gomock.Any(), "Alpha Traders").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/dealers/Alpha%20Traders/deactivate", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/dealers/Alpha%20Traders/reactivate", nil)
	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetDeactivatedDealers(t *testing.T) {
	rt, store := newDealersRouter(t)

	store.EXPECT().GetDeactivatedDealers(gomock.Any()).Return([]string{"Alpha Traders"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/deactivations", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alpha Traders")
}
