package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository"
	repomocks "github.com/yes-weigh/yesbheem-sub001/infrastructure/repository/mocks"
	"github.com/yes-weigh/yesbheem-sub001/internal/api/handler/router"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore/mocks"
	"go.uber.org/mock/gomock"
)

func newReportsRouter(t *testing.T) (router.Router, *repomocks.MockReportRepository, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reports := repomocks.NewMockReportRepository(ctrl)
	store := mocks.NewMockStore(ctrl)

	rt := router.New(router.WithRoutes(Reports(reports, store)...))
	return rt, reports, store
}

func TestListReports(t *testing.T) {
	rt, reports, _ := newReportsRouter(t)

	metas := []domain.ReportMeta{
		{ID: "r2", Name: "august.xlsx", UploadedAt: time.Now()},
		{ID: "r1", Name: "july.xlsx", UploadedAt: time.Now().Add(-24 * time.Hour)},
	}
	reports.EXPECT().ListReports(gomock.Any()).Return(metas, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "august.xlsx")
	assert.Contains(t, rec.Body.String(), "july.xlsx")
}

func TestGetReport(t *testing.T) {
	rt, reports, _ := newReportsRouter(t)

	rows := []domain.Dealer{{CustomerName: "Alpha Traders", Sales: 100000}}
	reports.EXPECT().GetReport(gomock.Any(), "r1").Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/r1", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alpha Traders")
}

func TestGetReport_NotFound(t *testing.T) {
	rt, reports, _ := newReportsRouter(t)

	reports.EXPECT().
		GetReport(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("report missing: %w", repository.ErrDocumentNotFound))

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/missing", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_002")
}

func TestDeleteReport_InvalidatesMergedViews(t *testing.T) {
	rt, reports, store := newReportsRouter(t)

	reports.EXPECT().DeleteReport(gomock.Any(), "r1").Return(nil)
	store.EXPECT().InvalidateCache("mergedDealers")

	req := httptest.NewRequest(http.MethodDelete, "/v1/reports/r1", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetGeneralSettings(t *testing.T) {
	rt, _, store := newReportsRouter(t)

	store.EXPECT().GetGeneralSettings(gomock.Any()).Return(domain.GeneralSettings{ActiveReportID: "r2"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "r2")
}
