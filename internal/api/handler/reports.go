package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore"
	"github.com/yes-weigh/yesbheem-sub001/pkg/apiErrors"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
)

// ListReports returns the metadata of every stored report, newest first.
func ListReports(reports repository.ReportRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metas, err := reports.ListReports(r.Context())
		if err != nil {
			logger.WithError(err).Error("reports: listing reports failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not list reports", nil)
			return
		}

		writeJSON(w, logger, metas)
	})
}

// GetReport returns the raw dealer rows of one stored report, before any
// consolidation or overrides.
func GetReport(reports repository.ReportRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		reportID, err := url.PathUnescape(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil || reportID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Report id is required", nil)
			return
		}

		dealers, err := reports.GetReport(r.Context(), reportID)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Unknown report: "+reportID, nil)
				return
			}
			logger.WithError(err).WithField("report_id", reportID).Error("reports: reading report failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not load report", nil)
			return
		}

		writeJSON(w, logger, dealers)
	})
}

// DeleteReport removes a stored report and drops the merged views built from
// it.
func DeleteReport(reports repository.ReportRepository, store dealerstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		reportID, err := url.PathUnescape(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil || reportID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Report id is required", nil)
			return
		}

		if err := reports.DeleteReport(r.Context(), reportID); err != nil {
			logger.WithError(err).WithField("report_id", reportID).Error("reports: deleting report failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not delete report", nil)
			return
		}

		store.InvalidateCache("mergedDealers")
		logger.WithField("report_id", reportID).Info("reports: report deleted")

		w.WriteHeader(http.StatusNoContent)
	})
}

// GetGeneralSettings returns the dashboard settings, including the active
// report id.
func GetGeneralSettings(store dealerstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		settings, err := store.GetGeneralSettings(r.Context())
		if err != nil {
			logger.WithError(err).Error("reports: reading settings failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not load settings", nil)
			return
		}

		writeJSON(w, logger, settings)
	})
}
