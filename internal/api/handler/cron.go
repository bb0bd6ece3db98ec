package handler

import (
	"net/http"

	"github.com/yes-weigh/yesbheem-sub001/internal/scheduler"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
)

// RefreshCache drops cached data so the next read rebuilds it. The optional
// "key" query parameter targets one cache; the default clears every merged
// dealer view.
func RefreshCache(store dealerstore.Store, refreshService *scheduler.DataRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		key := r.URL.Query().Get("key")
		if key == "" {
			key = "mergedDealers"
		}

		store.InvalidateCache(key)
		logger.WithField("key", key).Info("cache invalidated by request")

		if r.URL.Query().Get("rebuild") == "true" && refreshService != nil {
			refreshService.TriggerManualRefresh()
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// GetCronStatus reports the refresh scheduler state.
func GetCronStatus(refreshService *scheduler.DataRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, refreshService.GetStatus())
	})
}

// RunRefreshJob starts a data refresh outside the schedule.
func RunRefreshJob(refreshService *scheduler.DataRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refreshService.TriggerManualRefresh()
		w.WriteHeader(http.StatusAccepted)
	})
}
