package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore"
	"github.com/yes-weigh/yesbheem-sub001/pkg/apiErrors"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
)

var validate = validator.New()

func dealerNameParam(r *http.Request) (string, bool) {
	name, err := url.PathUnescape(httprouter.ParamsFromContext(r.Context()).ByName("name"))
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// ListDealers returns the merged dealer list for one report, or the
// aggregated view when report_id is absent.
func ListDealers(store dealerstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		reportID := r.URL.Query().Get("report_id")
		forceRefresh := r.URL.Query().Get("refresh") == "true"

		merged, err := store.GetMergedDealers(r.Context(), reportID, forceRefresh)
		if err != nil {
			logger.WithError(err).WithField("report_id", reportID).Error("dealers: listing merged dealers failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not load dealer data", nil)
			return
		}

		writeJSON(w, logger, merged)
	})
}

// UpdateOverride validates and stores a manual correction for one dealer.
func UpdateOverride(store dealerstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name, ok := dealerNameParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dealer name is required", nil)
			return
		}

		var override domain.DealerOverride
		if err := json.NewDecoder(r.Body).Decode(&override); err != nil {
			logger.WithError(err).WithField("dealer", name).Warn("dealers: malformed override payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Malformed override payload", nil)
			return
		}

		if override.IsEmpty() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Override has no fields", nil)
			return
		}

		if err := validate.Struct(override); err != nil {
			var validationErrors validator.ValidationErrors
			details := map[string]string{}
			if errors.As(err, &validationErrors) {
				for _, fieldErr := range validationErrors {
					details[fieldErr.Field()] = fieldErr.Tag()
				}
			}

			logger.WithField("dealer", name).WithField("fields", details).Warn("dealers: override failed validation")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Override failed validation", details)
			return
		}

		if err := store.UpdateOverride(r.Context(), name, override); err != nil {
			logger.WithError(err).WithField("dealer", name).Error("dealers: saving override failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not save override", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// RevertOverride deletes the stored correction for one dealer, restoring
// the report values.
func RevertOverride(store dealerstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name, ok := dealerNameParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dealer name is required", nil)
			return
		}

		if err := store.RevertOverride(r.Context(), name); err != nil {
			logger.WithError(err).WithField("dealer", name).Error("dealers: reverting override failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not revert override", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// DeactivateDealer hides a dealer from every dashboard view.
func DeactivateDealer(store dealerstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name, ok := dealerNameParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dealer name is required", nil)
			return
		}

		if err := store.DeactivateDealer(r.Context(), name); err != nil {
			logger.WithError(err).WithField("dealer", name).Error("dealers: deactivation failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not deactivate dealer", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ReactivateDealer restores a previously hidden dealer.
func ReactivateDealer(store dealerstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name, ok := dealerNameParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dealer name is required", nil)
			return
		}

		if err := store.ReactivateDealer(r.Context(), name); err != nil {
			logger.WithError(err).WithField("dealer", name).Error("dealers: reactivation failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not reactivate dealer", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// GetDeactivatedDealers lists the dealer names currently hidden.
func GetDeactivatedDealers(store dealerstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		names, err := store.GetDeactivatedDealers(r.Context())
		if err != nil {
			logger.WithError(err).Error("dealers: listing deactivated dealers failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Could not load deactivated dealers", nil)
			return
		}

		writeJSON(w, logger, names)
	})
}
