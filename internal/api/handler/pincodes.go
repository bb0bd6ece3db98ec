package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/integrator/pincode"
	"github.com/yes-weigh/yesbheem-sub001/pkg/apiErrors"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
)

type pincodeResponse struct {
	Pincode  string `json:"pincode"`
	District string `json:"district"`
}

// ResolvePincode looks up the district for one Indian postal pincode. The
// resolution is persisted, so subsequent dashboard reads pick it up without
// another network call.
func ResolvePincode(resolver pincode.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		code := httprouter.ParamsFromContext(r.Context()).ByName("code")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pincode is required", nil)
			return
		}

		district, err := resolver.ResolveDistrict(r.Context(), code)
		if err != nil {
			if errors.Is(err, pincode.ErrPincodeNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Unknown pincode: "+code, nil)
				return
			}
			logger.WithError(err).WithField("pincode", code).Error("pincodes: postal API lookup failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalAPI, "Pincode lookup failed", nil)
			return
		}

		writeJSON(w, logger, pincodeResponse{Pincode: code, District: district})
	})
}
