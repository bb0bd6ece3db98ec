package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/integrator/pincode"
	pincodemocks "github.com/yes-weigh/yesbheem-sub001/infrastructure/integrator/pincode/mocks"
	"github.com/yes-weigh/yesbheem-sub001/internal/api/handler/router"
	"go.uber.org/mock/gomock"
)

func TestResolvePincode(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(resolver *pincodemocks.MockResolver)
		wantStatus int
		wantBody   string
	}{
		{
			name: "resolved pincode",
			setup: func(resolver *pincodemocks.MockResolver) {
				resolver.EXPECT().
					ResolveDistrict(gomock.Any(), "682001").
					Return("Ernakulam", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Ernakulam",
		},
		{
			name: "unknown pincode",
			setup: func(resolver *pincodemocks.MockResolver) {
				resolver.EXPECT().
					ResolveDistrict(gomock.Any(), "682001").
					Return("", fmt.Errorf("pincode 682001: %w", pincode.ErrPincodeNotFound))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_003",
		},
		{
			name: "postal API failure",
			setup: func(resolver *pincodemocks.MockResolver) {
				resolver.EXPECT().
					ResolveDistrict(gomock.Any(), "682001").
					Return("", assert.AnError)
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "SRV_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := pincodemocks.NewMockResolver(ctrl)
			tt.setup(resolver)

			rt := router.New(router.WithRoutes(Pincodes(resolver)...))

			req := httptest.NewRequest(http.MethodGet, "/v1/pincodes/682001", nil)
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
