package pincodeclient

import (
	"context"
	"net/http"
	"time"

	"github.com/yes-weigh/yesbheem-sub001/internal/config"
)

type Client interface {
	LookupPincode(ctx context.Context, pincode string) (PincodeResponse, error)
}

type PincodeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PincodeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
