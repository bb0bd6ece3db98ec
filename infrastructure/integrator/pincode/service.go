package pincode

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/integrator/pincode/pincodeclient"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository"
	"github.com/yes-weigh/yesbheem-sub001/internal/config"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
)

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// ErrPincodeNotFound indicates the postal API has no record for the pincode.
var ErrPincodeNotFound = fmt.Errorf("pincode not found")

// Resolver maps Indian postal pincodes to districts, persisting every
// successful lookup so a pincode is resolved over the network at most once.
type Resolver interface {
	ResolveDistrict(ctx context.Context, pincode string) (string, error)
	ResolveAll(ctx context.Context, pincodes []string) (map[string]string, error)
}

type Service struct {
	cfg      *config.Config
	client   pincodeclient.Client
	settings repository.SettingsRepository

	mu      sync.Mutex
	invalid map[string]struct{}
}

func New(cfg *config.Config, client pincodeclient.Client, settings repository.SettingsRepository) Resolver {
	return &Service{
		cfg:      cfg,
		client:   client,
		settings: settings,
		invalid:  make(map[string]struct{}),
	}
}

func (s *Service) ResolveDistrict(ctx context.Context, pincode string) (string, error) {
	if !pincodePattern.MatchString(pincode) {
		return "", fmt.Errorf("invalid pincode %q: %w", pincode, ErrPincodeNotFound)
	}

	s.mu.Lock()
	_, known := s.invalid[pincode]
	s.mu.Unlock()
	if known {
		return "", fmt.Errorf("pincode %s: %w", pincode, ErrPincodeNotFound)
	}

	resp, err := s.client.LookupPincode(ctx, pincode)
	if err != nil {
		return "", err
	}

	if !resp.Found() {
		s.mu.Lock()
		s.invalid[pincode] = struct{}{}
		s.mu.Unlock()
		return "", fmt.Errorf("pincode %s: %w", pincode, ErrPincodeNotFound)
	}

	district := resp.District()
	if err := s.settings.SetZipEntry(ctx, pincode, district); err != nil {
		log.L.WithError(err).WithField("pincode", pincode).
			Warn("resolved district could not be persisted")
	}

	return district, nil
}

// ResolveAll resolves a batch of pincodes, pausing between API calls to stay
// under the postal API's rate limit. Pincodes that cannot be resolved are
// skipped rather than failing the batch.
func (s *Service) ResolveAll(ctx context.Context, pincodes []string) (map[string]string, error) {
	delay := time.Duration(s.cfg.Pincode.RequestDelaySeconds) * time.Second
	resolved := make(map[string]string)

	for i, pin := range pincodes {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return resolved, ctx.Err()
			case <-time.After(delay):
			}
		}

		district, err := s.ResolveDistrict(ctx, pin)
		if err != nil {
			log.L.WithError(err).WithField("pincode", pin).Debug("pincode lookup skipped")
			continue
		}
		resolved[pin] = district
	}

	return resolved, nil
}
