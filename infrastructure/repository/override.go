package repository

import (
	"context"
	"fmt"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/database/postgres"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
)

const overridesDocument = "overrides"

// OverrideRepository stores manual per-dealer corrections keyed by the
// dealer's display name. All overrides live in a single document so a read
// is one round trip.
type OverrideRepository interface {
	GetOverrides(ctx context.Context) (map[string]domain.DealerOverride, error)
	SetOverride(ctx context.Context, dealerName string, override domain.DealerOverride) error
	DeleteOverride(ctx context.Context, dealerName string) error
}

type overrideRepository struct {
	documentStore
}

func NewOverrideRepository(conn postgres.Queryer) OverrideRepository {
	return &overrideRepository{documentStore{conn: conn}}
}

func (r *overrideRepository) GetOverrides(ctx context.Context) (map[string]domain.DealerOverride, error) {
	overrides := make(map[string]domain.DealerOverride)
	if err := r.getDocument(ctx, collectionOverrides, overridesDocument, &overrides); err != nil {
		if err == ErrDocumentNotFound {
			return map[string]domain.DealerOverride{}, nil
		}
		return nil, err
	}
	return overrides, nil
}

// SetOverride merges the given fields into any override already stored for
// the dealer, so partial edits never clobber earlier ones.
func (r *overrideRepository) SetOverride(ctx context.Context, dealerName string, override domain.DealerOverride) error {
	if dealerName == "" {
		return fmt.Errorf("override requires a dealer name")
	}

	overrides, err := r.GetOverrides(ctx)
	if err != nil {
		return err
	}

	overrides[dealerName] = overrides[dealerName].Merge(override)

	return r.setDocument(ctx, collectionOverrides, overridesDocument, overrides)
}

func (r *overrideRepository) DeleteOverride(ctx context.Context, dealerName string) error {
	overrides, err := r.GetOverrides(ctx)
	if err != nil {
		return err
	}

	if _, ok := overrides[dealerName]; !ok {
		return nil
	}

	delete(overrides, dealerName)
	return r.setDocument(ctx, collectionOverrides, overridesDocument, overrides)
}
