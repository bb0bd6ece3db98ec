package repository

import (
	"context"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/database/postgres"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
)

const (
	zipCacheDocument = "zip_to_district"
	settingsDocument = "settings"
)

// SettingsRepository stores dashboard-wide settings and the resolved
// zip-to-district lookup table.
type SettingsRepository interface {
	GetZipCache(ctx context.Context) (map[string]string, error)
	SetZipEntry(ctx context.Context, zip, district string) error
	SetZipCache(ctx context.Context, cache map[string]string) error
	GetGeneralSettings(ctx context.Context) (domain.GeneralSettings, error)
	SetGeneralSettings(ctx context.Context, settings domain.GeneralSettings) error
}

type settingsRepository struct {
	documentStore
}

func NewSettingsRepository(conn postgres.Queryer) SettingsRepository {
	return &settingsRepository{documentStore{conn: conn}}
}

func (r *settingsRepository) GetZipCache(ctx context.Context) (map[string]string, error) {
	cache := make(map[string]string)
	if err := r.getDocument(ctx, collectionZipCodes, zipCacheDocument, &cache); err != nil {
		if err == ErrDocumentNotFound {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return cache, nil
}

func (r *settingsRepository) SetZipEntry(ctx context.Context, zip, district string) error {
	cache, err := r.GetZipCache(ctx)
	if err != nil {
		return err
	}
	cache[zip] = district
	return r.setDocument(ctx, collectionZipCodes, zipCacheDocument, cache)
}

func (r *settingsRepository) SetZipCache(ctx context.Context, cache map[string]string) error {
	return r.setDocument(ctx, collectionZipCodes, zipCacheDocument, cache)
}

func (r *settingsRepository) GetGeneralSettings(ctx context.Context) (domain.GeneralSettings, error) {
	var settings domain.GeneralSettings
	if err := r.getDocument(ctx, collectionSettings, settingsDocument, &settings); err != nil {
		if err == ErrDocumentNotFound {
			return domain.GeneralSettings{}, nil
		}
		return domain.GeneralSettings{}, err
	}
	return settings, nil
}

func (r *settingsRepository) SetGeneralSettings(ctx context.Context, settings domain.GeneralSettings) error {
	return r.setDocument(ctx, collectionSettings, settingsDocument, settings)
}
