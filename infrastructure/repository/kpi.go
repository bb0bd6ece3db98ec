package repository

import (
	"context"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/database/postgres"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
)

const kpiDocument = "regions"

// KPIRepository stores per-region reference figures such as population, GDP
// and monthly sales targets.
type KPIRepository interface {
	GetKPIData(ctx context.Context) (domain.KPIData, error)
	SetKPIData(ctx context.Context, data domain.KPIData) error
}

type kpiRepository struct {
	documentStore
}

func NewKPIRepository(conn postgres.Queryer) KPIRepository {
	return &kpiRepository{documentStore{conn: conn}}
}

func (r *kpiRepository) GetKPIData(ctx context.Context) (domain.KPIData, error) {
	data := make(domain.KPIData)
	if err := r.getDocument(ctx, collectionKPI, kpiDocument, &data); err != nil {
		if err == ErrDocumentNotFound {
			return domain.KPIData{}, nil
		}
		return nil, err
	}
	return data, nil
}

func (r *kpiRepository) SetKPIData(ctx context.Context, data domain.KPIData) error {
	return r.setDocument(ctx, collectionKPI, kpiDocument, data)
}
