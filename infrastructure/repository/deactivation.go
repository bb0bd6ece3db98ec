package repository

import (
	"context"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/database/postgres"
)

const deactivatedDocument = "names"

// DeactivationRepository stores the list of dealer names hidden from the
// dashboard.
type DeactivationRepository interface {
	GetDeactivatedList(ctx context.Context) ([]string, error)
	SetDeactivatedList(ctx context.Context, names []string) error
}

type deactivationRepository struct {
	documentStore
}

func NewDeactivationRepository(conn postgres.Queryer) DeactivationRepository {
	return &deactivationRepository{documentStore{conn: conn}}
}

func (r *deactivationRepository) GetDeactivatedList(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.getDocument(ctx, collectionDeactivated, deactivatedDocument, &names); err != nil {
		if err == ErrDocumentNotFound {
			return []string{}, nil
		}
		return nil, err
	}
	return names, nil
}

func (r *deactivationRepository) SetDeactivatedList(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	return r.setDocument(ctx, collectionDeactivated, deactivatedDocument, names)
}
