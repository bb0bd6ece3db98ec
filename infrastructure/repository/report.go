package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/database/postgres"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
)

// ReportRepository stores uploaded sales reports as dealer-row documents.
type ReportRepository interface {
	GetReport(ctx context.Context, reportID string) ([]domain.Dealer, error)
	GetAggregatedReport(ctx context.Context) ([]domain.Dealer, error)
	SaveReport(ctx context.Context, meta domain.ReportMeta, dealers []domain.Dealer) error
	ListReports(ctx context.Context) ([]domain.ReportMeta, error)
	DeleteReport(ctx context.Context, reportID string) error
}

type reportRepository struct {
	documentStore
}

func NewReportRepository(conn postgres.Queryer) ReportRepository {
	return &reportRepository{documentStore{conn: conn}}
}

func (r *reportRepository) GetReport(ctx context.Context, reportID string) ([]domain.Dealer, error) {
	var dealers []domain.Dealer
	if err := r.getDocument(ctx, collectionReportData, reportID, &dealers); err != nil {
		if err == ErrDocumentNotFound {
			return nil, fmt.Errorf("report %s: %w", reportID, ErrDocumentNotFound)
		}
		return nil, err
	}
	return dealers, nil
}

// GetAggregatedReport concatenates the rows of every stored report. Row
// order follows report name order, so repeated calls are stable.
func (r *reportRepository) GetAggregatedReport(ctx context.Context) ([]domain.Dealer, error) {
	documents, order, err := r.listDocuments(ctx, collectionReportData)
	if err != nil {
		return nil, err
	}

	aggregated := make([]domain.Dealer, 0)
	for _, name := range order {
		var dealers []domain.Dealer
		if err := json.Unmarshal(documents[name], &dealers); err != nil {
			return nil, fmt.Errorf("decoding report %s: %w", name, err)
		}
		aggregated = append(aggregated, dealers...)
	}

	return aggregated, nil
}

func (r *reportRepository) SaveReport(ctx context.Context, meta domain.ReportMeta, dealers []domain.Dealer) error {
	meta.RowCount = len(dealers)
	if err := r.setDocument(ctx, collectionReportData, meta.ID, dealers); err != nil {
		return err
	}
	return r.setDocument(ctx, collectionReports, meta.ID, meta)
}

func (r *reportRepository) ListReports(ctx context.Context) ([]domain.ReportMeta, error) {
	documents, _, err := r.listDocuments(ctx, collectionReports)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.ReportMeta, 0, len(documents))
	for name, data := range documents {
		var meta domain.ReportMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return nil, fmt.Errorf("decoding report metadata %s: %w", name, err)
		}
		reports = append(reports, meta)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].UploadedAt.After(reports[j].UploadedAt)
	})

	return reports, nil
}

func (r *reportRepository) DeleteReport(ctx context.Context, reportID string) error {
	if err := r.deleteDocument(ctx, collectionReportData, reportID); err != nil {
		return err
	}
	return r.deleteDocument(ctx, collectionReports, reportID)
}
