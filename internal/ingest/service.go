package ingest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
	"github.com/yes-weigh/yesbheem-sub001/pkg/utils"
)

// Importer registers uploaded report workbooks in the backing store.
type Importer interface {
	ImportReport(ctx context.Context, name string, r io.Reader) (domain.ReportMeta, error)
}

type service struct {
	reports  repository.ReportRepository
	settings repository.SettingsRepository
}

func NewService(reports repository.ReportRepository, settings repository.SettingsRepository) Importer {
	return &service{
		reports:  reports,
		settings: settings,
	}
}

// ImportReport parses the workbook, stores its rows under a fresh report id
// and marks that report as the active one.
func (s *service) ImportReport(ctx context.Context, name string, r io.Reader) (domain.ReportMeta, error) {
	dealers, err := ParseWorkbook(r)
	if err != nil {
		return domain.ReportMeta{}, fmt.Errorf("parsing report %s: %w", name, err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return domain.ReportMeta{}, fmt.Errorf("generating report id: %w", err)
	}

	meta := domain.ReportMeta{
		ID:         id,
		Name:       name,
		RowCount:   len(dealers),
		UploadedAt: time.Now().UTC(),
	}

	if err := s.reports.SaveReport(ctx, meta, dealers); err != nil {
		return domain.ReportMeta{}, fmt.Errorf("storing report %s: %w", name, err)
	}

	settings, err := s.settings.GetGeneralSettings(ctx)
	if err != nil {
		return domain.ReportMeta{}, fmt.Errorf("reading settings: %w", err)
	}
	settings.ActiveReportID = meta.ID
	settings.UpdatedAt = meta.UploadedAt
	if err := s.settings.SetGeneralSettings(ctx, settings); err != nil {
		return domain.ReportMeta{}, fmt.Errorf("activating report %s: %w", meta.ID, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report_id": meta.ID,
		"name":      name,
		"rows":      meta.RowCount,
	}).Info("report imported")

	return meta, nil
}
