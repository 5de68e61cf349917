package services

import (
	"context"
	"fmt"
	"strings"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"
)

type reportService struct {
	reports  storage.ReportRepository
	entities storage.EntityRepository
}

func NewReportService(reports storage.ReportRepository, entities storage.EntityRepository) ReportService {
	return &reportService{reports: reports, entities: entities}
}

func (s *reportService) Create(ctx context.Context, reporterID int64, req *dto.ReportRequest) (*models.Report, error) {
	kind, err := models.ParseReportableKind(req.ReportableType)
	if err != nil {
		return nil, fieldError("reportable_type", err.Error())
	}
	ok, err := s.entities.Exists(ctx, kind, req.ReportableID)
	if err != nil {
		return nil, MapRepoError(err, "checking report target")
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, kind, req.ReportableID)
	}
	report, err := s.reports.Create(ctx, &models.Report{
		ReporterID:     reporterID,
		ReportableType: kind,
		ReportableID:   req.ReportableID,
		Reason:         strings.TrimSpace(req.Reason),
	})
	return report, MapRepoError(err, "creating report")
}

func (s *reportService) List(ctx context.Context, q *dto.ReportListQuery, page pagination.PageRequest) (pagination.PageResult[models.Report], error) {
	items, total, err := s.reports.List(ctx, q.Status, page)
	if err != nil {
		return pagination.PageResult[models.Report]{}, MapRepoError(err, "listing reports")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *reportService) Get(ctx context.Context, id int64) (*models.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	return report, MapRepoError(err, fmt.Sprintf("fetching report %d", id))
}

func (s *reportService) UpdateStatus(ctx context.Context, id int64, req *dto.ReportStatusRequest) (*models.Report, error) {
	report, err := s.reports.UpdateStatus(ctx, id, strings.TrimSpace(req.Status), req.AdminNote)
	return report, MapRepoError(err, fmt.Sprintf("updating report %d", id))
}
