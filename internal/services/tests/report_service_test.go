package services_test

import (
	"context"
	"testing"

	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupReportServiceTest() (context.Context, services.ReportService, *mocks.MockReportRepository, *mocks.MockEntityRepository) {
	reports := new(mocks.MockReportRepository)
	entities := new(mocks.MockEntityRepository)
	return context.Background(), services.NewReportService(reports, entities), reports, entities
}

func TestReportService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ReportRequest
		kind      models.EntityKind
		exists    bool
		reason    string
		wantErr   error
		wantField string
	}{
		{
			name:   "Review is reported",
			req:    dto.ReportRequest{ReportableType: "review", ReportableID: 4, Reason: "  spam  "},
			kind:   models.KindReview,
			exists: true,
			reason: "spam",
		},
		{
			name:   "Draft offers can still be reported",
			req:    dto.ReportRequest{ReportableType: "job_offer", ReportableID: 9, Reason: "scam"},
			kind:   models.KindJobOffer,
			exists: true,
			reason: "scam",
		},
		{
			name:    "Missing target",
			req:     dto.ReportRequest{ReportableType: "user", ReportableID: 99, Reason: "abuse"},
			kind:    models.KindUser,
			wantErr: services.ErrNotFound,
		},
		{
			name:      "Unknown type",
			req:       dto.ReportRequest{ReportableType: "message", ReportableID: 1, Reason: "abuse"},
			wantField: "reportable_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, reports, entities := setupReportServiceTest()
			if tt.kind != "" {
				entities.On("Exists", ctx, tt.kind, tt.req.ReportableID).Return(tt.exists, nil).Once()
			}
			if tt.exists {
				reports.On("Create", ctx, mock.MatchedBy(func(r *models.Report) bool {
					return r.ReporterID == 11 && r.ReportableType == tt.kind && r.ReportableID == tt.req.ReportableID && r.Reason == tt.reason
				})).Return(&models.Report{ID: 1, ReporterID: 11}, nil).Once()
			}

			report, err := svc.Create(ctx, 11, &tt.req)

			switch {
			case tt.wantField != "":
				assertFieldError(t, err, tt.wantField)
				entities.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(1), report.ID)
				entities.AssertNotCalled(t, "Visible", mock.Anything, mock.Anything, mock.Anything)
				reports.AssertExpectations(t)
			}
		})
	}
}

func TestReportService_UpdateStatus(t *testing.T) {
	note := "handled"

	t.Run("Status is trimmed", func(t *testing.T) {
		ctx, svc, reports, _ := setupReportServiceTest()
		reports.On("UpdateStatus", ctx, int64(4), "resolved", &note).Return(&models.Report{ID: 4, Status: "resolved"}, nil).Once()

		report, err := svc.UpdateStatus(ctx, 4, &dto.ReportStatusRequest{Status: " resolved ", AdminNote: &note})

		require.NoError(t, err)
		assert.Equal(t, "resolved", report.Status)
	})

	t.Run("Missing report", func(t *testing.T) {
		ctx, svc, reports, _ := setupReportServiceTest()
		reports.On("UpdateStatus", ctx, int64(4), "resolved", (*string)(nil)).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.UpdateStatus(ctx, 4, &dto.ReportStatusRequest{Status: "resolved"})

		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestReportService_List(t *testing.T) {
	ctx, svc, reports, _ := setupReportServiceTest()
	reports.On("List", ctx, "pending", defaultPage).Return([]models.Report{{ID: 1}}, 1, nil).Once()

	res, err := svc.List(ctx, &dto.ReportListQuery{Status: "pending"}, defaultPage)

	require.NoError(t, err)
	assert.Len(t, res.Data, 1)
	assert.Equal(t, 1, res.Meta.Total)
}
