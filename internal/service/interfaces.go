package service

import (
	"context"

	"github.com/MKhiriev/go-delivery-board/models"
)

// IngestionService turns uploaded tables into stored delivery records.
type IngestionService interface {
	Ingest(ctx context.Context, state models.SessionState, req models.IngestRequest) (models.IngestResult, error)
}

// AccessService runs the per-profile authentication state machine. Every
// state-changing call takes the current session state and returns the next
// one; the input state is never modified.
type AccessService interface {
	Login(ctx context.Context, state models.SessionState, profile models.Profile, secret string) (models.SessionState, error)
	Logout(ctx context.Context, state models.SessionState) models.SessionState
	SetPassword(ctx context.Context, state models.SessionState, profile models.Profile, secret string) error
	ProfileStatus(ctx context.Context, profile models.Profile) (bool, error)
	Visibility(state models.SessionState) ([]models.Department, error)
	RequireAdmin(state models.SessionState) error

	CreateToken(ctx context.Context, state models.SessionState) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ReportService answers dashboard queries scoped to the session's
// visibility and runs the Admin-only deletions.
type ReportService interface {
	Query(ctx context.Context, state models.SessionState, filter models.DeliveryFilter) ([]models.DeliveryRecord, error)
	Summary(ctx context.Context, state models.SessionState, filter models.DeliveryFilter) (models.ReportSummary, error)
	Filters(ctx context.Context, state models.SessionState) (models.FilterOptions, error)
	DeleteMonth(ctx context.Context, state models.SessionState, month string) (int64, error)
	DeleteAll(ctx context.Context, state models.SessionState) (int64, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfoView
}

// IngestionServiceWrapper decorates an IngestionService, for example with
// request validation.
type IngestionServiceWrapper interface {
	Wrap(IngestionService) IngestionService
}

// AccessServiceWrapper decorates an AccessService.
type AccessServiceWrapper interface {
	Wrap(AccessService) AccessService
}

// ReportServiceWrapper decorates a ReportService.
type ReportServiceWrapper interface {
	Wrap(ReportService) ReportService
}
