package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delivery-board/internal/validators"
	"github.com/MKhiriev/go-delivery-board/models"
)

// IngestionValidationService validates upload requests before handing them
// to the wrapped IngestionService.
type IngestionValidationService struct {
	inner     IngestionService
	validator validators.Validator
}

func NewIngestionValidationService() IngestionServiceWrapper {
	return &IngestionValidationService{
		validator: validators.NewDeliveryValidator(),
	}
}

func (v *IngestionValidationService) Ingest(ctx context.Context, state models.SessionState, req models.IngestRequest) (models.IngestResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.IngestResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Ingest(ctx, state, req)
}

func (v *IngestionValidationService) Wrap(wrapped IngestionService) IngestionService {
	v.inner = wrapped
	return v
}

// AccessValidationService validates credentials before handing them to the
// wrapped AccessService.
type AccessValidationService struct {
	AccessService
	validator validators.Validator
}

func NewAccessValidationService() AccessServiceWrapper {
	return &AccessValidationService{
		validator: validators.NewDeliveryValidator(),
	}
}

func (v *AccessValidationService) Login(ctx context.Context, state models.SessionState, profile models.Profile, secret string) (models.SessionState, error) {
	req := models.LoginRequest{Profile: string(profile), Password: secret}
	if err := v.validator.Validate(ctx, req); err != nil {
		return state, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.AccessService.Login(ctx, state, profile, secret)
}

func (v *AccessValidationService) SetPassword(ctx context.Context, state models.SessionState, profile models.Profile, secret string) error {
	if err := v.validator.Validate(ctx, models.LoginRequest{Profile: string(profile)}, validators.FieldProfile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, models.PasswordRequest{Password: secret}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.AccessService.SetPassword(ctx, state, profile, secret)
}

func (v *AccessValidationService) Wrap(wrapped AccessService) AccessService {
	v.AccessService = wrapped
	return v
}

// ReportValidationService validates filters and month keys before handing
// them to the wrapped ReportService.
type ReportValidationService struct {
	inner     ReportService
	validator validators.Validator
}

func NewReportValidationService() ReportServiceWrapper {
	return &ReportValidationService{
		validator: validators.NewDeliveryValidator(),
	}
}

func (v *ReportValidationService) Query(ctx context.Context, state models.SessionState, filter models.DeliveryFilter) ([]models.DeliveryRecord, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Query(ctx, state, filter)
}

func (v *ReportValidationService) Summary(ctx context.Context, state models.SessionState, filter models.DeliveryFilter) (models.ReportSummary, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return models.ReportSummary{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Summary(ctx, state, filter)
}

func (v *ReportValidationService) Filters(ctx context.Context, state models.SessionState) (models.FilterOptions, error) {
	return v.inner.Filters(ctx, state)
}

func (v *ReportValidationService) DeleteMonth(ctx context.Context, state models.SessionState, month string) (int64, error) {
	if err := v.validator.Validate(ctx, month); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeleteMonth(ctx, state, month)
}

func (v *ReportValidationService) DeleteAll(ctx context.Context, state models.SessionState) (int64, error) {
	return v.inner.DeleteAll(ctx, state)
}

func (v *ReportValidationService) Wrap(wrapped ReportService) ReportService {
	v.inner = wrapped
	return v
}
