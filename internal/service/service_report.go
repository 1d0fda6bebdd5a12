package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/store"
	"github.com/MKhiriev/go-delivery-board/models"
)

type reportService struct {
	deliveryRepository store.DeliveryRepository

	ignoredCollaborator string
	topTasks            int

	logger *logger.Logger
}

// NewReportService constructs a ReportService reading from
// deliveryRepository.
func NewReportService(deliveryRepository store.DeliveryRepository, ingestCfg config.Ingest, reportCfg config.Report, logger *logger.Logger) ReportService {
	return &reportService{
		deliveryRepository:  deliveryRepository,
		ignoredCollaborator: ingestCfg.IgnoredCollaborator,
		topTasks:            reportCfg.TopTasks,
		logger:              logger,
	}
}

// Query returns the records of the requested months restricted to the
// session's visible departments, without the ignored collaborator.
// Requested departments outside the visibility are silently dropped.
func (r *reportService) Query(ctx context.Context, state models.SessionState, filter models.DeliveryFilter) ([]models.DeliveryRecord, error) {
	visible, err := Visibility(state)
	if err != nil {
		return nil, err
	}

	departments := visible
	if len(filter.Departments) > 0 {
		departments = make([]models.Department, 0, len(filter.Departments))
		for _, d := range filter.Departments {
			if slices.Contains(visible, d) {
				departments = append(departments, d)
			}
		}
	}

	records, err := r.deliveryRepository.QueryByMonths(ctx, filter.Months...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reportService.Query").Msg("error querying deliveries")
		return nil, fmt.Errorf("error querying deliveries: %w", err)
	}

	filtered := make([]models.DeliveryRecord, 0, len(records))
	for _, rec := range records {
		if r.ignoredCollaborator != "" && rec.Collaborator == r.ignoredCollaborator {
			continue
		}
		if !slices.Contains(departments, rec.Department) {
			continue
		}
		if len(filter.Collaborators) > 0 && !slices.Contains(filter.Collaborators, rec.Collaborator) {
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered, nil
}

// Summary aggregates the result of Query.
func (r *reportService) Summary(ctx context.Context, state models.SessionState, filter models.DeliveryFilter) (models.ReportSummary, error) {
	records, err := r.Query(ctx, state, filter)
	if err != nil {
		return models.ReportSummary{}, err
	}
	return Aggregate(records, r.topTasks, r.ignoredCollaborator), nil
}

// Filters lists the stored months (newest first), the collaborators
// (ascending, without the ignored one) and the visible departments.
func (r *reportService) Filters(ctx context.Context, state models.SessionState) (models.FilterOptions, error) {
	visible, err := Visibility(state)
	if err != nil {
		return models.FilterOptions{}, err
	}

	months, err := r.deliveryRepository.DistinctMonths(ctx)
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("error listing months: %w", err)
	}

	collaborators, err := r.deliveryRepository.DistinctCollaborators(ctx, r.ignoredCollaborator)
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("error listing collaborators: %w", err)
	}

	return models.FilterOptions{
		Months:        months,
		Collaborators: collaborators,
		Departments:   visible,
	}, nil
}

// DeleteMonth removes every record of month. Administrador only.
func (r *reportService) DeleteMonth(ctx context.Context, state models.SessionState, month string) (int64, error) {
	if err := RequireAdmin(state); err != nil {
		return 0, err
	}

	deleted, err := r.deliveryRepository.DeleteByMonth(ctx, month)
	if err != nil {
		return 0, fmt.Errorf("error deleting month %s: %w", month, err)
	}
	return deleted, nil
}

// DeleteAll removes every record. Administrador only.
func (r *reportService) DeleteAll(ctx context.Context, state models.SessionState) (int64, error) {
	if err := RequireAdmin(state); err != nil {
		return 0, err
	}

	deleted, err := r.deliveryRepository.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("error deleting deliveries: %w", err)
	}
	return deleted, nil
}
