package service

import (
	"fmt"

	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/metrics"
	"github.com/MKhiriev/go-delivery-board/internal/store"
	"github.com/MKhiriev/go-delivery-board/models"
)

type Services struct {
	AppInfoService   AppInfoService
	AccessService    AccessService
	IngestionService IngestionService
	ReportService    ReportService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ingestionService := NewIngestionValidationService().
		Wrap(NewIngestionService(storages.DeliveryRepository, cfg.Ingest, m, logger))
	accessService := NewAccessValidationService().
		Wrap(NewAccessService(storages.ProfileRepository, cfg.App, m, logger))
	reportService := NewReportValidationService().
		Wrap(NewReportService(storages.DeliveryRepository, cfg.Ingest, cfg.Report, logger))

	return &Services{
		AppInfoService:   appInfoService,
		AccessService:    accessService,
		IngestionService: ingestionService,
		ReportService:    reportService,
	}, nil
}
