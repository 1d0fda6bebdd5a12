package http

import (
	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/service"
)

// defaultMaxUploadSize caps upload bodies when the server config sets no
// limit.
const defaultMaxUploadSize int64 = 32 << 20

type Handler struct {
	services *service.Services
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}

func (h *Handler) maxUploadSize() int64 {
	if h.cfg.MaxUploadSize > 0 {
		return h.cfg.MaxUploadSize
	}
	return defaultMaxUploadSize
}
