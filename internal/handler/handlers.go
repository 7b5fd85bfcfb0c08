package handler

import (
	"github.com/MKhiriev/brand-snap/internal/config"
	"github.com/MKhiriev/brand-snap/internal/handler/http"
	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
