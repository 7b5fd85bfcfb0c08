package http

import (
	"net/http"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/utils"
	"github.com/MKhiriev/brand-snap/models"
)

const (
	healthUp   = "UP"
	healthDown = "DOWN"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// checkHealth answers 200 when the database answers a ping and 503 otherwise.
func (h *Handler) checkHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	version := h.services.AppInfoService.GetAppVersion(ctx)

	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteJSON(w, models.HealthResponse{Status: healthDown, Version: version}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: healthUp, Version: version}, http.StatusOK)
}
