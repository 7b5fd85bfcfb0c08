package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withCSRF)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/google", h.googleLogin)

		r.Get("/api/csrf-token", h.csrfToken)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.checkHealth)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/projects", h.createProject)
		r.Get("/api/projects", h.listProjects)
		r.Get("/api/projects/{id}", h.getProject)
		r.Put("/api/projects/{id}", h.updateProject)
		r.Delete("/api/projects/{id}", h.deleteProject)

		r.Post("/api/campaigns", h.createCampaign)
		r.Get("/api/campaigns", h.listCampaigns)
		r.Get("/api/campaigns/{id}", h.getCampaign)
		r.Put("/api/campaigns/{id}", h.updateCampaign)
		r.Delete("/api/campaigns/{id}", h.deleteCampaign)

		r.Post("/api/assets", h.generateAsset)
		r.Get("/api/assets", h.listAssets)
		r.Put("/api/assets/{id}", h.updateAsset)
		r.Delete("/api/assets/{id}", h.deleteAsset)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
