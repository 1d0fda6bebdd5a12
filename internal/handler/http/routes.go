package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// promhttp negotiates its own compression
	router.Handle("/metrics", promhttp.Handler())

	// routes without session
	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(compressionLevel))
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(compressionLevel), withGZipBody, h.session)

		r.Get("/api/session", h.getSession)
		r.Post("/api/session/login", h.login)
		r.Post("/api/session/logout", h.logout)

		r.Get("/api/profiles/{profile}", h.getProfileStatus)
		r.Put("/api/profiles/{profile}/password", h.setPassword)

		r.Get("/api/filters", h.getFilters)
		r.Get("/api/deliveries", h.listDeliveries)
		r.Get("/api/deliveries/summary", h.getSummary)
		r.Delete("/api/deliveries", h.deleteAll)
		r.Delete("/api/deliveries/months/{month}", h.deleteMonth)
	})

	// the digest covers the body as sent, before gzip inflation
	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(compressionLevel), h.session, h.uploadIntegrity, withGZipBody)
		r.Post("/api/deliveries/upload", h.upload)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
