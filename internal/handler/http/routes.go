package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// The verification page is served from a different origin in the demo
	// deployment, so the API stays fully open.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Group(func(r chi.Router) {
		r.Post("/api/upload-certificate", h.uploadCertificate)
		r.Get("/api/metadata/{tokenId}", h.metadata)
		r.Get("/api/certificates", h.listCertificates)
		r.Get("/api/verify/{hash}", h.verify)
		r.Get("/api/health", h.health)
	})

	router.Get("/files/{name}", h.certificateFile)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
