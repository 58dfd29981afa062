package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withRateLimit)

		r.Route("/api/vault", func(r chi.Router) {
			r.Get("/", h.listRecords)
			r.Post("/", h.createRecord)
			r.Put("/{id}", h.updateRecord)
			r.Delete("/{id}", h.deleteRecord)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
