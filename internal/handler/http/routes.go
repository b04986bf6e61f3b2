package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/healthcheck", h.healthcheck)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/journals/", h.createEntry)
		r.Get("/journals/", h.listEntries)
		r.Get("/journals/{entryID}", h.getEntry)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
