package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/token", h.mintToken)
	})

	// the app-private folder, scoped to the authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/files", h.listFiles)
		r.Get("/api/files/{id}", h.readFile)
		r.Put("/api/files/{name}", h.writeFile)
	})

	return router
}
