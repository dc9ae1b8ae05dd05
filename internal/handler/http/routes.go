package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	// hashing sits inside gzip so the digest covers the plain body
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip, h.withHashing)

	router.Route("/api/dicts", func(r chi.Router) {
		r.Get("/", h.listTypes)
		r.Post("/batch", h.getBatch)
		r.Get("/changes", h.getChanges)
		r.Put("/{type}/entries", h.upsertEntries)
		r.Delete("/{type}/entries", h.removeEntries)
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/version/build", h.getBuildInfo)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
