package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// registry and delivery API
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/webhook", h.registerWebhook)
		r.Delete("/webhook", h.unregisterWebhook)
		r.Get("/webhooks", h.listWebhooks)
		r.Get("/webhooks/{event}", h.listEventWebhooks)

		r.Post("/events", h.createEvent)
		r.Delete("/events/{event}", h.deleteEvent)

		r.Get("/ping", h.ping)
		r.Post("/ping", h.ping)
		r.Post("/simulate-event", h.simulateEvent)
		r.Post("/trigger", h.trigger)
	})

	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
