package server

import (
	"net/http"

	"github.com/cloo-solutions/loanfaq/internal/api"
	"github.com/cloo-solutions/loanfaq/internal/api/handlers"
	"github.com/cloo-solutions/loanfaq/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	WebhookHandler *handlers.WebhookHandler
	KBHandler      *handlers.KBHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Fulfillment payloads are small; anything bigger is not a webhook.
	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Post("/webhook", cfg.WebhookHandler.Handle)

	r.Route("/kb", func(r chi.Router) {
		r.Get("/", cfg.KBHandler.List)
		r.Get("/coverage", cfg.KBHandler.Coverage)
	})

	return r
}
