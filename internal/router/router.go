package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tgstash/internal/middleware/metrics"
	"tgstash/internal/setup"
)

// New configures the webhook-mode HTTP server: the Telegram update
// receiver, webhook management, probes, and metrics.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	h := deps.Handler

	r.Post("/webhook", deps.Runner.WebhookHandler())
	r.Post("/set_webhook", h.SetWebhook)
	r.Get("/webhook_info", h.WebhookInfo)
	r.Post("/delete_webhook", h.DeleteWebhook)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
