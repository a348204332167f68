// Package handler exposes the webhook-management and probe endpoints of
// the HTTP server that fronts the bot in webhook mode.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tgstash/internal/config"
)

// webhookManager is the slice of the Telegram API used for webhook
// management. *bot.Bot satisfies it.
type webhookManager interface {
	SetWebhook(ctx context.Context, params *tgbot.SetWebhookParams) (bool, error)
	DeleteWebhook(ctx context.Context, params *tgbot.DeleteWebhookParams) (bool, error)
	GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error)
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	bot    webhookManager
	health HealthChecker
	cfg    config.Public
}

func New(bot webhookManager, health HealthChecker, cfg config.Public) *Handler {
	return &Handler{bot: bot, health: health, cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
