package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	tgbot "github.com/go-telegram/bot"
)

type setWebhookRequest struct {
	Url string `json:"url"`
}

// SetWebhook registers the given URL with Telegram. Pending updates are
// dropped so the bot does not replay a long-poll backlog into the new
// webhook.
func (h *Handler) SetWebhook(w http.ResponseWriter, r *http.Request) {
	var body setWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Url == "" {
		writeError(w, http.StatusBadRequest, "No webhook URL provided")
		return
	}

	ok, err := h.bot.SetWebhook(r.Context(), &tgbot.SetWebhookParams{
		URL:                body.Url,
		DropPendingUpdates: true,
	})
	if err != nil || !ok {
		slog.Error("setting webhook failed", "url", body.Url, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to set webhook")
		return
	}

	slog.Info("webhook set", "url", body.Url)
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "success",
		"webhook_url": body.Url,
	})
}

// DeleteWebhook unregisters the webhook so the bot can switch back to
// long-polling.
func (h *Handler) DeleteWebhook(w http.ResponseWriter, r *http.Request) {
	ok, err := h.bot.DeleteWebhook(r.Context(), &tgbot.DeleteWebhookParams{
		DropPendingUpdates: true,
	})
	if err != nil || !ok {
		slog.Error("deleting webhook failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete webhook")
		return
	}

	slog.Info("webhook deleted")
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Webhook deleted",
	})
}

type webhookInfoResponse struct {
	Url                  string   `json:"url"`
	HasCustomCertificate bool     `json:"has_custom_certificate"`
	PendingUpdateCount   int      `json:"pending_update_count"`
	LastErrorDate        *string  `json:"last_error_date"`
	LastErrorMessage     string   `json:"last_error_message"`
	MaxConnections       int      `json:"max_connections"`
	AllowedUpdates       []string `json:"allowed_updates"`
}

// WebhookInfo reports the webhook registration Telegram currently holds
// for this bot.
func (h *Handler) WebhookInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.bot.GetWebhookInfo(r.Context())
	if err != nil {
		slog.Error("getting webhook info failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to get webhook info")
		return
	}

	resp := webhookInfoResponse{
		Url:                  info.URL,
		HasCustomCertificate: info.HasCustomCertificate,
		PendingUpdateCount:   info.PendingUpdateCount,
		LastErrorMessage:     info.LastErrorMessage,
		MaxConnections:       info.MaxConnections,
		AllowedUpdates:       info.AllowedUpdates,
	}
	if info.LastErrorDate != 0 {
		formatted := time.Unix(int64(info.LastErrorDate), 0).UTC().Format(time.RFC3339)
		resp.LastErrorDate = &formatted
	}

	writeJSON(w, http.StatusOK, resp)
}
