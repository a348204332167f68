package bot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tgstash/internal/config"
	"tgstash/internal/service"
)

// Runner owns the Telegram connection and feeds every update into the
// Dispatcher, in either long-poll or webhook mode.
type Runner struct {
	bot        *tgbot.Bot
	dispatcher *Dispatcher
}

func NewRunner(token string, files service.FileService, cfg config.Public) (*Runner, error) {
	r := &Runner{}

	b, err := tgbot.New(token, tgbot.WithDefaultHandler(r.handleUpdate))
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}

	r.bot = b
	r.dispatcher = NewDispatcher(files, cfg, b)
	return r, nil
}

func (r *Runner) handleUpdate(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	r.dispatcher.HandleUpdate(ctx, update)
}

// StartPolling connects via long-polling and blocks until ctx is
// cancelled.
func (r *Runner) StartPolling(ctx context.Context) {
	slog.Info("telegram: starting long-poll")
	r.bot.Start(ctx)
}

// StartWebhook consumes updates queued by WebhookHandler and blocks until
// ctx is cancelled. Run it alongside the HTTP server that mounts the
// handler.
func (r *Runner) StartWebhook(ctx context.Context) {
	slog.Info("telegram: starting webhook consumer")
	r.bot.StartWebhook(ctx)
}

// WebhookHandler returns the HTTP handler that accepts updates pushed by
// Telegram.
func (r *Runner) WebhookHandler() http.HandlerFunc {
	return r.bot.WebhookHandler()
}

// Bot exposes the underlying client for webhook management calls.
func (r *Runner) Bot() *tgbot.Bot {
	return r.bot
}
