// Package bot contains the Telegram-facing side of tgstash: update
// dispatch, command parsing, reply formatting, and the long-poll/webhook
// runner.
package bot

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tgstash/internal/config"
	"tgstash/internal/domain"
	internal_errors "tgstash/internal/errors"
	"tgstash/internal/service"
	"tgstash/internal/sizeutil"
)

// Replies use Telegram's legacy Markdown mode; escapeMarkdown matches it.
const parseMode = models.ParseModeMarkdownV1

var (
	updatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Total number of handled Telegram updates by intent",
		},
		[]string{"intent"},
	)

	sendFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_send_failures_total",
			Help: "Total number of failed Telegram send/edit calls",
		},
	)
)

// Sender is the slice of the Telegram API the dispatcher needs. *bot.Bot
// satisfies it; tests substitute a mock.
type Sender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *tgbot.EditMessageTextParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *tgbot.SendDocumentParams) (*models.Message, error)
}

// Dispatcher maps inbound updates to file-service calls and formats the
// replies. It holds no per-conversation state: every update is handled
// from the store's current contents alone.
type Dispatcher struct {
	files  service.FileService
	cfg    config.Public
	sender Sender
}

func NewDispatcher(files service.FileService, cfg config.Public, sender Sender) *Dispatcher {
	return &Dispatcher{files, cfg, sender}
}

// HandleUpdate is the single entry point for both transports. Any
// file-bearing message is an upload; everything else is routed by command.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message

	if upload, ok := extractUpload(msg); ok {
		updatesTotal.WithLabelValues("upload").Inc()
		d.handleUpload(ctx, msg, upload)
		return
	}

	command, arg := parseCommand(msg.Text)
	if command == "" {
		return
	}
	userId := msg.From.ID

	switch command {
	case "start":
		updatesTotal.WithLabelValues("start").Inc()
		d.reply(ctx, msg, welcomeText(d.cfg))
	case "help":
		updatesTotal.WithLabelValues("help").Inc()
		d.reply(ctx, msg, helpText())
	case "upload":
		updatesTotal.WithLabelValues("upload_info").Inc()
		d.reply(ctx, msg, uploadInfoText(d.cfg))
	case "list":
		updatesTotal.WithLabelValues("list").Inc()
		d.handleList(ctx, msg, userId)
	case "details":
		updatesTotal.WithLabelValues("details").Inc()
		d.handleDetails(ctx, msg, userId, arg)
	case "stats":
		updatesTotal.WithLabelValues("stats").Inc()
		d.handleStats(ctx, msg, userId)
	case "download":
		updatesTotal.WithLabelValues("download").Inc()
		d.handleDownload(ctx, msg, userId, arg)
	case "delete":
		updatesTotal.WithLabelValues("delete").Inc()
		d.handleDelete(ctx, msg, userId, arg)
	}
	// Unrecognized commands are ignored, same as messages without files.
}

func (d *Dispatcher) handleUpload(ctx context.Context, msg *models.Message, upload domain.Upload) {
	safeName := escapeMarkdown(upload.FileName)

	processing, err := d.send(ctx, msg.Chat.ID, fmt.Sprintf(
		"⏳ Processing upload: **%s**\nSize: %s", safeName, sizeutil.FormatSize(upload.FileSize)))
	if err != nil {
		return
	}

	record, err := d.files.Upload(upload)
	if err != nil {
		d.edit(ctx, msg.Chat.ID, processing.ID, d.errorText(err, upload.FileName))
		return
	}

	d.edit(ctx, msg.Chat.ID, processing.ID, fmt.Sprintf(
		"✅ **Upload Successful!**\n\n"+
			"📁 File: %s\n"+
			"📊 Size: %s\n"+
			"🎯 Type: %s\n\n"+
			"Use /download command to download it later.",
		safeName, sizeutil.FormatSize(record.FileSize), record.MimeType))

	slog.Info("file uploaded", "file_name", record.FileName, "user_id", upload.UserId)
}

func (d *Dispatcher) handleList(ctx context.Context, msg *models.Message, userId domain.UserId) {
	files, err := d.files.List(userId)
	if err != nil {
		slog.Error("listing files failed", "user_id", userId, "err", err)
		d.reply(ctx, msg, "❌ An error occurred while retrieving your files.")
		return
	}

	d.reply(ctx, msg, listText(files))
}

func (d *Dispatcher) handleDetails(ctx context.Context, msg *models.Message, userId domain.UserId, fileName string) {
	if fileName == "" {
		d.reply(ctx, msg, usageText("details"))
		return
	}

	record, err := d.files.Details(userId, fileName)
	if err != nil {
		d.reply(ctx, msg, d.errorText(err, fileName))
		return
	}

	d.reply(ctx, msg, detailsText(record))
}

func (d *Dispatcher) handleStats(ctx context.Context, msg *models.Message, userId domain.UserId) {
	stats, err := d.files.Stats(userId)
	if err != nil {
		slog.Error("computing stats failed", "user_id", userId, "err", err)
		d.reply(ctx, msg, "❌ An error occurred while retrieving storage statistics.")
		return
	}

	d.reply(ctx, msg, statsText(stats, d.cfg.MaxFilesPerUser))
}

func (d *Dispatcher) handleDownload(ctx context.Context, msg *models.Message, userId domain.UserId, fileName string) {
	if fileName == "" {
		d.reply(ctx, msg, usageText("download"))
		return
	}

	record, err := d.files.Download(userId, fileName)
	if err != nil {
		d.reply(ctx, msg, d.errorText(err, fileName))
		return
	}

	safeName := escapeMarkdown(fileName)
	size := sizeutil.FormatSize(record.FileSize)

	processing, err := d.send(ctx, msg.Chat.ID, fmt.Sprintf(
		"⏳ Preparing download: **%s**\nSize: %s", safeName, size))
	if err != nil {
		return
	}

	// Telegram re-sends the stored bytes when given the file_id back.
	_, err = d.sender.SendDocument(ctx, &tgbot.SendDocumentParams{
		ChatID:   msg.Chat.ID,
		Document: &models.InputFileString{Data: record.FileId},
		Caption:  fmt.Sprintf("📁 %s\n📊 %s", fileName, size),
	})
	if err != nil {
		sendFailuresTotal.Inc()
		slog.Error("sending document failed", "file_name", fileName, "user_id", userId, "err", err)
		d.edit(ctx, msg.Chat.ID, processing.ID,
			"❌ Failed to send the file. The file might be corrupted or too large.")
		return
	}

	d.edit(ctx, msg.Chat.ID, processing.ID, fmt.Sprintf(
		"✅ **Download Complete!**\n\n📁 File: %s\n📊 Size: %s", safeName, size))

	slog.Info("file downloaded", "file_name", fileName, "user_id", userId)
}

func (d *Dispatcher) handleDelete(ctx context.Context, msg *models.Message, userId domain.UserId, fileName string) {
	if fileName == "" {
		d.reply(ctx, msg, usageText("delete"))
		return
	}

	record, err := d.files.Delete(userId, fileName)
	if err != nil {
		d.reply(ctx, msg, d.errorText(err, fileName))
		return
	}

	d.reply(ctx, msg, fmt.Sprintf(
		"✅ **File Deleted!**\n\n"+
			"📁 File: %s\n"+
			"📊 Size: %s\n\n"+
			"Note: The file is removed from your list but may still exist on Telegram's servers.",
		escapeMarkdown(fileName), sizeutil.FormatSize(record.FileSize)))

	slog.Info("file deleted", "file_name", fileName, "user_id", userId)
}

func usageText(command string) string {
	return fmt.Sprintf(
		"❌ Please specify a filename.\nUsage: `/%s filename`\nUse `/list` to see your files.", command)
}

// errorText translates a service error into user-facing reply text.
// Storage failures stay generic; the cause only goes to the log.
func (d *Dispatcher) errorText(err error, fileName string) string {
	var validationErr *internal_errors.ValidationError

	switch {
	case stderrors.Is(err, internal_errors.NotFound):
		return fmt.Sprintf("❌ File '%s' not found.\nUse `/list` to see your available files.", fileName)
	case stderrors.Is(err, internal_errors.DuplicateName):
		return fmt.Sprintf("❌ A file named '%s' already exists.\nPlease rename the file or delete the existing one first.", fileName)
	case stderrors.Is(err, internal_errors.DuplicateFile):
		return "❌ Failed to save file information. The file might already exist."
	case stderrors.As(err, &validationErr):
		return "❌ " + validationErr.Message
	default:
		slog.Error("file operation failed", "file_name", fileName, "err", err)
		return "❌ An error occurred while processing your request. Please try again."
	}
}

func (d *Dispatcher) reply(ctx context.Context, msg *models.Message, text string) {
	d.send(ctx, msg.Chat.ID, text)
}

func (d *Dispatcher) send(ctx context.Context, chatId int64, text string) (*models.Message, error) {
	sent, err := d.sender.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    chatId,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		sendFailuresTotal.Inc()
		slog.Error("sending message failed", "chat_id", chatId, "err", err)
	}
	return sent, err
}

func (d *Dispatcher) edit(ctx context.Context, chatId int64, messageId int, text string) {
	_, err := d.sender.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:    chatId,
		MessageID: messageId,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		sendFailuresTotal.Inc()
		slog.Error("editing message failed", "chat_id", chatId, "err", err)
	}
}
