package setup

import (
	"fmt"

	"tgstash/internal/bot"
	"tgstash/internal/config"
	"tgstash/internal/handler"
	"tgstash/internal/service"
	"tgstash/internal/storage/sqlite"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Storage *sqlite.Storage
	Files   service.FileService
	Runner  *bot.Runner
	Handler *handler.Handler
}

// SetupDependencies wires storage, the file service, the Telegram runner,
// and the HTTP handlers from the loaded config.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := sqlite.New(cfg.Public.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("setup storage: %w", err)
	}

	files := service.NewFiles(storage, cfg.Public)

	runner, err := bot.NewRunner(cfg.BotToken(), files, cfg.Public)
	if err != nil {
		storage.Cleanup()
		return nil, fmt.Errorf("setup telegram runner: %w", err)
	}

	h := handler.New(runner.Bot(), storage, cfg.Public)

	return &Dependencies{
		Storage: storage,
		Files:   files,
		Runner:  runner,
		Handler: h,
	}, nil
}
