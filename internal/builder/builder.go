package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/fitplan-backend/internal/api"
	generationapi "github.com/futig/fitplan-backend/internal/api/generation"
	libraryapi "github.com/futig/fitplan-backend/internal/api/library"
	sessionapi "github.com/futig/fitplan-backend/internal/api/session"
	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/futig/fitplan-backend/internal/telegram"
	"go.uber.org/zap"
)

// Build assembles the HTTP service
func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	core, err := NewCore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	maxBody := cfg.LimitsCfg.MaxBodySize
	router := api.SetupRouter(api.Handlers{
		Generation: generationapi.NewHandler(core.Plans, core.Assets, core.Speech, maxBody),
		Session:    sessionapi.NewHandler(core.Sessions, maxBody),
		Library:    libraryapi.NewHandler(core.Library, maxBody),
	}, cfg.RequestTimeout, log)
	log.Info("HTTP router configured")

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Plan generation is slow; the router timeout bounds each request first.
		WriteTimeout: cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("Application built successfully", zap.String("environment", cfg.Environment))

	return &App{
		server:          server,
		core:            core,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          log,
	}, nil
}

// BuildTelegramBot creates the Telegram front-end. The caller closes the
// returned Core after stopping the bot.
func BuildTelegramBot() (telegram.Bot, *Core, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building Telegram bot", zap.String("environment", cfg.Environment))

	if cfg.TelegramCfg.BotToken == "" {
		return nil, nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	core, err := NewCore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	bot, err := telegram.NewBot(&cfg.TelegramCfg, telegram.Usecases{
		Sessions: core.Sessions,
		Assets:   core.Assets,
		Speech:   core.Speech,
	}, cfg.RequestTimeout, log)
	if err != nil {
		core.Close()
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	log.Info("Telegram bot built successfully", zap.String("environment", cfg.Environment))

	return bot, core, nil
}
