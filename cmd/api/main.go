package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lunchbox-ai/config"
	_ "lunchbox-ai/docs" // Swagger docs
	"lunchbox-ai/internal/httpserver"
	taskRepo "lunchbox-ai/internal/task/repository/sqlite"
	"lunchbox-ai/pkg/datemath"
	"lunchbox-ai/pkg/discord"
	"lunchbox-ai/pkg/gcalendar"
	"lunchbox-ai/pkg/llmprovider"
	"lunchbox-ai/pkg/log"
)

// @title       Lunchbox AI API
// @description AI-powered task planning that packs your day like a lunchbox: plans, steps, XP, and calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Lunchbox AI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := taskRepo.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite database ready at %s", cfg.Database.Path)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.retry_delay %q, using 1s: %v", cfg.LLM.RetryDelay, err)
		retryDelay = time.Second
	}
	maxTotalTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, using 60s: %v", cfg.LLM.MaxTotalTimeout, err)
		maxTotalTimeout = 60 * time.Second
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM manager ready with %d provider(s)", len(providers))

	// 5. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Planner.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 7. Discord notifier (optional)
	var notifier discord.IDiscord
	if cfg.Discord.Enabled && cfg.Discord.WebhookURL != "" {
		notifier, err = discord.New(discord.Config{WebhookURL: cfg.Discord.WebhookURL})
		if err != nil {
			logger.Warnf(ctx, "Discord notifier not available (optional): %v", err)
			notifier = nil
		} else {
			logger.Info(ctx, "✅ Discord notifications enabled")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		DB:          db,
		LLM:         llmManager,
		DateMath:    dateMathParser,
		Calendar:    calendarClient,
		Notifier:    notifier,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
