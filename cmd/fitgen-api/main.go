package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaronromeo/fitgen/internal/config"
	"github.com/aaronromeo/fitgen/internal/httpapi"
	"github.com/aaronromeo/fitgen/internal/llm"
	"github.com/aaronromeo/fitgen/internal/llm/provider"
	"github.com/gofiber/fiber/v2"
)

const shutdownGrace = 5 * time.Second

func gracefulShutdown(app *fiber.App, logger *slog.Logger, done chan struct{}) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("shutting down")
	stop() // a second signal kills the process

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("forced shutdown", "error", err.Error())
	}
	close(done)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	programLevel := slog.LevelInfo
	if cfg.Debug {
		programLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(logger)

	p, err := provider.NewOpenAIProvider(
		provider.WithAPIKey(cfg.OpenaiKey),
		provider.WithModel(cfg.LlmModel),
		provider.WithBaseURL(cfg.LlmBaseURL),
		provider.WithTemperature(cfg.LlmTemperature),
		provider.WithTimeout(cfg.LlmTimeout),
		provider.WithRetries(cfg.LlmRetries),
		provider.WithLogger(logger),
	)
	if err != nil {
		log.Fatal(err)
	}

	opts := []llm.LLMClientOption{llm.WithProvider(p), llm.WithLogger(logger)}
	if cfg.StrictCalories {
		opts = append(opts, llm.WithCalorieCheck())
	}
	gen, err := llm.New(opts...)
	if err != nil {
		log.Fatal(err)
	}

	app := httpapi.NewServer(cfg, logger, gen)

	done := make(chan struct{})
	go gracefulShutdown(app, logger, done)

	logger.Info("listening", "addr", cfg.Addr, "model", cfg.LlmModel, "debug", cfg.Debug)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
	<-done
}
