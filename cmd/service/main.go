package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/josh-stephens/youtube-summary-agent/internal/agent"
	"github.com/josh-stephens/youtube-summary-agent/internal/api"
	"github.com/josh-stephens/youtube-summary-agent/internal/api/handlers"
	"github.com/josh-stephens/youtube-summary-agent/internal/config"
	"github.com/josh-stephens/youtube-summary-agent/internal/storage/db"
	"github.com/josh-stephens/youtube-summary-agent/internal/storage/postgres"
	"github.com/josh-stephens/youtube-summary-agent/internal/storage/supabase"
	"github.com/josh-stephens/youtube-summary-agent/internal/summarizer"
	"github.com/josh-stephens/youtube-summary-agent/internal/youtube"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// A .env file is a local convenience; deployments use real env vars.
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// YouTube Data API
	videos, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		slog.Error("failed to create youtube client", "error", err)
		os.Exit(1)
	}
	transcripts := youtube.NewTranscriptClient()

	// OpenAI
	llm := summarizer.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	slog.Info("summarizer ready", "model", cfg.OpenAIModel)

	// Conversation storage
	var store agent.ConversationStore
	if cfg.UseSupabase() {
		store = supabase.NewStore(cfg.SupabaseURL, cfg.SupabaseKey)
		slog.Info("conversation store ready", "backend", "supabase")
	} else {
		conn, err := db.NewConnection(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer conn.Close()
		store = postgres.NewMessageRepository(conn)
		slog.Info("conversation store ready", "backend", "postgres", "url", db.MaskDatabaseURL(cfg.DatabaseURL))
	}

	svc := agent.NewService(agent.Deps{
		Videos:      videos,
		Transcripts: transcripts,
		Summarizer:  llm,
		Store:       store,
		MaxComments: int64(cfg.MaxComments),
		Logger:      slog.Default(),
	})

	router := api.NewRouter(handlers.NewAgentHandler(svc, slog.Default()), cfg.BearerToken)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
		// The pipeline chains YouTube, caption and OpenAI calls, so writes
		// get a generous ceiling.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
