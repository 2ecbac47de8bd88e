package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/yt-summarizer/internal/domain/history"
	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/internal/infra/config"
	"github.com/yanqian/yt-summarizer/internal/infra/historyrepo"
	"github.com/yanqian/yt-summarizer/internal/infra/llm/chatgpt"
	"github.com/yanqian/yt-summarizer/internal/infra/llm/gemini"
	"github.com/yanqian/yt-summarizer/internal/infra/youtube"
)

func provideSummaryConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		MaxTranscriptChars: cfg.Summary.MaxTranscriptChars,
		MaxTopicChars:      cfg.Summary.MaxTopicChars,
	}
}

func provideLanguageModel(cfg *config.Config, logger *slog.Logger) (summarizer.LanguageModel, func(), error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		client, err := gemini.NewClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Warn("gemini client close failed", "error", err)
			}
		}
		return client, cleanup, nil
	case config.ProviderOpenAI:
		client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Temperature)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
}

func provideTranscriptSource(cfg *config.Config, logger *slog.Logger) *youtube.Client {
	return youtube.NewClient(cfg.Transcript.Languages, cfg.Transcript.Timeout, logger)
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) (history.Repository, func()) {
	fallback := historyrepo.NewMemoryRepository(cfg.History.Capacity)
	noop := func() {}
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory repository", "capacity", cfg.History.Capacity)
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback, noop
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	repo := historyrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("history schema setup failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	logger.Info("history postgres repository enabled")
	return repo, pool.Close
}
