package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sttve/mail-classifier-ai/internal/config"
	"github.com/sttve/mail-classifier-ai/internal/core/ports"
	"github.com/sttve/mail-classifier-ai/internal/core/usecase"
	"github.com/sttve/mail-classifier-ai/internal/infrastructure/classifier"
	"github.com/sttve/mail-classifier-ai/internal/infrastructure/extractor/email"
	"github.com/sttve/mail-classifier-ai/internal/infrastructure/llm/openai"
	"github.com/sttve/mail-classifier-ai/internal/infrastructure/repository/postgres"
)

type App struct {
	Config config.Config

	Users     ports.UserRepository
	ProcessUC ports.EmailProcessor
	AccountUC ports.AccountService

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	users := postgres.NewUserRepository(db)
	if err := users.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	keywords, err := config.LoadKeywords(cfg.KeywordsPath)
	if err != nil {
		return nil, fmt.Errorf("load keywords: %w", err)
	}

	if cfg.OpenAIAPIKey == "" {
		slog.Warn("completion_api_key_missing", "effect", "suggested replies fall back to a fixed message")
	}
	generator := openai.NewGenerator(openai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})

	processUC := usecase.NewProcessEmailUseCase(
		email.NewExtractor(),
		classifier.NewNormalizer(),
		classifier.New(keywords),
		generator,
		time.Duration(cfg.GenerationTimeoutSeconds)*time.Second,
	)
	accountUC := usecase.NewAccountUseCase(users)

	return &App{
		Config: cfg,

		Users:     users,
		ProcessUC: processUC,
		AccountUC: accountUC,

		closeFn: func() {
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
