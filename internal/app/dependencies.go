package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/avc-dev/shortlink/internal/usecase"
	"go.uber.org/zap"
)

type dependencies struct {
	handler *handler.Handler
	clicks  *service.ClickRecorder
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, err := initStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	linkService := service.NewLinkService(repo, cfg)
	clicks := service.NewClickRecorder(repo, logger, cfg.Clicks.Workers, cfg.Clicks.QueueSize)
	linkUsecase := usecase.NewLinkUsecase(repo, linkService, clicks, cfg, logger)
	h := handler.New(linkUsecase, cfg, logger)

	return &dependencies{
		handler: h,
		clicks:  clicks,
	}, nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	if cfg.DatabaseDSN != "" {
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		migrator := migrations.NewMigrator(database.DB(), logger)
		if err := migrator.RunUp(); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using database storage")
		return store.NewDatabaseStore(database), nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewMemoryStore(), nil
}
