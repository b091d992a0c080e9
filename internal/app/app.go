package app

import (
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// App представляет приложение сокращения ссылок
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	clicks  *service.ClickRecorder
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		handler: deps.handler,
		clicks:  deps.clicks,
	}, nil
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.clicks.Close()

	return app.start()
}
