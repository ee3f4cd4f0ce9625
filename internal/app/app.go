package app

import (
	"fmt"
	"os"

	"github.com/avc-dev/linkshortener/internal/config"
	"github.com/avc-dev/linkshortener/internal/config/db"
	"github.com/avc-dev/linkshortener/internal/handler"
	"go.uber.org/zap"
)

// App представляет приложение сокращения ссылок
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	dbPool  db.Database
}

// New создает новый экземпляр приложения
func New(args []string) (*App, error) {
	cfg, err := config.Load(args)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	deps, err := initDependencies(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		handler: deps.handler,
		dbPool:  deps.database,
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = lvl

	return zapCfg.Build()
}

// Close освобождает соединение с базой данных
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("database connection closed")
	}
}

// Run запускает приложение и блокируется до остановки сервера
func Run() error {
	app, err := New(os.Args[1:])
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start()
}
