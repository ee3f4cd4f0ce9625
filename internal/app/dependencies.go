package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/linkshortener/internal/config"
	"github.com/avc-dev/linkshortener/internal/config/db"
	"github.com/avc-dev/linkshortener/internal/config/mongodb"
	"github.com/avc-dev/linkshortener/internal/handler"
	"github.com/avc-dev/linkshortener/internal/mailer"
	"github.com/avc-dev/linkshortener/internal/migrations"
	"github.com/avc-dev/linkshortener/internal/repository"
	"github.com/avc-dev/linkshortener/internal/service"
	"github.com/avc-dev/linkshortener/internal/store"
	"github.com/avc-dev/linkshortener/internal/usecase"
	"go.uber.org/zap"
)

const startupTimeout = 30 * time.Second

type dependencies struct {
	handler  *handler.Handler
	database db.Database
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)

	urlService := service.NewURLService(repo, service.NewCodeGenerator(), cfg)
	urlUsecase := usecase.NewURLUsecase(repo, urlService, logger)

	accountUsecase := usecase.NewAccountUsecase(
		repo,
		service.NewTokenService(cfg.JWTSecret),
		service.NewPasswordHasher(cfg.Auth.BcryptCost),
		mailer.NewNotifier(initMailSender(cfg, logger), cfg.Mail.From),
		cfg,
		logger,
	)

	return &dependencies{
		handler:  handler.New(urlUsecase, accountUsecase, logger, database),
		database: database,
	}, nil
}

// initStorage создает хранилище на основе конфигурации.
// Для MongoDB и PostgreSQL возвращает также соединение для /ping и закрытия при остановке.
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	switch cfg.Storage() {
	case config.StorageMongo:
		client, err := mongodb.NewConfig(cfg.MongoURL, cfg.MongoDatabase).Connect(ctx)
		if err != nil {
			return nil, nil, err
		}

		mongoStore := store.NewMongoStore(client.Database())
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
		}

		logger.Info("Using MongoDB storage", zap.String("database", cfg.MongoDatabase))
		return mongoStore, client, nil

	case config.StoragePostgres:
		pg, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, err
		}

		if err := migrations.NewMigrator(pg.DB(), logger).RunUp(); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
		}

		logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(pg.Pool()), pg, nil

	default:
		logger.Info("Using in-memory storage")
		return store.NewStore(), nil, nil
	}
}

// initMailSender выбирает SMTP, если почтовый аккаунт настроен, иначе пишет письма в лог
func initMailSender(cfg *config.Config, logger *zap.Logger) mailer.Sender {
	if !cfg.Mail.Enabled() {
		logger.Warn("mail account is not configured, emails will be logged instead of sent")
		return mailer.NewLogSender(logger)
	}

	logger.Info("Using SMTP mail sender",
		zap.String("host", cfg.Mail.Host),
		zap.Bool("oauth", cfg.Mail.UsesOAuth()),
	)
	return mailer.NewSMTPSender(cfg.Mail)
}
