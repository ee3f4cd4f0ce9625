package usecase

import (
	"context"
	"time"

	"github.com/avc-dev/linkshortener/internal/config"
	"github.com/avc-dev/linkshortener/internal/model"
	"go.uber.org/zap"
)

// AccountRepository определяет интерфейс хранилища учётных записей
type AccountRepository interface {
	CreatePendingAccount(ctx context.Context, account model.PendingAccount) error
	ActivatePendingAccount(ctx context.Context, email, token string) (model.Account, error)
	FindAccount(ctx context.Context, email string) (model.Account, error)
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, email, token, passwordHash string) error
}

// TokenService выпускает и проверяет подписанные токены
type TokenService interface {
	IssueToken(email string, ttl time.Duration) (string, error)
	ParseToken(token string) (string, error)
}

// PasswordHasher хэширует и сверяет пароли
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

//go:generate mockery --name Notifier --output ../mocks --outpkg mocks --with-expecter

// Notifier отправляет письма со ссылками активации и сброса пароля
type Notifier interface {
	SendActivation(ctx context.Context, to, link string) error
	SendPasswordReset(ctx context.Context, to, link string) error
}

// AccountUsecase содержит бизнес-логику регистрации, входа и сброса пароля
type AccountUsecase struct {
	repo     AccountRepository
	tokens   TokenService
	hasher   PasswordHasher
	notifier Notifier
	cfg      *config.Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewAccountUsecase создает новый экземпляр AccountUsecase
func NewAccountUsecase(
	repo AccountRepository,
	tokens TokenService,
	hasher PasswordHasher,
	notifier Notifier,
	cfg *config.Config,
	logger *zap.Logger,
) *AccountUsecase {
	return &AccountUsecase{
		repo:     repo,
		tokens:   tokens,
		hasher:   hasher,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}
