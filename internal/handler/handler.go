package handler

import (
	"context"

	"github.com/avc-dev/linkshortener/internal/config/db"
	"github.com/avc-dev/linkshortener/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name URLUsecase --output ../mocks --outpkg mocks --with-expecter
//go:generate mockery --name AccountUsecase --output ../mocks --outpkg mocks --with-expecter

// URLUsecase определяет операции над короткими ссылками
type URLUsecase interface {
	ListURLs(ctx context.Context) ([]model.ShortLink, error)
	CreateShortURL(ctx context.Context, fullURL string) (model.Code, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	MonthlyGraph(ctx context.Context) ([]model.GraphPoint, error)
	DailyGraph(ctx context.Context, month string, year int) ([]model.GraphPoint, error)
}

// AccountUsecase определяет операции над учётными записями
type AccountUsecase interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
	SignUp(ctx context.Context, req model.SignUpRequest) error
	ActivateAccount(ctx context.Context, email, token string) error
	Login(ctx context.Context, email, password string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	CheckResetLink(ctx context.Context, email, token string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
}

// Handler обрабатывает HTTP запросы
type Handler struct {
	urls     URLUsecase
	accounts AccountUsecase
	logger   *zap.Logger
	db       db.Database
}

// New создает новый Handler. database может быть nil для хранилища в памяти.
func New(urls URLUsecase, accounts AccountUsecase, logger *zap.Logger, database db.Database) *Handler {
	return &Handler{
		urls:     urls,
		accounts: accounts,
		logger:   logger,
		db:       database,
	}
}
