package usecase

import (
	"context"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
	"go.uber.org/zap"
)

// LinkRepository определяет интерфейс для чтения ссылок и статистики
type LinkRepository interface {
	IncrementClicks(ctx context.Context, code model.Code) (model.ShortLink, error)
	ListLinks(ctx context.Context) ([]model.ShortLink, error)
	CountLinksByMonth(ctx context.Context) ([]model.GraphPoint, error)
	CountLinksByDay(ctx context.Context, from, to time.Time) ([]model.GraphPoint, error)
}

// URLService определяет интерфейс для создания коротких ссылок
type URLService interface {
	CreateShortURL(ctx context.Context, fullURL string) (model.Code, error)
}

// URLUsecase содержит бизнес-логику для работы со ссылками
type URLUsecase struct {
	repo    LinkRepository
	service URLService
	logger  *zap.Logger
	now     func() time.Time
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo LinkRepository, service URLService, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:    repo,
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}
