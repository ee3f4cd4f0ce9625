package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/linkshortener/internal/config"
	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/avc-dev/linkshortener/internal/store"
)

// URLRepository определяет методы для сохранения ссылок
type URLRepository interface {
	// CreateLink сохраняет ссылку. Возвращает store.ErrAlreadyExists, если код занят
	CreateLink(ctx context.Context, link model.ShortLink) error
}

// URLService содержит бизнес-логику создания коротких ссылок
type URLService struct {
	repo          URLRepository
	codeGenerator Generator
	maxAttempts   int
	now           func() time.Time
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo URLRepository, codeGenerator Generator, cfg *config.Config) *URLService {
	return &URLService{
		repo:          repo,
		codeGenerator: codeGenerator,
		maxAttempts:   cfg.Retry.MaxAttempts,
		now:           time.Now,
	}
}

// CreateShortURL сохраняет ссылку под новым кодом с датой создания "сегодня" (UTC).
// При коллизии кода генерирует новый, пока не исчерпает попытки.
func (s *URLService) CreateShortURL(ctx context.Context, fullURL string) (model.Code, error) {
	createdAt := model.Today(s.now())

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		link := model.ShortLink{
			Full:      fullURL,
			Short:     s.codeGenerator.GenerateCode(),
			CreatedAt: createdAt,
		}

		err := s.repo.CreateLink(ctx, link)
		if err == nil {
			return link.Short, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return "", fmt.Errorf("failed to save link: %w", err)
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}
