package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/avc-dev/linkshortener/internal/store"
	"go.uber.org/zap"
)

// ListURLs возвращает все ссылки, начиная с самых новых
func (u *URLUsecase) ListURLs(ctx context.Context) ([]model.ShortLink, error) {
	links, err := u.repo.ListLinks(ctx)
	if err != nil {
		u.logger.Error("failed to list links", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if links == nil {
		links = []model.ShortLink{}
	}

	return links, nil
}

// CreateShortURL создает короткую ссылку и возвращает её код
func (u *URLUsecase) CreateShortURL(ctx context.Context, fullURL string) (model.Code, error) {
	fullURL = strings.TrimSpace(fullURL)
	if fullURL == "" {
		return "", ErrEmptyURL
	}

	code, err := u.service.CreateShortURL(ctx, fullURL)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("full_url", fullURL),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return code, nil
}

// GetOriginalURL возвращает оригинальный URL по коду и засчитывает переход
func (u *URLUsecase) GetOriginalURL(ctx context.Context, code string) (string, error) {
	link, err := u.repo.IncrementClicks(ctx, model.Code(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			u.logger.Debug("short code not found", zap.String("code", code))
			return "", fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}

		u.logger.Error("failed to resolve short code",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return link.Full, nil
}
