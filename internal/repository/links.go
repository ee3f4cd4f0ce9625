package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
)

func (r Repository) CreateLink(ctx context.Context, link model.ShortLink) error {
	if err := r.underlying.CreateLink(ctx, link); err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}

	return nil
}

func (r Repository) IncrementClicks(ctx context.Context, code model.Code) (model.ShortLink, error) {
	link, err := r.underlying.IncrementClicks(ctx, code)
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to resolve code: %w", err)
	}

	return link, nil
}

func (r Repository) ListLinks(ctx context.Context) ([]model.ShortLink, error) {
	links, err := r.underlying.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}

func (r Repository) CountLinksByMonth(ctx context.Context) ([]model.GraphPoint, error) {
	points, err := r.underlying.CountLinksByMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count links by month: %w", err)
	}

	return points, nil
}

func (r Repository) CountLinksByDay(ctx context.Context, from, to time.Time) ([]model.GraphPoint, error) {
	points, err := r.underlying.CountLinksByDay(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count links by day: %w", err)
	}

	return points, nil
}
