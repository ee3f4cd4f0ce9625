package repository

import (
	"context"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
)

// Store хранилище ссылок и учётных записей (MongoDB, PostgreSQL или память)
type Store interface {
	CreateLink(ctx context.Context, link model.ShortLink) error
	IncrementClicks(ctx context.Context, code model.Code) (model.ShortLink, error)
	ListLinks(ctx context.Context) ([]model.ShortLink, error)
	CountLinksByMonth(ctx context.Context) ([]model.GraphPoint, error)
	CountLinksByDay(ctx context.Context, from, to time.Time) ([]model.GraphPoint, error)

	CreatePendingAccount(ctx context.Context, account model.PendingAccount) error
	ActivatePendingAccount(ctx context.Context, email, token string) (model.Account, error)
	FindAccount(ctx context.Context, email string) (model.Account, error)
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, email, token, passwordHash string) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}
