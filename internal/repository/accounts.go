package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
)

func (r Repository) CreatePendingAccount(ctx context.Context, account model.PendingAccount) error {
	if err := r.underlying.CreatePendingAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to create pending account: %w", err)
	}

	return nil
}

func (r Repository) ActivatePendingAccount(ctx context.Context, email, token string) (model.Account, error) {
	account, err := r.underlying.ActivatePendingAccount(ctx, email, token)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to activate account: %w", err)
	}

	return account, nil
}

func (r Repository) FindAccount(ctx context.Context, email string) (model.Account, error) {
	account, err := r.underlying.FindAccount(ctx, email)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to find account: %w", err)
	}

	return account, nil
}

func (r Repository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	if err := r.underlying.SetResetToken(ctx, email, token, expiresAt); err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}

	return nil
}

func (r Repository) UpdatePassword(ctx context.Context, email, token, passwordHash string) error {
	if err := r.underlying.UpdatePassword(ctx, email, token, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
