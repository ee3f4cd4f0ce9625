package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/avc-dev/linkshortener/internal/store"
	"go.uber.org/zap"
)

// RequestPasswordReset сохраняет токен сброса с ограниченным сроком жизни и отправляет ссылку
func (u *AccountUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := u.repo.FindAccount(ctx, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmailNotRegistered
		}
		u.logger.Error("failed to find account", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	ttl := u.cfg.Auth.ResetTTL
	token, err := u.tokens.IssueToken(email, ttl)
	if err != nil {
		u.logger.Error("failed to issue reset token", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if err := u.repo.SetResetToken(ctx, email, token, u.now().UTC().Add(ttl)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmailNotRegistered
		}
		u.logger.Error("failed to save reset token", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	link := u.cfg.FrontendURL.Link("retrieveAccount", email, token)
	if err := u.notifier.SendPasswordReset(ctx, email, link); err != nil {
		u.logger.Warn("failed to send password reset mail", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return nil
}

// CheckResetLink проверяет ссылку сброса пароля, не изменяя состояние
func (u *AccountUsecase) CheckResetLink(ctx context.Context, email, token string) error {
	_, err := u.validateResetLink(ctx, email, token)
	return err
}

// ResetPassword заменяет пароль, если ссылка сброса действительна. Токен одноразовый.
func (u *AccountUsecase) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	if _, err := u.validateResetLink(ctx, email, token); err != nil {
		return err
	}

	hash, err := u.hashPassword(newPassword)
	if err != nil {
		return err
	}

	// Совпадение токена проверяется повторно в том же запросе, что и обновление
	if err := u.repo.UpdatePassword(ctx, email, token, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrInvalidResetToken, err)
		}
		u.logger.Error("failed to update password", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return nil
}

func (u *AccountUsecase) validateResetLink(ctx context.Context, email, token string) (model.Account, error) {
	account, err := u.repo.FindAccount(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Account{}, ErrAccountNotFound
		}
		u.logger.Error("failed to find account", zap.Error(err))
		return model.Account{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if !account.HasResetToken() ||
		subtle.ConstantTimeCompare([]byte(account.ResetToken), []byte(token)) != 1 {
		return model.Account{}, ErrInvalidResetToken
	}

	if u.now().After(account.ResetExpiresAt) {
		return model.Account{}, ErrResetLinkExpired
	}

	return account, nil
}
