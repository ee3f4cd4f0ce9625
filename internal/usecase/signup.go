package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/avc-dev/linkshortener/internal/service"
	"github.com/avc-dev/linkshortener/internal/store"
	"go.uber.org/zap"
)

// CheckEmail сообщает, свободен ли email. Неподтверждённые регистрации не учитываются.
func (u *AccountUsecase) CheckEmail(ctx context.Context, email string) (bool, error) {
	_, err := u.repo.FindAccount(ctx, email)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}

	u.logger.Error("failed to check email", zap.Error(err))
	return false, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}

// SignUp сохраняет неподтверждённую регистрацию и отправляет ссылку активации
func (u *AccountUsecase) SignUp(ctx context.Context, req model.SignUpRequest) error {
	available, err := u.CheckEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if !available {
		return ErrEmailTaken
	}

	hash, err := u.hashPassword(req.Password)
	if err != nil {
		return err
	}

	token, err := u.tokens.IssueToken(req.Email, u.cfg.Auth.ActivationTTL)
	if err != nil {
		u.logger.Error("failed to issue activation token", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	pending := model.PendingAccount{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Token:        token,
		CreatedAt:    u.now().UTC(),
	}
	if err := u.repo.CreatePendingAccount(ctx, pending); err != nil {
		u.logger.Error("failed to save pending account", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	link := u.cfg.FrontendURL.Link("activateAccount", req.Email, token)
	if err := u.notifier.SendActivation(ctx, req.Email, link); err != nil {
		u.logger.Warn("failed to send activation mail", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return nil
}

// ActivateAccount переносит регистрацию с совпадающими email и токеном в активные
func (u *AccountUsecase) ActivateAccount(ctx context.Context, email, token string) error {
	if u.cfg.Auth.ActivationTTL > 0 {
		subject, err := u.tokens.ParseToken(token)
		switch {
		case errors.Is(err, service.ErrTokenExpired):
			return fmt.Errorf("%w: %w", ErrActivationLinkExpired, err)
		case err != nil:
			return fmt.Errorf("%w: %w", ErrInvalidActivationLink, err)
		case subject != email:
			return ErrInvalidActivationLink
		}
	}

	account, err := u.repo.ActivatePendingAccount(ctx, email, token)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidActivationLink, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrEmailTaken, err)
	case err != nil:
		u.logger.Error("failed to activate account", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("account activated", zap.String("account_id", account.ID))
	return nil
}

// Login проверяет пароль и выдаёт токен входа
func (u *AccountUsecase) Login(ctx context.Context, email, password string) (string, error) {
	account, err := u.repo.FindAccount(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		u.logger.Error("failed to find account", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if !u.hasher.Compare(account.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(account.Email, u.cfg.Auth.LoginTTL)
	if err != nil {
		u.logger.Error("failed to issue login token", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return token, nil
}

// hashPassword отличает слишком длинный пароль от сбоя хэширования
func (u *AccountUsecase) hashPassword(password string) (string, error) {
	hash, err := u.hasher.Hash(password)
	if errors.Is(err, service.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
	}
	if err != nil {
		u.logger.Error("failed to hash password", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return hash, nil
}
