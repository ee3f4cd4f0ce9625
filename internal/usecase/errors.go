package usecase

import "errors"

var (
	ErrEmptyURL           = errors.New("empty URL")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrURLNotFound        = errors.New("URL not found")
	ErrInvalidMonth       = errors.New("invalid month")
	ErrInvalidYear        = errors.New("invalid year")

	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidActivationLink = errors.New("invalid activation link")
	ErrActivationLinkExpired = errors.New("activation link expired")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailNotRegistered    = errors.New("email not registered")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidResetToken     = errors.New("invalid reset token")
	ErrResetLinkExpired      = errors.New("reset link expired")
	ErrMailDelivery          = errors.New("mail delivery failed")
	ErrPasswordTooLong       = errors.New("password too long")
)
