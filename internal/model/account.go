package model

import "time"

// PendingAccount регистрация, ожидающая подтверждения по ссылке из письма
type PendingAccount struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Token        string
	CreatedAt    time.Time
}

// Account активная учётная запись
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time

	// Заполняются только на время сброса пароля
	ResetToken     string
	ResetExpiresAt time.Time
}

// HasResetToken сообщает, запрошен ли сброс пароля
func (a Account) HasResetToken() bool {
	return a.ResetToken != ""
}

// SignUpRequest данные формы регистрации
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
