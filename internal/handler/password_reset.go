package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/linkshortener/internal/usecase"
	"github.com/go-chi/chi/v5"
)

const (
	msgResetMailSent   = "Email sent successfully"
	msgEmailNotFound   = "This email is not registered"
	msgRetrieveAccount = "retrieve account"
	msgInvalidAuth     = "invalid authentication"
	msgInvalidAccount  = "Invalid account"
	msgPasswordUpdated = "password updated"
)

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ForgotPassword обрабатывает POST /users/forgot
func (h *Handler) ForgotPassword(w http.ResponseWriter, req *http.Request) {
	var request EmailRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	err := h.accounts.RequestPasswordReset(req.Context(), request.Email)
	switch {
	case err == nil:
		h.writeMessage(w, http.StatusOK, msgResetMailSent)
	case errors.Is(err, usecase.ErrEmailNotRegistered):
		h.writeMessage(w, http.StatusOK, msgEmailNotFound)
	case errors.Is(err, usecase.ErrMailDelivery):
		h.writeMessage(w, http.StatusOK, "Error "+err.Error())
	default:
		h.internalError(w, req, err)
	}
}

// RetrieveAccount обрабатывает GET /retrieveAccount/{email}/{token}
func (h *Handler) RetrieveAccount(w http.ResponseWriter, req *http.Request) {
	email := chi.URLParam(req, "email")
	token := chi.URLParam(req, "token")

	err := h.accounts.CheckResetLink(req.Context(), email, token)
	switch {
	case err == nil:
		h.writeMessage(w, http.StatusOK, msgRetrieveAccount)
	case errors.Is(err, usecase.ErrResetLinkExpired):
		h.writeMessage(w, http.StatusOK, msgLinkExpired)
	case errors.Is(err, usecase.ErrInvalidResetToken):
		h.writeMessage(w, http.StatusOK, msgInvalidAuth)
	case errors.Is(err, usecase.ErrAccountNotFound):
		h.writeMessage(w, http.StatusOK, msgInvalidAccount)
	default:
		h.internalError(w, req, err)
	}
}

// ResetPassword обрабатывает PUT /resetPassword/{email}/{token}
func (h *Handler) ResetPassword(w http.ResponseWriter, req *http.Request) {
	email := chi.URLParam(req, "email")
	token := chi.URLParam(req, "token")

	var request ResetPasswordRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	err := h.accounts.ResetPassword(req.Context(), email, token, request.NewPassword)
	switch {
	case err == nil:
		h.writeMessage(w, http.StatusOK, msgPasswordUpdated)
	case errors.Is(err, usecase.ErrResetLinkExpired):
		h.writeMessage(w, http.StatusOK, msgLinkExpired)
	case errors.Is(err, usecase.ErrInvalidResetToken), errors.Is(err, usecase.ErrAccountNotFound):
		h.writeMessage(w, http.StatusOK, msgInvalidURL)
	case errors.Is(err, usecase.ErrPasswordTooLong):
		h.writeMessage(w, http.StatusOK, msgPasswordTooLong)
	default:
		h.internalError(w, req, err)
	}
}
