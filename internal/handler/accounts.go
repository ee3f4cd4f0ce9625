package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/avc-dev/linkshortener/internal/usecase"
	"github.com/go-chi/chi/v5"
)

const (
	msgEmailAvailable    = "This email is available"
	msgEmailNotAvailable = "This email is not available. Try another"
	msgEmailRegistered   = "This email is already registered"
	msgActivationSent    = "Activation link is sent to the mail. Please click the link to complete the registration"
	msgAccountActivated  = "activate account"
	msgInvalidURL        = "invalid url"
	msgLinkExpired       = "link expired"
	msgLoginSuccess      = "successful login!!!"
	msgInvalidLogin      = "invalid login"
	msgPasswordTooLong   = "password is too long"
)

type EmailRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// CheckEmail обрабатывает POST /data
func (h *Handler) CheckEmail(w http.ResponseWriter, req *http.Request) {
	var request EmailRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	available, err := h.accounts.CheckEmail(req.Context(), request.Email)
	if err != nil {
		h.internalError(w, req, err)
		return
	}

	if available {
		h.writeMessage(w, http.StatusOK, msgEmailAvailable)
		return
	}
	h.writeMessage(w, http.StatusOK, msgEmailNotAvailable)
}

// SignUp обрабатывает POST /users/SignUp
func (h *Handler) SignUp(w http.ResponseWriter, req *http.Request) {
	var request model.SignUpRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	err := h.accounts.SignUp(req.Context(), request)
	switch {
	case err == nil:
		h.writeMessage(w, http.StatusOK, msgActivationSent)
	case errors.Is(err, usecase.ErrEmailTaken):
		h.writeMessage(w, http.StatusOK, msgEmailRegistered)
	case errors.Is(err, usecase.ErrPasswordTooLong):
		h.writeMessage(w, http.StatusOK, msgPasswordTooLong)
	case errors.Is(err, usecase.ErrMailDelivery):
		h.writeMessage(w, http.StatusOK, "Error "+err.Error())
	default:
		h.internalError(w, req, err)
	}
}

// ActivateAccount обрабатывает PUT /activateAccount/{email}/{token}
func (h *Handler) ActivateAccount(w http.ResponseWriter, req *http.Request) {
	email := chi.URLParam(req, "email")
	token := chi.URLParam(req, "token")

	err := h.accounts.ActivateAccount(req.Context(), email, token)
	switch {
	case err == nil:
		h.writeMessage(w, http.StatusOK, msgAccountActivated)
	case errors.Is(err, usecase.ErrInvalidActivationLink):
		h.writeMessage(w, http.StatusOK, msgInvalidURL)
	case errors.Is(err, usecase.ErrActivationLinkExpired):
		h.writeMessage(w, http.StatusOK, msgLinkExpired)
	case errors.Is(err, usecase.ErrEmailTaken):
		h.writeMessage(w, http.StatusOK, msgEmailRegistered)
	default:
		h.internalError(w, req, err)
	}
}

// Login обрабатывает POST /users/Login
func (h *Handler) Login(w http.ResponseWriter, req *http.Request) {
	var request LoginRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	token, err := h.accounts.Login(req.Context(), request.Email, request.Password)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, LoginResponse{Message: msgLoginSuccess, Token: token})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		h.writeMessage(w, http.StatusOK, msgInvalidLogin)
	default:
		h.internalError(w, req, err)
	}
}
