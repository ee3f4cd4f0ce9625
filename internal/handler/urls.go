package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/linkshortener/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type ShortenRequest struct {
	FullURL string `json:"fullUrl"`
}

type ShortenResponse struct {
	Short string `json:"short"`
}

type ResolveResponse struct {
	Full string `json:"full"`
}

// ListURLs возвращает все ссылки, начиная с самых новых
func (h *Handler) ListURLs(w http.ResponseWriter, req *http.Request) {
	links, err := h.urls.ListURLs(req.Context())
	if err != nil {
		h.internalError(w, req, err)
		return
	}

	h.writeJSON(w, http.StatusOK, links)
}

// CreateShortURL обрабатывает POST /shortUrl
func (h *Handler) CreateShortURL(w http.ResponseWriter, req *http.Request) {
	var request ShortenRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	code, err := h.urls.CreateShortURL(req.Context(), request.FullURL)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyURL) {
			h.writeMessage(w, http.StatusBadRequest, "fullUrl is required")
			return
		}
		h.internalError(w, req, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ShortenResponse{Short: code.String()})
}

// GetURL возвращает оригинальный URL и увеличивает счётчик переходов
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	full, err := h.urls.GetOriginalURL(req.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrURLNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.internalError(w, req, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ResolveResponse{Full: full})
}
