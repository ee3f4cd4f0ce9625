package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const welcomeMessage = "Welcome to URL shortener backend APIs"

// Index отдаёт приветственную строку
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, welcomeMessage)
}

// Ping проверяет соединение с базой данных. Без базы сервис считается доступным.
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if h.db == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
