package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// MessageResponse ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, MessageResponse{Message: message})
}

// decodeJSON читает тело запроса; при ошибке отвечает 400 и возвращает false
func (h *Handler) decodeJSON(w http.ResponseWriter, req *http.Request, v any) bool {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) internalError(w http.ResponseWriter, req *http.Request, err error) {
	h.logger.Error("request failed",
		zap.String("uri", req.RequestURI),
		zap.Error(err),
	)
	h.writeMessage(w, http.StatusInternalServerError, "internal server error")
}
