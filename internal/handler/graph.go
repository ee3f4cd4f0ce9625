package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avc-dev/linkshortener/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// MonthlyGraph обрабатывает GET /urlGraph/monthly
func (h *Handler) MonthlyGraph(w http.ResponseWriter, req *http.Request) {
	points, err := h.urls.MonthlyGraph(req.Context())
	if err != nil {
		h.internalError(w, req, err)
		return
	}

	h.writeJSON(w, http.StatusOK, points)
}

// DailyGraph обрабатывает GET /urlGraph/daily/{month}?year=YYYY
func (h *Handler) DailyGraph(w http.ResponseWriter, req *http.Request) {
	month := chi.URLParam(req, "month")

	// Нулевой год usecase трактует как текущий, поэтому явно переданный год проверяется здесь
	var year int
	if raw, ok := req.URL.Query()["year"]; ok {
		parsed, err := strconv.Atoi(raw[0])
		if err != nil || parsed < 1 {
			h.writeMessage(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}

	points, err := h.urls.DailyGraph(req.Context(), month, year)
	switch {
	case errors.Is(err, usecase.ErrInvalidMonth):
		h.writeMessage(w, http.StatusBadRequest, "invalid month")
	case errors.Is(err, usecase.ErrInvalidYear):
		h.writeMessage(w, http.StatusBadRequest, "invalid year")
	case err != nil:
		h.internalError(w, req, err)
	default:
		h.writeJSON(w, http.StatusOK, points)
	}
}
