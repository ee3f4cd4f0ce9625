package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/linkshortener/internal/mocks"
	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/avc-dev/linkshortener/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListURLs_Success(t *testing.T) {
	// Arrange
	h, urls, _ := newTestHandler(t)
	urls.EXPECT().ListURLs(mock.Anything).Return([]model.ShortLink{
		{
			Full:      "https://example.com",
			Short:     "abc123XYZ",
			Clicks:    4,
			CreatedAt: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
	}, nil).Once()

	req := newRequest(http.MethodGet, "/urlsData", "", nil)
	w := httptest.NewRecorder()

	// Act
	h.ListURLs(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`[{"full":"https://example.com","short":"abc123XYZ","clicks":4,"createdAt":"2024-03-05"}]`,
		w.Body.String(),
	)
}

func TestListURLs_Empty(t *testing.T) {
	h, urls, _ := newTestHandler(t)
	urls.EXPECT().ListURLs(mock.Anything).Return([]model.ShortLink{}, nil).Once()

	w := httptest.NewRecorder()
	h.ListURLs(w, newRequest(http.MethodGet, "/urlsData", "", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListURLs_StorageError(t *testing.T) {
	h, urls, _ := newTestHandler(t)
	urls.EXPECT().ListURLs(mock.Anything).Return(nil, usecase.ErrServiceUnavailable).Once()

	w := httptest.NewRecorder()
	h.ListURLs(w, newRequest(http.MethodGet, "/urlsData", "", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeMessage(t, w))
}

func TestCreateShortURL(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(m *mocks.MockURLUsecase)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"fullUrl":"https://example.com"}`,
			setup: func(m *mocks.MockURLUsecase) {
				m.EXPECT().CreateShortURL(mock.Anything, "https://example.com").
					Return(model.Code("abc123XYZ"), nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"short":"abc123XYZ"}`,
		},
		{
			name: "empty url",
			body: `{"fullUrl":""}`,
			setup: func(m *mocks.MockURLUsecase) {
				m.EXPECT().CreateShortURL(mock.Anything, "").
					Return(model.Code(""), usecase.ErrEmptyURL).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"fullUrl is required"}`,
		},
		{
			name:           "malformed JSON",
			body:           `{"fullUrl":`,
			setup:          func(*mocks.MockURLUsecase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"invalid request body"}`,
		},
		{
			name: "service unavailable",
			body: `{"fullUrl":"https://example.com"}`,
			setup: func(m *mocks.MockURLUsecase) {
				m.EXPECT().CreateShortURL(mock.Anything, "https://example.com").
					Return(model.Code(""), usecase.ErrServiceUnavailable).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, urls, _ := newTestHandler(t)
			tt.setup(urls)
			w := httptest.NewRecorder()

			// Act
			h.CreateShortURL(w, newRequest(http.MethodPost, "/shortUrl", tt.body, nil))

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestGetURL(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "found",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"full":"https://example.com/page"}`,
		},
		{
			name:           "unknown code",
			err:            usecase.ErrURLNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "storage failure",
			err:            usecase.ErrServiceUnavailable,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, urls, _ := newTestHandler(t)
			full := ""
			if tt.err == nil {
				full = "https://example.com/page"
			}
			urls.EXPECT().GetOriginalURL(mock.Anything, "abc123XYZ").Return(full, tt.err).Once()

			req := newRequest(http.MethodGet, "/abc123XYZ", "", map[string]string{"code": "abc123XYZ"})
			w := httptest.NewRecorder()

			h.GetURL(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
