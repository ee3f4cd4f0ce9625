package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/avc-dev/linkshortener/internal/config"
	"github.com/avc-dev/linkshortener/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestApp_Close(t *testing.T) {
	t.Run("database pool exists", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		mockDB.EXPECT().Close().Once()

		app := &App{
			logger: zap.NewNop(),
			dbPool: mockDB,
		}

		app.Close()
	})

	t.Run("database pool is nil", func(t *testing.T) {
		app := &App{
			logger: zap.NewNop(),
			dbPool: nil,
		}

		// Не должно паниковать
		app.Close()
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger("loud")
	require.Error(t, err)
}

type testServer struct {
	*httptest.Server
	logs *observer.ObservedLogs
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.JWTSecret = "test-secret"
	cfg.Auth.BcryptCost = 4

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	deps, err := initDependencies(cfg, logger)
	require.NoError(t, err)
	require.Nil(t, deps.database)

	srv := httptest.NewServer(newRouter(deps.handler, logger))
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, logs: logs}
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(method, s.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

// lastMailLink достаёт ссылку из последнего письма, записанного в лог
func (s *testServer) lastMailLink(t *testing.T) string {
	t.Helper()

	bodies := s.logs.FilterMessage("mail body").All()
	require.NotEmpty(t, bodies)

	html, _ := bodies[len(bodies)-1].ContextMap()["html"].(string)
	match := regexp.MustCompile(`href="([^"]+)"`).FindStringSubmatch(html)
	require.Len(t, match, 2)

	return strings.TrimPrefix(match[1], "http://localhost:3000")
}

func TestRouter_LinkLifecycle(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, http.MethodPost, "/shortUrl", `{"fullUrl":"https://example.com/page"}`)
	require.Equal(t, http.StatusOK, status)

	var created struct {
		Short string `json:"short"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.Short)

	status, body = srv.do(t, http.MethodGet, "/"+created.Short, "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"full":"https://example.com/page"}`, body)

	status, body = srv.do(t, http.MethodGet, "/urlsData", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"clicks":1`)

	status, _ = srv.do(t, http.MethodGet, "/urlGraph/monthly", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_SystemRoutesAreNotShadowed(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{path: "/urlsData", expectedStatus: http.StatusOK, expectedBody: "[]\n"},
		{path: "/ping", expectedStatus: http.StatusOK},
		{path: "/", expectedStatus: http.StatusOK, expectedBody: "Welcome to URL shortener backend APIs"},
		{path: "/urlGraph/daily/02", expectedStatus: http.StatusOK, expectedBody: "[]\n"},
		{path: "/urlGraph/daily/13", expectedStatus: http.StatusBadRequest},
		{path: "/urlGraph/daily/03?year=0", expectedStatus: http.StatusBadRequest},
		{path: "/missing00", expectedStatus: http.StatusNotFound},
		{path: "/bad.code", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := srv.do(t, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestRouter_AccountLifecycle(t *testing.T) {
	srv := newTestServer(t)
	const email = "user@example.com"

	// Регистрация и активация
	_, body := srv.do(t, http.MethodPost, "/users/SignUp",
		`{"email":"user@example.com","password":"s3cret","firstName":"Ada","lastName":"Lovelace"}`)
	assert.Contains(t, body, "Activation link is sent to the mail")

	activation := srv.lastMailLink(t)
	require.True(t, strings.HasPrefix(activation, "/activateAccount/"+email+"/"))

	_, body = srv.do(t, http.MethodPut, activation, "")
	assert.JSONEq(t, `{"message":"activate account"}`, body)

	_, body = srv.do(t, http.MethodPost, "/data", `{"email":"user@example.com"}`)
	assert.JSONEq(t, `{"message":"This email is not available. Try another"}`, body)

	_, body = srv.do(t, http.MethodPost, "/users/Login", `{"email":"user@example.com","password":"s3cret"}`)
	assert.Contains(t, body, "successful login!!!")

	// Сброс пароля
	_, body = srv.do(t, http.MethodPost, "/users/forgot", `{"email":"user@example.com"}`)
	assert.JSONEq(t, `{"message":"Email sent successfully"}`, body)

	retrieve := srv.lastMailLink(t)
	require.True(t, strings.HasPrefix(retrieve, "/retrieveAccount/"+email+"/"))
	token := strings.TrimPrefix(retrieve, "/retrieveAccount/"+email+"/")

	_, body = srv.do(t, http.MethodGet, retrieve, "")
	assert.JSONEq(t, `{"message":"retrieve account"}`, body)

	_, body = srv.do(t, http.MethodPut, "/resetPassword/"+email+"/"+token, `{"newPassword":"n3w"}`)
	assert.JSONEq(t, `{"message":"password updated"}`, body)

	_, body = srv.do(t, http.MethodPut, "/resetPassword/"+email+"/"+token, `{"newPassword":"again"}`)
	assert.JSONEq(t, `{"message":"invalid url"}`, body)

	_, body = srv.do(t, http.MethodPost, "/users/Login", `{"email":"user@example.com","password":"s3cret"}`)
	assert.JSONEq(t, `{"message":"invalid login"}`, body)
}
