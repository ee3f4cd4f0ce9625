package app

import (
	"net/http"

	"github.com/avc-dev/linkshortener/internal/handler"
	"github.com/avc-dev/linkshortener/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения.
// chi сопоставляет статические сегменты раньше параметров, поэтому /{code} не перекрывает
// остальные маршруты независимо от порядка регистрации.
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))
	r.Use(middleware.Gzip(logger))

	// System
	r.Get("/", h.Index)
	r.Get("/ping", h.Ping)

	// Links
	r.Get("/urlsData", h.ListURLs)
	r.Post("/shortUrl", h.CreateShortURL)
	r.Get("/urlGraph/monthly", h.MonthlyGraph)
	r.Get("/urlGraph/daily/{month}", h.DailyGraph)

	// Accounts
	r.Post("/data", h.CheckEmail)
	r.Post("/users/SignUp", h.SignUp)
	r.Put("/activateAccount/{email}/{token}", h.ActivateAccount)
	r.Post("/users/Login", h.Login)
	r.Post("/users/forgot", h.ForgotPassword)
	r.Get("/retrieveAccount/{email}/{token}", h.RetrieveAccount)
	r.Put("/resetPassword/{email}/{token}", h.ResetPassword)

	r.Get("/{code:[0-9A-Za-z_-]+}", h.GetURL)

	return r
}
