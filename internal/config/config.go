package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config конфигурация приложения
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	// Port переопределяет порт из ServerAddress и слушает на всех интерфейсах
	Port        int       `env:"PORT"`
	FrontendURL URLPrefix `env:"FRONTEND_URL"`
	LogLevel    string    `env:"LOG_LEVEL"`
	JWTSecret   string    `env:"MY_SECRET_KEY"`

	DatabaseDSN   string `env:"DATABASE_DSN"`
	MongoURL      string `env:"MONGO_URL"`
	MongoDatabase string `env:"MONGO_DATABASE"`

	Retry RetryConfig
	Auth  AuthConfig
	Mail  MailConfig
}

// RetryConfig настройки повторной генерации кода при коллизиях
type RetryConfig struct {
	MaxAttempts int `env:"CODE_MAX_ATTEMPTS"`
}

// AuthConfig время жизни токенов и стоимость хэширования паролей
type AuthConfig struct {
	ResetTTL      time.Duration `env:"RESET_LINK_TTL"`
	ActivationTTL time.Duration `env:"ACTIVATION_TOKEN_TTL"`
	LoginTTL      time.Duration `env:"LOGIN_TOKEN_TTL"`
	BcryptCost    int           `env:"BCRYPT_COST"`
}

// MailConfig почтовый аккаунт и OAuth2 учётные данные для отправки писем
type MailConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"MAIL_USERNAME"`
	Password string `env:"MAIL_PASSWORD"`
	From     string `env:"MAIL_FROM"`

	OAuthClientID     string `env:"OAUTH_CLIENTID"`
	OAuthClientSecret string `env:"OAUTH_CLIENT_SECRET"`
	OAuthRefreshToken string `env:"OAUTH_REFRESH_TOKEN"`
}

// Enabled сообщает, настроен ли почтовый аккаунт
func (m MailConfig) Enabled() bool {
	return m.Username != "" && m.Host != ""
}

// UsesOAuth сообщает, нужно ли авторизоваться через XOAUTH2
func (m MailConfig) UsesOAuth() bool {
	return m.OAuthRefreshToken != ""
}

// Storage тип хранилища, выбранный по конфигурации
type Storage string

const (
	StorageMongo    Storage = "mongo"
	StoragePostgres Storage = "postgres"
	StorageMemory   Storage = "memory"
)

// Storage выбирает хранилище: MongoDB, затем PostgreSQL, иначе память
func (c *Config) Storage() Storage {
	switch {
	case c.MongoURL != "":
		return StorageMongo
	case c.DatabaseDSN != "":
		return StoragePostgres
	default:
		return StorageMemory
	}
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 5000},
		FrontendURL:   URLPrefix("http://localhost:3000"),
		LogLevel:      "info",
		MongoDatabase: "urlshortener",
		Retry: RetryConfig{
			MaxAttempts: 10,
		},
		Auth: AuthConfig{
			ResetTTL:   5 * time.Minute,
			LoginTTL:   24 * time.Hour,
			BcryptCost: 10,
		},
		Mail: MailConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
	}
}

// Load собирает конфигурацию: значения по умолчанию, .env, флаги и переменные окружения.
// Переменные окружения имеют приоритет над флагами.
func Load(args []string) (*Config, error) {
	// .env необязателен, в проде переменные задаются окружением
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	if err := cfg.parseFlags(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Port != 0 {
		cfg.ServerAddress = NetworkAddress{Port: cfg.Port}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)

	fs.Var(&c.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&c.FrontendURL, "f", "frontend URL used in activation and reset links")
	fs.StringVar(&c.DatabaseDSN, "d", c.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&c.MongoURL, "m", c.MongoURL, "MongoDB connection URI")
	fs.StringVar(&c.JWTSecret, "k", c.JWTSecret, "token signing secret")
	fs.StringVar(&c.LogLevel, "l", c.LogLevel, "log level")

	return fs.Parse(args)
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("token signing secret (MY_SECRET_KEY) is required")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("CODE_MAX_ATTEMPTS must be positive, got %d", c.Retry.MaxAttempts)
	}

	if c.Auth.ResetTTL <= 0 {
		return fmt.Errorf("RESET_LINK_TTL must be positive, got %s", c.Auth.ResetTTL)
	}

	if c.Auth.ActivationTTL < 0 {
		return fmt.Errorf("ACTIVATION_TOKEN_TTL must not be negative, got %s", c.Auth.ActivationTTL)
	}

	if c.Mail.Enabled() && c.Mail.From == "" {
		c.Mail.From = c.Mail.Username
	}

	return nil
}
