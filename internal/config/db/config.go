package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // Регистрируем pgx драйвер для database/sql
)

//go:generate mockery --name Database --output ../../mocks --outpkg mocks --with-expecter

// Database общий интерфейс подключения к хранилищу: проверка доступности и закрытие пула
type Database interface {
	Ping(ctx context.Context) error
	Close()
}

// Config содержит настройки пула подключений к PostgreSQL
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// NewConfig создает конфигурацию подключения к БД
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
	}
}

// Connect создает пул подключений, общий для всего процесса
func (c *Config) Connect(ctx context.Context) (*Postgres, error) {
	if c.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Отдельный *sql.DB нужен только golang-migrate
	sqlDB, err := sql.Open("pgx", c.DSN)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to open sql database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &Postgres{pool: pool, sqlDB: sqlDB}, nil
}

// Postgres пул pgx и *sql.DB для миграций
type Postgres struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// Ping проверяет подключение
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close закрывает соединения
func (p *Postgres) Close() {
	p.pool.Close()
	if p.sqlDB != nil {
		p.sqlDB.Close()
	}
}

// Pool возвращает пул pgx для хранилища
func (p *Postgres) Pool() *pgxpool.Pool {
	return p.pool
}

// DB возвращает *sql.DB для миграций
func (p *Postgres) DB() *sql.DB {
	return p.sqlDB
}
