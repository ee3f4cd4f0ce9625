package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Config содержит настройки клиента MongoDB
type Config struct {
	URI             string
	Database        string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// NewConfig создает конфигурацию клиента с настройками пула по умолчанию
func NewConfig(uri, database string) *Config {
	return &Config{
		URI:             uri,
		Database:        database,
		MaxPoolSize:     10,
		MinPoolSize:     1,
		MaxConnIdleTime: 30 * time.Minute,
		ConnectTimeout:  10 * time.Second,
	}
}

// Connect создает клиента MongoDB, общего для всего процесса, и проверяет подключение
func (c *Config) Connect(ctx context.Context) (*Client, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("mongo URI is required")
	}
	if c.Database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	opts := options.Client().
		ApplyURI(c.URI).
		SetMaxPoolSize(c.MaxPoolSize).
		SetMinPoolSize(c.MinPoolSize).
		SetMaxConnIdleTime(c.MaxConnIdleTime).
		SetConnectTimeout(c.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Client{client: client, database: client.Database(c.Database)}, nil
}

// Client обертка над *mongo.Client, реализующая db.Database
type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

// Ping проверяет подключение к primary
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close отключает клиента
func (c *Client) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.client.Disconnect(ctx)
}

// Database возвращает рабочую базу данных
func (c *Client) Database() *mongo.Database {
	return c.database
}
