package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MY_SECRET_KEY", "secret")

	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", cfg.ServerAddress.String())
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL.String())
	assert.Equal(t, 5*time.Minute, cfg.Auth.ResetTTL)
	assert.Equal(t, time.Duration(0), cfg.Auth.ActivationTTL)
	assert.Equal(t, 10, cfg.Retry.MaxAttempts)
	assert.Equal(t, StorageMemory, cfg.Storage())
	assert.False(t, cfg.Mail.Enabled())
}

func TestLoad_EnvOverridesFlags(t *testing.T) {
	t.Setenv("MY_SECRET_KEY", "env-secret")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("RESET_LINK_TTL", "10m")

	cfg, err := Load([]string{"-a", "127.0.0.1:8000", "-k", "flag-secret", "-f", "https://short.example.com/"})

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "0.0.0.0:9090", cfg.ServerAddress.String())
	assert.Equal(t, "https://short.example.com", cfg.FrontendURL.String())
	assert.Equal(t, 10*time.Minute, cfg.Auth.ResetTTL)
}

func TestLoad_PortOverridesAddress(t *testing.T) {
	t.Setenv("MY_SECRET_KEY", "secret")
	t.Setenv("PORT", "8080")

	cfg, err := Load([]string{"-a", "localhost:7000"})

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress.String())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("MY_SECRET_KEY", "")

	_, err := Load(nil)

	assert.Error(t, err)
}

func TestLoad_MailFromDefaultsToUsername(t *testing.T) {
	t.Setenv("MY_SECRET_KEY", "secret")
	t.Setenv("MAIL_USERNAME", "robot@example.com")
	t.Setenv("OAUTH_REFRESH_TOKEN", "refresh")

	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.True(t, cfg.Mail.Enabled())
	assert.True(t, cfg.Mail.UsesOAuth())
	assert.Equal(t, "robot@example.com", cfg.Mail.From)
}

func TestConfig_Storage(t *testing.T) {
	tests := []struct {
		name     string
		mongoURL string
		dsn      string
		expected Storage
	}{
		{name: "mongo wins", mongoURL: "mongodb://localhost", dsn: "postgres://x", expected: StorageMongo},
		{name: "postgres", dsn: "postgres://x", expected: StoragePostgres},
		{name: "memory", expected: StorageMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.MongoURL = tt.mongoURL
			cfg.DatabaseDSN = tt.dsn

			assert.Equal(t, tt.expected, cfg.Storage())
		})
	}
}

func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{name: "host and port", value: "localhost:8080", expected: "localhost:8080"},
		{name: "port only with colon", value: ":5000", expected: ":5000"},
		{name: "bare port", value: "5000", expected: ":5000"},
		{name: "not a number", value: "localhost:http", wantErr: true},
		{name: "out of range", value: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetworkAddress

			err := addr.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}

func TestURLPrefix_Link(t *testing.T) {
	var prefix URLPrefix
	require.NoError(t, prefix.Set("https://app.example.com/"))

	link := prefix.Link("activateAccount", "user+tag@example.com", "a.b/c")

	assert.Equal(t, "https://app.example.com/activateAccount/user+tag@example.com/a.b%2Fc", link)
}

func TestURLPrefix_SetInvalid(t *testing.T) {
	var prefix URLPrefix

	assert.Error(t, prefix.Set("ftp://example.com"))
	assert.Error(t, prefix.Set("example.com"))
}
