package migrations

import (
	"context"
	"os"
	"testing"

	"github.com/avc-dev/linkshortener/internal/config/db"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmbeddedSchema(t *testing.T) {
	source, err := iofs.New(migrationFiles, "schema")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := source.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}

func TestMigrator_RunUp(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	database, err := db.NewConfig(dsn).Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(database.Close)

	migrator := NewMigrator(database.DB(), zap.NewNop())

	require.NoError(t, migrator.RunUp())
	// Повторный запуск ничего не меняет
	require.NoError(t, migrator.RunUp())

	version, dirty, err := migrator.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)
}
