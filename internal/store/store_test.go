package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) contractStore {
		return NewStore()
	})
}

// TestStore_ConcurrentIncrements проверяет, что параллельные переходы не теряют клики
func TestStore_ConcurrentIncrements(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.CreateLink(ctx, model.ShortLink{Full: "https://example.com", Short: "hot", CreatedAt: time.Now()}))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := s.IncrementClicks(ctx, "hot")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, int64(workers), links[0].Clicks)
}

func TestStore_ListLinksReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.CreateLink(ctx, model.ShortLink{Full: "https://example.com", Short: "copy", CreatedAt: time.Now()}))

	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	links[0].Clicks = 100

	again, err := s.ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again[0].Clicks)
}
