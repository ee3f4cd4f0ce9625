package store

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contractStore набор операций, который реализует каждое хранилище
type contractStore interface {
	CreateLink(ctx context.Context, link model.ShortLink) error
	IncrementClicks(ctx context.Context, code model.Code) (model.ShortLink, error)
	ListLinks(ctx context.Context) ([]model.ShortLink, error)
	CountLinksByMonth(ctx context.Context) ([]model.GraphPoint, error)
	CountLinksByDay(ctx context.Context, from, to time.Time) ([]model.GraphPoint, error)

	CreatePendingAccount(ctx context.Context, account model.PendingAccount) error
	ActivatePendingAccount(ctx context.Context, email, token string) (model.Account, error)
	FindAccount(ctx context.Context, email string) (model.Account, error)
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, email, token, passwordHash string) error
}

var (
	_ contractStore = (*Store)(nil)
	_ contractStore = (*DatabaseStore)(nil)
	_ contractStore = (*MongoStore)(nil)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func link(code string, createdAt time.Time) model.ShortLink {
	return model.ShortLink{
		Full:      "https://example.com/" + code,
		Short:     model.Code(code),
		CreatedAt: createdAt,
	}
}

// runStoreContract проверяет общее поведение хранилища.
// newStore должен возвращать пустое хранилище.
func runStoreContract(t *testing.T, newStore func(t *testing.T) contractStore) {
	t.Run("increment clicks", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateLink(ctx, link("abc123", date(2021, time.August, 14))))

		first, err := s.IncrementClicks(ctx, "abc123")
		require.NoError(t, err)
		second, err := s.IncrementClicks(ctx, "abc123")
		require.NoError(t, err)

		assert.Equal(t, "https://example.com/abc123", first.Full)
		assert.Equal(t, int64(1), first.Clicks)
		assert.Equal(t, int64(2), second.Clicks)
		assert.Equal(t, "2021-08-14", second.CreatedAt.UTC().Format(model.DateLayout))
	})

	t.Run("duplicate code", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateLink(ctx, link("dup", date(2021, time.May, 1))))

		err := s.CreateLink(ctx, link("dup", date(2021, time.May, 2)))

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("unknown code", func(t *testing.T) {
		s := newStore(t)

		_, err := s.IncrementClicks(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateLink(ctx, link("a", date(2021, time.January, 1))))
		require.NoError(t, s.CreateLink(ctx, link("b", date(2021, time.February, 1))))
		require.NoError(t, s.CreateLink(ctx, link("c", date(2021, time.February, 1))))

		links, err := s.ListLinks(ctx)

		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, []model.Code{"c", "b", "a"}, []model.Code{links[0].Short, links[1].Short, links[2].Short})
	})

	t.Run("count by month", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateLink(ctx, link("m1", date(2021, time.January, 5))))
		require.NoError(t, s.CreateLink(ctx, link("m2", date(2022, time.January, 7))))
		require.NoError(t, s.CreateLink(ctx, link("m3", date(2021, time.March, 9))))

		points, err := s.CountLinksByMonth(ctx)

		require.NoError(t, err)
		assert.Equal(t, []model.GraphPoint{
			{Date: "01", NoOfURLs: 2},
			{Date: "03", NoOfURLs: 1},
		}, points)
	})

	t.Run("count by day within month", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		for code, createdAt := range map[string]time.Time{
			"d1": date(2021, time.March, 1),
			"d2": date(2021, time.March, 1),
			"d3": date(2021, time.March, 31),
			"d4": date(2021, time.April, 1),
			"d5": date(2021, time.February, 28),
			"d6": date(2022, time.March, 5),
		} {
			require.NoError(t, s.CreateLink(ctx, link(code, createdAt)))
		}

		points, err := s.CountLinksByDay(ctx, date(2021, time.March, 1), date(2021, time.April, 1))

		require.NoError(t, err)
		assert.Equal(t, []model.GraphPoint{
			{Date: "01", NoOfURLs: 2},
			{Date: "31", NoOfURLs: 1},
		}, points)
	})

	t.Run("activate pending account", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		pending := model.PendingAccount{
			Email:        "user@example.com",
			PasswordHash: "hash",
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Token:        "token-1",
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, s.CreatePendingAccount(ctx, pending))
		require.NoError(t, s.CreatePendingAccount(ctx, pending))
		other := pending
		other.Token = "token-2"
		require.NoError(t, s.CreatePendingAccount(ctx, other))

		_, err := s.ActivatePendingAccount(ctx, "user@example.com", "wrong")
		assert.ErrorIs(t, err, ErrNotFound)

		account, err := s.ActivatePendingAccount(ctx, "user@example.com", "token-1")
		require.NoError(t, err)
		assert.NotEmpty(t, account.ID)
		assert.Equal(t, "hash", account.PasswordHash)
		assert.Equal(t, "Ada", account.FirstName)

		found, err := s.FindAccount(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Lovelace", found.LastName)
		assert.False(t, found.HasResetToken())

		// Все регистрации с этим токеном удалены
		_, err = s.ActivatePendingAccount(ctx, "user@example.com", "token-1")
		assert.ErrorIs(t, err, ErrNotFound)

		// Вторая регистрация на тот же email упирается в уникальность
		_, err = s.ActivatePendingAccount(ctx, "user@example.com", "token-2")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("reset token lifecycle", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreatePendingAccount(ctx, model.PendingAccount{
			Email: "reset@example.com", PasswordHash: "old", Token: "activation", CreatedAt: time.Now().UTC(),
		}))
		_, err := s.ActivatePendingAccount(ctx, "reset@example.com", "activation")
		require.NoError(t, err)

		assert.ErrorIs(t, s.SetResetToken(ctx, "nobody@example.com", "t", time.Now()), ErrNotFound)

		expiresAt := time.Now().Add(5 * time.Minute).UTC().Truncate(time.Millisecond)
		require.NoError(t, s.SetResetToken(ctx, "reset@example.com", "reset-token", expiresAt))

		account, err := s.FindAccount(ctx, "reset@example.com")
		require.NoError(t, err)
		assert.Equal(t, "reset-token", account.ResetToken)
		assert.WithinDuration(t, expiresAt, account.ResetExpiresAt, time.Millisecond)

		assert.ErrorIs(t, s.UpdatePassword(ctx, "reset@example.com", "other", "new"), ErrNotFound)
		require.NoError(t, s.UpdatePassword(ctx, "reset@example.com", "reset-token", "new"))

		account, err = s.FindAccount(ctx, "reset@example.com")
		require.NoError(t, err)
		assert.Equal(t, "new", account.PasswordHash)
		assert.False(t, account.HasResetToken())
		assert.True(t, account.ResetExpiresAt.IsZero())

		assert.ErrorIs(t, s.UpdatePassword(ctx, "reset@example.com", "reset-token", "newer"), ErrNotFound)
	})

	t.Run("unknown account", func(t *testing.T) {
		s := newStore(t)

		_, err := s.FindAccount(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
