package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// DatabaseStore реализует хранилище ссылок и учётных записей на PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore поверх общего пула подключений
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// CreateLink сохраняет новую ссылку, уникальность кода обеспечивает индекс
func (ds *DatabaseStore) CreateLink(ctx context.Context, link model.ShortLink) error {
	query := `
		INSERT INTO urls (code, full_url, clicks, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := ds.pool.Exec(ctx, query, string(link.Short), link.Full, link.Clicks, link.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("code %s: %w", link.Short, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert url: %w", err)
	}

	return nil
}

// IncrementClicks атомарно увеличивает счётчик переходов
func (ds *DatabaseStore) IncrementClicks(ctx context.Context, code model.Code) (model.ShortLink, error) {
	query := `
		UPDATE urls
		SET clicks = clicks + 1
		WHERE code = $1
		RETURNING full_url, code, clicks, created_at
	`

	var (
		link  model.ShortLink
		short string
	)
	err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&link.Full, &short, &link.Clicks, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShortLink{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.ShortLink{}, fmt.Errorf("failed to increment clicks: %w", err)
	}
	link.Short = model.Code(short)

	return link, nil
}

// ListLinks возвращает все ссылки, новые первыми
func (ds *DatabaseStore) ListLinks(ctx context.Context) ([]model.ShortLink, error) {
	query := `
		SELECT full_url, code, clicks, created_at
		FROM urls
		ORDER BY created_at DESC, id DESC
	`

	rows, err := ds.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query urls: %w", err)
	}

	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ShortLink, error) {
		var (
			link  model.ShortLink
			short string
		)
		err := row.Scan(&link.Full, &short, &link.Clicks, &link.CreatedAt)
		link.Short = model.Code(short)
		return link, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan urls: %w", err)
	}

	return links, nil
}

// CountLinksByMonth считает ссылки по месяцу создания за все годы
func (ds *DatabaseStore) CountLinksByMonth(ctx context.Context) ([]model.GraphPoint, error) {
	query := `
		SELECT to_char(created_at, 'MM') AS month, COUNT(*)
		FROM urls
		GROUP BY month
		ORDER BY month
	`

	return ds.queryGraph(ctx, query)
}

// CountLinksByDay считает ссылки по дню месяца в интервале [from, to)
func (ds *DatabaseStore) CountLinksByDay(ctx context.Context, from, to time.Time) ([]model.GraphPoint, error) {
	query := `
		SELECT to_char(created_at, 'DD') AS day, COUNT(*)
		FROM urls
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY day
		ORDER BY day
	`

	return ds.queryGraph(ctx, query, from, to)
}

func (ds *DatabaseStore) queryGraph(ctx context.Context, query string, args ...any) ([]model.GraphPoint, error) {
	rows, err := ds.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query url counts: %w", err)
	}

	points, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.GraphPoint, error) {
		var point model.GraphPoint
		err := row.Scan(&point.Date, &point.NoOfURLs)
		return point, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan url counts: %w", err)
	}

	return points, nil
}

// CreatePendingAccount сохраняет неподтверждённую регистрацию
func (ds *DatabaseStore) CreatePendingAccount(ctx context.Context, account model.PendingAccount) error {
	query := `
		INSERT INTO pending_accounts (id, email, password_hash, first_name, last_name, token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := ds.pool.Exec(ctx, query,
		uuid.NewString(), account.Email, account.PasswordHash,
		account.FirstName, account.LastName, account.Token, account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pending account: %w", err)
	}

	return nil
}

// ActivatePendingAccount в одной транзакции создает учётную запись из регистрации
// и удаляет все регистрации с теми же email и токеном
func (ds *DatabaseStore) ActivatePendingAccount(ctx context.Context, email, token string) (model.Account, error) {
	tx, err := ds.pool.Begin(ctx)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	account := model.Account{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	query := `
		SELECT email, password_hash, first_name, last_name
		FROM pending_accounts
		WHERE email = $1 AND token = $2
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE
	`
	err = tx.QueryRow(ctx, query, email, token).
		Scan(&account.Email, &account.PasswordHash, &account.FirstName, &account.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, fmt.Errorf("pending account %s: %w", email, ErrNotFound)
		}
		return model.Account{}, fmt.Errorf("failed to read pending account: %w", err)
	}

	query = `
		INSERT INTO accounts (id, email, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.Exec(ctx, query,
		account.ID, account.Email, account.PasswordHash,
		account.FirstName, account.LastName, account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Account{}, fmt.Errorf("account %s: %w", email, ErrAlreadyExists)
		}
		return model.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	query = `DELETE FROM pending_accounts WHERE email = $1 AND token = $2`
	if _, err = tx.Exec(ctx, query, email, token); err != nil {
		return model.Account{}, fmt.Errorf("failed to delete pending accounts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Account{}, fmt.Errorf("failed to commit activation: %w", err)
	}

	return account, nil
}

// FindAccount ищет активную учётную запись по email
func (ds *DatabaseStore) FindAccount(ctx context.Context, email string) (model.Account, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name,
		       COALESCE(reset_token, ''), reset_expires_at, created_at
		FROM accounts
		WHERE email = $1
	`

	var (
		account   model.Account
		expiresAt *time.Time
	)
	err := ds.pool.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.FirstName, &account.LastName,
		&account.ResetToken, &expiresAt, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, fmt.Errorf("account %s: %w", email, ErrNotFound)
		}
		return model.Account{}, fmt.Errorf("failed to read account: %w", err)
	}

	if expiresAt != nil {
		account.ResetExpiresAt = *expiresAt
	}

	return account, nil
}

// SetResetToken сохраняет токен сброса пароля и срок его действия
func (ds *DatabaseStore) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	query := `
		UPDATE accounts
		SET reset_token = $2, reset_expires_at = $3
		WHERE email = $1
	`

	tag, err := ds.pool.Exec(ctx, query, email, token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", email, ErrNotFound)
	}

	return nil
}

// UpdatePassword меняет пароль, только если токен сброса совпадает, и очищает токен
func (ds *DatabaseStore) UpdatePassword(ctx context.Context, email, token, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password_hash = $3, reset_token = NULL, reset_expires_at = NULL
		WHERE email = $1 AND reset_token = $2
	`

	tag, err := ds.pool.Exec(ctx, query, email, token, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s with reset token: %w", email, ErrNotFound)
	}

	return nil
}
