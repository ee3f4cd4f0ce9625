package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
	"github.com/google/uuid"
)

// Store хранит ссылки и учётные записи в памяти процесса.
// Используется, когда не настроена ни одна база данных, и в тестах.
type Store struct {
	mutex sync.Mutex

	links  []model.ShortLink
	byCode map[model.Code]int

	pending  []model.PendingAccount
	accounts map[string]model.Account
}

func NewStore() *Store {
	return &Store{
		byCode:   make(map[model.Code]int),
		accounts: make(map[string]model.Account),
	}
}

// CreateLink сохраняет новую ссылку, код должен быть уникальным
func (s *Store) CreateLink(_ context.Context, link model.ShortLink) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byCode[link.Short]; exists {
		return fmt.Errorf("code %s: %w", link.Short, ErrAlreadyExists)
	}

	s.byCode[link.Short] = len(s.links)
	s.links = append(s.links, link)

	return nil
}

// IncrementClicks увеличивает счётчик переходов и возвращает обновлённую ссылку
func (s *Store) IncrementClicks(_ context.Context, code model.Code) (model.ShortLink, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx, ok := s.byCode[code]
	if !ok {
		return model.ShortLink{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	s.links[idx].Clicks++

	return s.links[idx], nil
}

// ListLinks возвращает все ссылки, новые первыми
func (s *Store) ListLinks(_ context.Context) ([]model.ShortLink, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := make([]model.ShortLink, len(s.links))
	// Обратный порядок вставки, чтобы при равных датах новые шли первыми
	for i, link := range s.links {
		result[len(s.links)-1-i] = link
	}

	slices.SortStableFunc(result, func(a, b model.ShortLink) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

// CountLinksByMonth считает ссылки по месяцу создания за все годы
func (s *Store) CountLinksByMonth(_ context.Context) ([]model.GraphPoint, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return countBy(s.links, func(link model.ShortLink) (string, bool) {
		return link.CreatedAt.UTC().Format("01"), true
	}), nil
}

// CountLinksByDay считает ссылки по дню месяца в интервале [from, to)
func (s *Store) CountLinksByDay(_ context.Context, from, to time.Time) ([]model.GraphPoint, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return countBy(s.links, func(link model.ShortLink) (string, bool) {
		if link.CreatedAt.Before(from) || !link.CreatedAt.Before(to) {
			return "", false
		}
		return link.CreatedAt.UTC().Format("02"), true
	}), nil
}

func countBy(links []model.ShortLink, label func(model.ShortLink) (string, bool)) []model.GraphPoint {
	counts := make(map[string]int64)
	for _, link := range links {
		if key, ok := label(link); ok {
			counts[key]++
		}
	}

	points := make([]model.GraphPoint, 0, len(counts))
	for key, n := range counts {
		points = append(points, model.GraphPoint{Date: key, NoOfURLs: n})
	}
	slices.SortFunc(points, func(a, b model.GraphPoint) int {
		return cmp.Compare(a.Date, b.Date)
	})

	return points
}

// CreatePendingAccount сохраняет неподтверждённую регистрацию
func (s *Store) CreatePendingAccount(_ context.Context, account model.PendingAccount) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.pending = append(s.pending, account)

	return nil
}

// ActivatePendingAccount переносит регистрацию с совпадающими email и токеном в активные
// и удаляет все такие регистрации. Если email уже активен, ничего не меняет.
func (s *Store) ActivatePendingAccount(_ context.Context, email, token string) (model.Account, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := slices.IndexFunc(s.pending, func(p model.PendingAccount) bool {
		return p.Email == email && p.Token == token
	})
	if idx < 0 {
		return model.Account{}, fmt.Errorf("pending account %s: %w", email, ErrNotFound)
	}

	if _, exists := s.accounts[email]; exists {
		return model.Account{}, fmt.Errorf("account %s: %w", email, ErrAlreadyExists)
	}

	p := s.pending[idx]
	account := model.Account{
		ID:           uuid.NewString(),
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		CreatedAt:    time.Now().UTC(),
	}
	s.accounts[email] = account

	s.pending = slices.DeleteFunc(s.pending, func(p model.PendingAccount) bool {
		return p.Email == email && p.Token == token
	})

	return account, nil
}

// FindAccount ищет активную учётную запись по email
func (s *Store) FindAccount(_ context.Context, email string) (model.Account, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	account, ok := s.accounts[email]
	if !ok {
		return model.Account{}, fmt.Errorf("account %s: %w", email, ErrNotFound)
	}

	return account, nil
}

// SetResetToken сохраняет токен сброса пароля и срок его действия
func (s *Store) SetResetToken(_ context.Context, email, token string, expiresAt time.Time) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	account, ok := s.accounts[email]
	if !ok {
		return fmt.Errorf("account %s: %w", email, ErrNotFound)
	}

	account.ResetToken = token
	account.ResetExpiresAt = expiresAt
	s.accounts[email] = account

	return nil
}

// UpdatePassword меняет пароль, только если токен сброса совпадает, и очищает токен
func (s *Store) UpdatePassword(_ context.Context, email, token, passwordHash string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	account, ok := s.accounts[email]
	if !ok || token == "" || account.ResetToken != token {
		return fmt.Errorf("account %s with reset token: %w", email, ErrNotFound)
	}

	account.PasswordHash = passwordHash
	account.ResetToken = ""
	account.ResetExpiresAt = time.Time{}
	s.accounts[email] = account

	return nil
}
