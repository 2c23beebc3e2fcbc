package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// MemoryStore хранит сессии в памяти процесса. Просроченные записи
// удаляет RunPruner; одновременное уничтожение сессии и её вычистка
// безопасны — побеждает последняя запись по данному идентификатору.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore создает пустое хранилище сессий с заданным TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create создает сессию для пользователя и возвращает её.
func (m *MemoryStore) Create(ctx context.Context, userID int) (*models.Session, error) {
	const op = "session.memory.Create"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s := models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: m.now().Add(m.ttl),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return &s, nil
}

// Get возвращает живую сессию по идентификатору. Просроченная сессия
// равносильна отсутствующей, даже если вычистка до неё ещё не дошла.
func (m *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	const op = "session.memory.Get"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok || s.Expired(m.now()) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return &s, nil
}

// Destroy уничтожает сессию по идентификатору.
func (m *MemoryStore) Destroy(ctx context.Context, id string) error {
	const op = "session.memory.Destroy"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// DestroyForUser уничтожает все сессии пользователя полным перебором
// таблицы сессий.
func (m *MemoryStore) DestroyForUser(ctx context.Context, userID int) error {
	const op = "session.memory.DestroyForUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, id)
		}
	}
	return nil
}

// List возвращает все сессии без фильтрации.
func (m *MemoryStore) List(ctx context.Context) ([]*models.Session, error) {
	const op = "session.memory.List"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*models.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		ss := s
		result = append(result, &ss)
	}
	return result, nil
}

// RunPruner запускает периодическую вычистку просроченных сессий
// с заданным интервалом. Блокирует вызывающую горутину до отмены
// контекста.
func (m *MemoryStore) RunPruner(ctx context.Context, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := m.prune()
			if removed > 0 {
				log.Info("pruned expired sessions", slog.Int("count", removed))
			}
		}
	}
}

func (m *MemoryStore) prune() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
