// Package session реализует серверное хранилище сессий. Сессия создаётся
// при входе пользователя, уничтожается при выходе или при удалении
// пользователя администратором; просроченные записи вычищаются
// периодической задачей либо TTL-механизмом Redis.
package session

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// ErrNotFound возвращается, когда сессия отсутствует или уже истекла.
var ErrNotFound = errors.New("session not found")

// Store описывает контракт хранилища сессий.
type Store interface {
	// Create создает сессию для пользователя и возвращает её.
	Create(ctx context.Context, userID int) (*models.Session, error)
	// Get возвращает живую сессию по идентификатору.
	Get(ctx context.Context, id string) (*models.Session, error)
	// Destroy уничтожает сессию по идентификатору.
	Destroy(ctx context.Context, id string) error
	// DestroyForUser уничтожает все сессии пользователя,
	// перебирая всю таблицу сессий.
	DestroyForUser(ctx context.Context, userID int) error
	// List возвращает все сессии без фильтрации.
	List(ctx context.Context) ([]*models.Session, error)
}
