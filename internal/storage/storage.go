// Package storage определяет общий контракт хранилища сущностей и его
// ошибки. Конкретные реализации находятся в подпакетах memory и repository.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в хранилище.
var ErrNotFound = errors.New("not found")

// EntityStore — контракт хранилища пользователей, консультаций и записей
// прогресса. Реализуется пакетами memory и repository.
type EntityStore interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUserPackage(ctx context.Context, id int, packageID string, start, end time.Time) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error

	CreateConsultation(ctx context.Context, c models.Consultation) (*models.Consultation, error)
	ListConsultationsByUser(ctx context.Context, userID int) ([]*models.Consultation, error)
	ListConsultationsBetween(ctx context.Context, from, to time.Time) ([]*models.Consultation, error)

	CreateProgress(ctx context.Context, p models.Progress) (*models.Progress, error)
	ListProgressByUser(ctx context.Context, userID int) ([]*models.Progress, error)
}
