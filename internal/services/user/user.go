// Package user содержит бизнес-логику административного управления
// пользователями: список всех пользователей, назначение тренировочного
// пакета и удаление пользователя с каскадом.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/session"
	"github.com/magabrotheeeer/fitcoach/internal/storage"
)

// ErrUnknownPackage возвращается при назначении тарифа, которого нет в каталоге.
var ErrUnknownPackage = errors.New("unknown package")

// ErrUserNotFound возвращается, когда пользователь отсутствует в хранилище.
var ErrUserNotFound = errors.New("user not found")

// Repository определяет методы для административной работы с пользователями.
type Repository interface {
	// ListUsers возвращает всех пользователей в порядке создания.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// DeleteUser удаляет пользователя и каскадно его записи прогресса и консультации.
	DeleteUser(ctx context.Context, id int) error
	// UpdateUserPackage назначает пользователю пакет с датами действия.
	UpdateUserPackage(ctx context.Context, id int, packageID string, start, end time.Time) (*models.User, error)
}

// Service реализует административные операции над пользователями.
type Service struct {
	repo     Repository
	sessions session.Store
	log      *slog.Logger
	now      func() time.Time
}

// New создает новый экземпляр Service.
func New(repo Repository, sessions session.Store, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		log:      log,
		now:      time.Now,
	}
}

// ListUsers возвращает всех пользователей.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// DeleteUser удаляет пользователя: сначала уничтожает все его сессии,
// затем запись пользователя вместе с каскадом. Шаги идут по разным
// хранилищам и не объединены в одну транзакцию: при ошибке на втором
// шаге сессии уже уничтожены и не восстанавливаются.
func (s *Service) DeleteUser(ctx context.Context, id int) error {
	const op = "services.user.DeleteUser"

	if err := s.sessions.DestroyForUser(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("deleted user with cascade", slog.Int("user_id", id))
	return nil
}

// AssignPackage назначает пользователю тариф из каталога. Срок действия
// отсчитывается от текущего момента, длительность берётся из тарифа.
func (s *Service) AssignPackage(ctx context.Context, userID int, packageID string) (*models.User, error) {
	const op = "services.user.AssignPackage"

	pkg, ok := models.FindPackage(packageID)
	if !ok {
		return nil, ErrUnknownPackage
	}

	start := s.now().UTC()
	end := start.AddDate(0, pkg.Duration, 0)
	user, err := s.repo.UpdateUserPackage(ctx, userID, pkg.ID, start, end)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("assigned package to user",
		slog.Int("user_id", userID), slog.String("package", pkg.ID))
	return user, nil
}
