// Package progress содержит бизнес-логику для записей прогресса.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// Repository определяет методы для работы с записями прогресса в хранилище.
type Repository interface {
	// CreateProgress добавляет новую запись прогресса и возвращает её с ID.
	CreateProgress(ctx context.Context, p models.Progress) (*models.Progress, error)
	// ListProgressByUser возвращает записи прогресса пользователя в порядке создания.
	ListProgressByUser(ctx context.Context, userID int) ([]*models.Progress, error)
}

// Service реализует бизнес-логику работы с записями прогресса.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create создает новую запись прогресса для пользователя. Владелец
// записи всегда берётся из аутентифицированного запроса.
func (s *Service) Create(ctx context.Context, userID int, req models.DummyProgress) (*models.Progress, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	weight := req.Weight
	progress, err := s.repo.CreateProgress(ctx, models.Progress{
		UserID: userID,
		Date:   date,
		Weight: &weight,
		Notes:  req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("created new progress entry", slog.Int("id", progress.ID), slog.Int("user_id", userID))
	return progress, nil
}

// List возвращает записи прогресса пользователя.
func (s *Service) List(ctx context.Context, userID int) ([]*models.Progress, error) {
	return s.repo.ListProgressByUser(ctx, userID)
}
