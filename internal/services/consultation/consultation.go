// Package consultation содержит бизнес-логику для записи на консультации.
package consultation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// Repository определяет методы для работы с консультациями в хранилище.
type Repository interface {
	// CreateConsultation добавляет новую консультацию и возвращает её с ID.
	CreateConsultation(ctx context.Context, c models.Consultation) (*models.Consultation, error)
	// ListConsultationsByUser возвращает консультации пользователя в порядке создания.
	ListConsultationsByUser(ctx context.Context, userID int) ([]*models.Consultation, error)
}

// Service реализует бизнес-логику работы с консультациями.
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

// Create создает новую консультацию для пользователя. Владелец записи
// всегда берётся из аутентифицированного запроса, значение из тела
// запроса игнорируется.
func (s *Service) Create(ctx context.Context, userID int, req models.DummyConsultation) (*models.Consultation, error) {
	scheduledDate, err := time.Parse(time.RFC3339, req.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduled date: %w", err)
	}

	consultation, err := s.repo.CreateConsultation(ctx, models.Consultation{
		UserID:        userID,
		ScheduledDate: scheduledDate,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("created new consultation", slog.Int("id", consultation.ID), slog.Int("user_id", userID))
	return consultation, nil
}

// List возвращает консультации пользователя.
func (s *Service) List(ctx context.Context, userID int) ([]*models.Consultation, error) {
	return s.repo.ListConsultationsByUser(ctx, userID)
}
