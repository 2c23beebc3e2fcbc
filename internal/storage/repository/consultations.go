package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// CreateConsultation сохраняет новую консультацию и возвращает её
// с присвоенным идентификатором.
func (s *Storage) CreateConsultation(ctx context.Context, c models.Consultation) (*models.Consultation, error) {
	const op = "storage.repository.CreateConsultation"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO consultations (user_id, scheduled_date, status, notes)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		c.UserID, c.ScheduledDate, c.Status, c.Notes).Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// ListConsultationsByUser возвращает консультации пользователя
// в порядке создания.
func (s *Storage) ListConsultationsByUser(ctx context.Context, userID int) ([]*models.Consultation, error) {
	const op = "storage.repository.ListConsultationsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, scheduled_date, status, notes
			  FROM consultations
			  WHERE user_id = $1
			  ORDER BY id`
	return s.queryConsultations(ctx, op, query, userID)
}

// ListConsultationsBetween возвращает запланированные консультации
// с датой в интервале [from, to). Используется планировщиком напоминаний.
func (s *Storage) ListConsultationsBetween(ctx context.Context, from, to time.Time) ([]*models.Consultation, error) {
	const op = "storage.repository.ListConsultationsBetween"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, scheduled_date, status, notes
			  FROM consultations
			  WHERE status = 'scheduled' AND scheduled_date >= $1 AND scheduled_date < $2
			  ORDER BY id`
	return s.queryConsultations(ctx, op, query, from, to)
}

func (s *Storage) queryConsultations(ctx context.Context, op, query string, args ...any) ([]*models.Consultation, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Consultation
	for rows.Next() {
		var c models.Consultation
		var notes sql.NullString
		if err = rows.Scan(&c.ID, &c.UserID, &c.ScheduledDate, &c.Status, &notes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if notes.Valid {
			c.Notes = &notes.String
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
