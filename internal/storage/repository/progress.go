package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// CreateProgress сохраняет новую запись прогресса и возвращает её
// с присвоенным идентификатором.
func (s *Storage) CreateProgress(ctx context.Context, p models.Progress) (*models.Progress, error) {
	const op = "storage.repository.CreateProgress"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO progress (user_id, date, weight, notes)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		p.UserID, p.Date, p.Weight, p.Notes).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ListProgressByUser возвращает записи прогресса пользователя
// в порядке создания.
func (s *Storage) ListProgressByUser(ctx context.Context, userID int) ([]*models.Progress, error) {
	const op = "storage.repository.ListProgressByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, date, weight, notes
			  FROM progress
			  WHERE user_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Progress
	for rows.Next() {
		var p models.Progress
		var weight sql.NullInt64
		var notes sql.NullString
		if err = rows.Scan(&p.ID, &p.UserID, &p.Date, &weight, &notes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if weight.Valid {
			w := int(weight.Int64)
			p.Weight = &w
		}
		if notes.Valid {
			p.Notes = &notes.String
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
