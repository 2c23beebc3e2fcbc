package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// CreateConsultation сохраняет новую консультацию и возвращает её
// с присвоенным идентификатором.
func (s *Store) CreateConsultation(ctx context.Context, c models.Consultation) (*models.Consultation, error) {
	const op = "storage.memory.CreateConsultation"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextConsultationID
	s.nextConsultationID++
	s.consultations[c.ID] = c
	return &c, nil
}

// ListConsultationsByUser возвращает консультации пользователя
// в порядке создания.
func (s *Store) ListConsultationsByUser(ctx context.Context, userID int) ([]*models.Consultation, error) {
	const op = "storage.memory.ListConsultationsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Consultation, 0)
	for _, c := range s.consultations {
		if c.UserID == userID {
			cc := c
			result = append(result, &cc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ListConsultationsBetween возвращает запланированные консультации
// с датой в интервале [from, to). Используется планировщиком напоминаний.
func (s *Store) ListConsultationsBetween(ctx context.Context, from, to time.Time) ([]*models.Consultation, error) {
	const op = "storage.memory.ListConsultationsBetween"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Consultation, 0)
	for _, c := range s.consultations {
		if c.Status != models.ConsultationScheduled {
			continue
		}
		if c.ScheduledDate.Before(from) || !c.ScheduledDate.Before(to) {
			continue
		}
		cc := c
		result = append(result, &cc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
