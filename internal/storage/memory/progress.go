package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// CreateProgress сохраняет новую запись прогресса и возвращает её
// с присвоенным идентификатором.
func (s *Store) CreateProgress(ctx context.Context, p models.Progress) (*models.Progress, error) {
	const op = "storage.memory.CreateProgress"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextProgressID
	s.nextProgressID++
	s.progress[p.ID] = p
	return &p, nil
}

// ListProgressByUser возвращает записи прогресса пользователя
// в порядке создания.
func (s *Store) ListProgressByUser(ctx context.Context, userID int) ([]*models.Progress, error) {
	const op = "storage.memory.ListProgressByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Progress, 0)
	for _, p := range s.progress {
		if p.UserID == userID {
			pp := p
			result = append(result, &pp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
