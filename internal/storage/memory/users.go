package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/storage"
)

// CreateUser сохраняет нового пользователя, присваивает ему следующий
// идентификатор и возвращает сохранённую запись.
func (s *Store) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.memory.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *Store) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.memory.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return &user, nil
}

// GetUserByUsername возвращает первого пользователя с совпадающим именем.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.memory.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// ListUsers возвращает всех пользователей в порядке создания.
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.memory.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		u := user
		result = append(result, &u)
	}
	// Идентификаторы растут монотонно, сортировка по ним
	// восстанавливает порядок вставки.
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UpdateUserPackage назначает пользователю тренировочный пакет
// с датами начала и окончания действия.
func (s *Store) UpdateUserPackage(ctx context.Context, id int, packageID string, start, end time.Time) (*models.User, error) {
	const op = "storage.memory.UpdateUserPackage"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	user.CurrentPackage = &packageID
	user.PackageStartDate = &start
	user.PackageEndDate = &end
	s.users[id] = user
	return &user, nil
}

// DeleteUser удаляет пользователя и каскадно все его записи прогресса
// и консультации. Полный проход по коллекциям выполняется под одним
// мьютексом, так что каскад не может чередоваться с другими операциями
// хранилища.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	const op = "storage.memory.DeleteUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)

	for progressID, p := range s.progress {
		if p.UserID == id {
			delete(s.progress, progressID)
		}
	}

	for consultationID, c := range s.consultations {
		if c.UserID == id {
			delete(s.consultations, consultationID)
		}
	}
	return nil
}
