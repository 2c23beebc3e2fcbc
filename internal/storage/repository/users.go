package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/storage"
)

// CreateUser сохраняет нового пользователя и возвращает запись
// с присвоенным идентификатором.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.repository.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (username, password_hash, email, is_admin, phone,
			      current_package, package_start_date, package_end_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.Email, user.IsAdmin, user.Phone,
		user.CurrentPackage, user.PackageStartDate, user.PackageEndDate).Scan(&user.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// GetUser возвращает пользователя по его идентификатору.
func (s *Storage) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.repository.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, password_hash, email, is_admin, phone,
			      current_package, package_start_date, package_end_date
			  FROM users
			  WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, id), op)
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.repository.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, password_hash, email, is_admin, phone,
			      current_package, package_start_date, package_end_date
			  FROM users
			  WHERE username = $1
			  ORDER BY id
			  LIMIT 1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, username), op)
}

// ListUsers возвращает всех пользователей в порядке создания.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.repository.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, password_hash, email, is_admin, phone,
			      current_package, package_start_date, package_end_date
			  FROM users
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u, err := scanUserRow(rows, op)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateUserPackage назначает пользователю тренировочный пакет
// с датами начала и окончания действия.
func (s *Storage) UpdateUserPackage(ctx context.Context, id int, packageID string, start, end time.Time) (*models.User, error) {
	const op = "storage.repository.UpdateUserPackage"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET current_package = $1,
			      package_start_date = $2,
			      package_end_date = $3
			  WHERE id = $4
			  RETURNING id, username, password_hash, email, is_admin, phone,
			      current_package, package_start_date, package_end_date`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, packageID, start, end, id), op)
}

// DeleteUser удаляет пользователя и каскадно все его записи прогресса
// и консультации в одной транзакции.
func (s *Storage) DeleteUser(ctx context.Context, id int) error {
	const op = "storage.repository.DeleteUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM progress WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM consultations WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u, err := scanUserRow(row, op)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func scanUserRow(row rowScanner, op string) (*models.User, error) {
	u := &models.User{}
	var phone, currentPackage sql.NullString
	var packageStart, packageEnd sql.NullTime
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.IsAdmin,
		&phone, &currentPackage, &packageStart, &packageEnd); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if phone.Valid {
		u.Phone = &phone.String
	}
	if currentPackage.Valid {
		u.CurrentPackage = &currentPackage.String
	}
	if packageStart.Valid {
		u.PackageStartDate = &packageStart.Time
	}
	if packageEnd.Valid {
		u.PackageEndDate = &packageEnd.Time
	}
	return u, nil
}
