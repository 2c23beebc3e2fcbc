// Package auth содержит логику бизнес-уровня для работы с пользователями
// и аутентификацией: регистрация, вход, выход и разрешение токена
// в текущего пользователя.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/fitcoach/internal/lib/jwt"
	"github.com/magabrotheeeer/fitcoach/internal/lib/password"
	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/session"
	"github.com/magabrotheeeer/fitcoach/internal/storage"
)

// ErrUsernameTaken возвращается при попытке регистрации с занятым именем.
var ErrUsernameTaken = errors.New("username already taken")

// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized возвращается, когда токен не разрешается в живую сессию.
var ErrUnauthorized = errors.New("unauthorized")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его с ID.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUser возвращает пользователя по ID или ошибку, если не найден.
	GetUser(ctx context.Context, id int) (*models.User, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход, выход и проверку сессий.
type AuthService struct {
	users    UserRepository
	sessions session.Store
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions session.Store, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу
// аутентифицирует его: создаёт сессию и возвращает токен. Занятое имя
// пользователя — конфликт, хранилище при этом не изменяется.
func (s *AuthService) Register(ctx context.Context, username, rawPassword, email string, phone *string) (*models.User, string, error) {
	const op = "services.auth.Register"

	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        email,
		Phone:        phone,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.startSession(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Login проверяет пароль пользователя, создаёт сессию и возвращает токен.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (*models.User, string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.startSession(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Logout уничтожает сессию, на которую указывает токен.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	const op = "services.auth.Logout"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return ErrUnauthorized
	}
	if err = s.sessions.Destroy(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Resolve разрешает токен в текущего пользователя. Токен с валидной
// подписью, но уничтоженной или просроченной сессией не авторизует:
// состояние авторизации живёт на сервере, а не в токене. Пользователь
// каждый раз читается из хранилища, поэтому признак администратора
// всегда актуален.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.Resolve"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.GetUser(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func (s *AuthService) startSession(ctx context.Context, user *models.User) (string, error) {
	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", err
	}
	return s.jwtMaker.GenerateToken(user.Username, sess.ID)
}
