package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/fitcoach/internal/config"
	"github.com/magabrotheeeer/fitcoach/internal/models"
)

const redisKeyPrefix = "session:"

// RedisStore хранит сессии в Redis с нативным TTL, поэтому отдельная
// задача вычистки ему не нужна: просроченные ключи удаляет сам сервер.
type RedisStore struct {
	db  *redis.Client
	ttl time.Duration
}

// NewRedisStore подключается к Redis и возвращает хранилище сессий.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection, ttl time.Duration) (*RedisStore, error) {
	const op = "session.redis.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{db: db, ttl: ttl}, nil
}

// Create создает сессию для пользователя и возвращает её.
func (r *RedisStore) Create(ctx context.Context, userID int) (*models.Session, error) {
	const op = "session.redis.Create"

	s := models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(r.ttl),
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = r.db.Set(ctx, redisKeyPrefix+s.ID, jsonData, r.ttl).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Get возвращает живую сессию по идентификатору.
func (r *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	const op = "session.redis.Get"

	val, err := r.db.Get(ctx, redisKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var s models.Session
	if err = json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Destroy уничтожает сессию по идентификатору.
func (r *RedisStore) Destroy(ctx context.Context, id string) error {
	const op = "session.redis.Destroy"
	if err := r.db.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DestroyForUser уничтожает все сессии пользователя, перебирая ключи
// сессий через SCAN.
func (r *RedisStore) DestroyForUser(ctx context.Context, userID int) error {
	const op = "session.redis.DestroyForUser"

	sessions, err := r.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, s := range sessions {
		if s.UserID != userID {
			continue
		}
		if err = r.db.Del(ctx, redisKeyPrefix+s.ID).Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// List возвращает все сессии без фильтрации.
func (r *RedisStore) List(ctx context.Context) ([]*models.Session, error) {
	const op = "session.redis.List"

	var result []*models.Session
	iter := r.db.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		val, err := r.db.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		var s models.Session
		if err = json.Unmarshal([]byte(val), &s); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &s)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
