// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Токен служит транспортом для идентификатора серверной сессии: клиент
// предъявляет его в заголовке Authorization, а сервер по session id из
// claims находит живую сессию. Уничтоженная сессия делает токен
// бесполезным даже при валидной подписи.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает токен для пользователя и его сессии.
	GenerateToken(username, sessionID string) (string, error)
	// ParseToken возвращает *CustomClaims с username и session id.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
