package models

import "time"

// Session представляет серверную сессию авторизованного пользователя.
// Создаётся при входе, уничтожается при выходе или при удалении
// пользователя администратором, просроченные записи вычищаются
// периодической задачей.
type Session struct {
	ID        string    // Уникальный идентификатор сессии (uuid)
	UserID    int       // Пользователь, которому принадлежит сессия
	ExpiresAt time.Time // Момент истечения сессии
}

// Expired сообщает, истекла ли сессия к моменту now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
