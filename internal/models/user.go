// Package models содержит доменные структуры приложения: пользователей,
// консультации, записи прогресса и сессии. Структуры используются
// в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash никогда не сериализуется в JSON-ответы: клиенту пароль
// не нужен даже в захэшированном виде.
type User struct {
	ID               int        `json:"id"`               // Уникальный числовой идентификатор
	Username         string     `json:"username"`         // Имя пользователя (уникальное)
	PasswordHash     string     `json:"-"`                // bcrypt-хэш пароля
	Email            string     `json:"email"`            // Электронная почта
	IsAdmin          bool       `json:"isAdmin"`          // Признак администратора
	Phone            *string    `json:"phone"`            // Телефон (опционально)
	CurrentPackage   *string    `json:"currentPackage"`   // Идентификатор текущего пакета тренировок
	PackageStartDate *time.Time `json:"packageStartDate"` // Дата начала действия пакета
	PackageEndDate   *time.Time `json:"packageEndDate"`   // Дата окончания действия пакета
}
