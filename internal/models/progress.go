package models

import "time"

// Progress представляет одну запись о прогрессе пользователя.
// Запись создаётся владельцем и после создания не изменяется.
type Progress struct {
	ID     int       `json:"id"`     // Уникальный идентификатор записи
	UserID int       `json:"userId"` // Владелец записи
	Date   time.Time `json:"date"`   // Дата замера
	Weight *int      `json:"weight"` // Вес в килограммах
	Notes  *string   `json:"notes"`  // Заметки (опционально)
}

// DummyProgress используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Progress.
type DummyProgress struct {
	Weight int     `json:"weight" validate:"required,gt=0"`                             // Вес (>0)
	Date   string  `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"` // Дата в формате RFC3339
	Notes  *string `json:"notes"`                                                       // Заметки (опционально)
}
