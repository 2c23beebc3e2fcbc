package models

import "time"

// Статусы консультации.
const (
	ConsultationScheduled = "scheduled"
	ConsultationCompleted = "completed"
	ConsultationCancelled = "cancelled"
)

// Consultation представляет запланированную консультацию с тренером.
// Владелец записи определяется полем UserID, клиентское значение
// игнорируется и всегда перезаписывается на сервере.
type Consultation struct {
	ID            int       `json:"id"`            // Уникальный идентификатор записи
	UserID        int       `json:"userId"`        // Владелец консультации
	ScheduledDate time.Time `json:"scheduledDate"` // Назначенная дата и время
	Status        string    `json:"status"`        // scheduled, completed или cancelled
	Notes         *string   `json:"notes"`         // Заметки (опционально)
}

// DummyConsultation используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Consultation. Дата приходит строкой
// в формате RFC3339, формат проверяется на этапе валидации.
type DummyConsultation struct {
	ScheduledDate string  `json:"scheduledDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"` // Дата в формате RFC3339
	Status        string  `json:"status" validate:"required,oneof=scheduled completed cancelled"`       // Статус записи
	Notes         *string `json:"notes"`                                                                // Заметки (опционально)
}
