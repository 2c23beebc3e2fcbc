package models

import "time"

// ConsultationReminder — сообщение для очереди напоминаний
// о предстоящих консультациях.
type ConsultationReminder struct {
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Notes         *string   `json:"notes,omitempty"`
}
