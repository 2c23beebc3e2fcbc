// Package reminder реализует пайплайн напоминаний о предстоящих
// консультациях: планировщик находит консультации на завтра и публикует
// сообщения в RabbitMQ, отправитель потребляет их и рассылает письма.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/fitcoach/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/fitcoach/internal/lib/sl"
	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// Repository определяет методы хранилища, нужные планировщику.
type Repository interface {
	// ListConsultationsBetween возвращает запланированные консультации в интервале [from, to).
	ListConsultationsBetween(ctx context.Context, from, to time.Time) ([]*models.Consultation, error)
	// GetUser возвращает владельца консультации.
	GetUser(ctx context.Context, id int) (*models.User, error)
}

// SchedulerService периодически ищет консультации на завтра
// и публикует напоминания.
type SchedulerService struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo Repository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// FindConsultationsDueTomorrow запускает поиск сразу и затем
// по тикеру каждый час, пока контекст не отменён.
func (s *SchedulerService) FindConsultationsDueTomorrow(ctx context.Context, channel *amqp.Channel) {
	s.runFindConsultationsDueTomorrow(ctx, channel)

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runFindConsultationsDueTomorrow(ctx, channel)
		}
	}
}

func (s *SchedulerService) runFindConsultationsDueTomorrow(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find consultations due tomorrow")

	from := s.now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)
	consultations, err := s.repo.ListConsultationsBetween(ctx, from, to)
	if err != nil {
		s.log.Error("failed to find consultations", sl.Err(err))
		return
	}
	if len(consultations) == 0 {
		s.log.Info("no upcoming consultations found")
		return
	}
	s.log.Info("found upcoming consultations", "count", len(consultations))

	for _, c := range consultations {
		owner, err := s.repo.GetUser(ctx, c.UserID)
		if err != nil {
			s.log.Error("failed to resolve consultation owner", sl.Err(err))
			continue
		}
		message := models.ConsultationReminder{
			Email:         owner.Email,
			Username:      owner.Username,
			ScheduledDate: c.ScheduledDate,
			Notes:         c.Notes,
		}
		if err = rabbitmq.PublishMessage(channel, rabbitmq.ReminderExchange, "consultation", message); err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
