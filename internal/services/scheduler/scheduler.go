// Package services содержит планировщик напоминаний о воде: периодически
// выбирает пользователей с включёнными уведомлениями и публикует
// сообщения в RabbitMQ для воркера-отправителя.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// SettingsRepository определяет методы выборки адресатов напоминаний.
type SettingsRepository interface {
	// ListNotifiableUsers возвращает пользователей с включёнными уведомлениями.
	ListNotifiableUsers(ctx context.Context) ([]*models.ReminderTarget, error)
}

// SchedulerService публикует напоминания о воде по расписанию.
type SchedulerService struct {
	repo SettingsRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo SettingsRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// SendWaterReminders запускает рассылку напоминаний сразу и далее
// каждые 12 часов.
func (s *SchedulerService) SendWaterReminders(ctx context.Context, channel *amqp.Channel) {
	s.runSendWaterReminders(ctx, channel)

	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		s.runSendWaterReminders(ctx, channel)
	}
}

func (s *SchedulerService) runSendWaterReminders(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to send water reminders")
	targets, err := s.repo.ListNotifiableUsers(ctx)
	if err != nil {
		s.log.Error("failed to find reminder targets", sl.Err(err))
		return
	}
	if len(targets) == 0 {
		s.log.Info("no reminder targets found")
		return
	}
	s.log.Info("found reminder targets", "count", len(targets))
	for _, target := range targets {
		err = rabbitmq.PublishMessage(channel, "reminders", "water", target)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
