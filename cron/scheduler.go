package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tradecall/config"
	"tradecall/models"

	"github.com/hibiken/asynq"
)

// ReminderScheduler enqueues reminder tasks for the day before a booking's
// preferred date.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder email at 9am the day before the
// booking's preferred date. Dates in the past (or tomorrow and earlier) are
// skipped silently.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, b *models.Booking) error {
	date, err := time.ParseInLocation("2006-01-02", b.PreferredDate, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable preferred date %q: %w", b.PreferredDate, err)
	}

	fireAt := date.AddDate(0, 0, -1).Add(9 * time.Hour)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: b.ID,
		Email:     b.Email,
		Name:      b.Name,
		Date:      b.PreferredDate,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
