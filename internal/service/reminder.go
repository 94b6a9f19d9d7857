package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	reminderInterval  = time.Hour
	reminderThreshold = 24 * time.Hour
)

// StartReminderJob polls for loans coming due within the next day and
// flags them. The reminderSent flag makes a rerun over the same loan a
// no-op, so overlapping scans stay harmless.
func (s *Service) StartReminderJob(ctx context.Context) {
	log := s.log.Named("reminder")
	ticker := time.NewTicker(reminderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.processDueReminders(ctx); err != nil {
				log.Error("process lending reminders", zap.Error(err))
			}
		}
	}
}

func (s *Service) processDueReminders(ctx context.Context) error {
	now := time.Now()
	lendings, err := s.lendings.DueSoon(ctx, now, now.Add(reminderThreshold))
	if err != nil {
		return err
	}
	log := s.log.Named("reminder")
	for _, lending := range lendings {
		log.Info("lending due soon",
			zap.String("lending", lending.LendingUID),
			zap.String("user", lending.UserUID),
			zap.String("book", lending.BookTitle),
			zap.Time("dueDate", lending.DueDate))
		if err := s.lendings.MarkReminderSent(ctx, lending.ID); err != nil {
			return err
		}
	}
	return nil
}
