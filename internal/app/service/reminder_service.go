package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

// reminderWindowDays: a reminder fires when a task's due date is exactly
// this many whole days ahead of the sweep time. It is a point-in-time
// check, so each task gets at most one reminder.
const reminderWindowDays = 2

// ReminderService sweeps all tasks once per day and emits due-date
// notifications. It runs independently of the request/response path.
type ReminderService struct {
	tasks                  ports.TaskDirectory
	notificationRepository ports.NotificationRepository
	notifications          ports.NotificationService
	location               *time.Location

	now func() time.Time
}

func NewReminderService(
	tasks ports.TaskDirectory,
	notificationRepository ports.NotificationRepository,
	notifications ports.NotificationService,
	location *time.Location,
) *ReminderService {
	return &ReminderService{
		tasks:                  tasks,
		notificationRepository: notificationRepository,
		notifications:          notifications,
		location:               location,
		now:                    time.Now,
	}
}

// Sweep pulls the lean task list from the Task collaborator and creates a
// notification plus mail for every task due in exactly two days. Failures
// are isolated per task; one bad task never aborts the rest of the sweep.
func (s *ReminderService) Sweep(ctx context.Context) error {
	tasks, err := s.tasks.ListAllTasks(ctx)
	if err != nil {
		zap.L().Error("reminder sweep could not list tasks", zap.Error(err))
		return err
	}

	now := s.now().In(s.location)
	created := 0
	for _, task := range tasks {
		if task.DueDate == nil || task.Status == domain.TaskStatusDone {
			continue
		}

		if wholeDaysUntil(now, *task.DueDate) != reminderWindowDays {
			continue
		}

		n := domain.Notification{
			ID:     uuid.NewString(),
			UserID: task.AssignedTo,
			TaskID: task.ID,
			Message: fmt.Sprintf("Task %q is due soon (%s)",
				task.Name, task.DueDate.In(s.location).Format("02/01/2006")),
			IsRead:    false,
			SentAt:    nil,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.notificationRepository.Create(ctx, n); err != nil {
			zap.L().Error("failed to create reminder notification",
				zap.String("task_id", task.ID), zap.Error(err))
			continue
		}
		created++

		s.notifications.SendMail(ctx, "", n, true)
	}

	zap.L().Info("reminder sweep finished",
		zap.Int("tasks", len(tasks)), zap.Int("notifications", created))
	return nil
}

// wholeDaysUntil truncates the duration between now and due to whole days.
func wholeDaysUntil(now, due time.Time) int {
	return int(due.Sub(now) / (24 * time.Hour))
}
