package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

const reminderMailSubject = "Task due soon"

// NotificationService owns the Notification lifecycle and the email
// side-effect pipeline behind it.
type NotificationService struct {
	notificationRepository ports.NotificationRepository
	tasks                  ports.TaskDirectory
	users                  ports.UserDirectory
	mailer                 ports.Mailer

	now func() time.Time
}

func NewNotificationService(
	notificationRepository ports.NotificationRepository,
	tasks ports.TaskDirectory,
	users ports.UserDirectory,
	mailer ports.Mailer,
) *NotificationService {
	return &NotificationService{
		notificationRepository: notificationRepository,
		tasks:                  tasks,
		users:                  users,
		mailer:                 mailer,
		now:                    time.Now,
	}
}

var _ ports.NotificationService = (*NotificationService)(nil)

func (s *NotificationService) CreateNotification(ctx context.Context, in domain.CreateNotificationInput) (domain.Notification, error) {
	now := s.now()
	n := domain.Notification{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		TaskID:    in.TaskID,
		Message:   in.Message,
		IsRead:    false,
		SentAt:    nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notificationRepository.Create(ctx, n); err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}

func (s *NotificationService) ListUserNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notificationRepository.ListByUser(ctx, userID)
}

func (s *NotificationService) GetNotification(ctx context.Context, token, id string) (domain.NotificationDetail, error) {
	n, err := s.notificationRepository.GetByID(ctx, id)
	if err != nil {
		return domain.NotificationDetail{}, err
	}

	detail := domain.NotificationDetail{Notification: n}

	// The referenced task is attached opportunistically.
	task, err := s.tasks.GetTask(ctx, token, n.TaskID)
	if err != nil {
		zap.L().Warn("failed to resolve notification task",
			zap.String("notification_id", id), zap.String("task_id", n.TaskID), zap.Error(err))
		return detail, nil
	}
	detail.Task = &task

	return detail, nil
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, id, callerID string) (domain.Notification, error) {
	n, err := s.notificationRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Notification{}, err
	}
	if n.UserID != callerID {
		return domain.Notification{}, domain.ErrForbidden
	}

	if err := s.notificationRepository.MarkRead(ctx, id); err != nil {
		return domain.Notification{}, err
	}
	n.IsRead = true
	return n, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id, callerID string) error {
	n, err := s.notificationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != callerID {
		return domain.ErrForbidden
	}
	return s.notificationRepository.Delete(ctx, id)
}

// SendMail resolves the recipient through the Auth collaborator and hands
// the message to the Mail collaborator. It must not crash the daily sweep
// or the manual trigger endpoint, so nothing propagates: no email found is
// a silent abort, any other failure is logged and dropped. sent_at is
// stamped only for persisted notifications and only after a successful
// send.
func (s *NotificationService) SendMail(ctx context.Context, token string, n domain.Notification, persisted bool) {
	users, err := s.users.GetUsersInfo(ctx, token, []string{n.UserID})
	if err != nil {
		zap.L().Warn("failed to resolve notification recipient",
			zap.String("user_id", n.UserID), zap.Error(err))
		return
	}
	if len(users) == 0 || users[0].Email == "" {
		zap.L().Warn("no email found for notification recipient", zap.String("user_id", n.UserID))
		return
	}

	if err := s.mailer.Send(ctx, token, users[0].Email, reminderMailSubject, n.Message); err != nil {
		zap.L().Error("failed to send notification mail",
			zap.String("notification_id", n.ID), zap.String("to", users[0].Email), zap.Error(err))
		return
	}

	if !persisted {
		return
	}
	sentAt := s.now()
	if err := s.notificationRepository.SetSentAt(ctx, n.ID, sentAt); err != nil {
		zap.L().Error("failed to stamp notification sent_at",
			zap.String("notification_id", n.ID), zap.Error(err))
	}
}
