package ports

import (
	"context"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) error
	GetByID(ctx context.Context, id string) (domain.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	SetSentAt(ctx context.Context, id string, sentAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type NotificationService interface {
	CreateNotification(ctx context.Context, in domain.CreateNotificationInput) (domain.Notification, error)
	ListUserNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	GetNotification(ctx context.Context, token, id string) (domain.NotificationDetail, error)
	MarkNotificationRead(ctx context.Context, id, callerID string) (domain.Notification, error)
	DeleteNotification(ctx context.Context, id, callerID string) error

	// SendMail runs the mail side-effect pipeline for a notification.
	// persisted tells it whether the record exists in storage and should
	// get its sent_at stamped on success. It never returns an error: all
	// failures are logged and swallowed.
	SendMail(ctx context.Context, token string, n domain.Notification, persisted bool)
}
