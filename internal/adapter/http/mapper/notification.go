package mapper

import (
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/dto"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	item := dto.NotificationItem{
		ID:        notification.ID,
		UserID:    notification.UserID,
		TaskID:    notification.TaskID,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		UpdatedAt: notification.UpdatedAt.Format(time.RFC3339),
	}

	if notification.SentAt != nil {
		value := notification.SentAt.Format(time.RFC3339)
		item.SentAt = &value
	}

	return item
}

func ToNotificationDetailItem(detail domain.NotificationDetail) dto.NotificationDetailItem {
	item := dto.NotificationDetailItem{
		NotificationItem: ToNotificationItem(detail.Notification),
	}

	if detail.Task != nil {
		task := &dto.NotificationTaskItem{
			ID:       detail.Task.ID,
			TaskName: detail.Task.Name,
			Status:   string(detail.Task.Status),
		}
		if detail.Task.DueDate != nil {
			value := detail.Task.DueDate.Format("2006-01-02")
			task.DueDate = &value
		}
		item.Task = task
	}

	return item
}
