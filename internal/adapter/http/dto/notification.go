package dto

type NotificationItem struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	TaskID    string  `json:"task_id"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"is_read"`
	SentAt    *string `json:"sent_at,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type NotificationTaskItem struct {
	ID       string  `json:"id"`
	TaskName string  `json:"task_name"`
	DueDate  *string `json:"due_date,omitempty"`
	Status   string  `json:"status"`
}

type NotificationDetailItem struct {
	NotificationItem
	Task *NotificationTaskItem `json:"task,omitempty"`
}

type CreateNotificationRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	TaskID  string `json:"task_id" binding:"required"`
	Message string `json:"message" binding:"required,max=1000"`
}

// SendNotificationRequest creates a notification and immediately pushes it
// by email in one call.
type SendNotificationRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	TaskID  string `json:"task_id" binding:"required"`
	Message string `json:"message" binding:"required,max=1000"`
}
