package domain

import "time"

type Notification struct {
	ID        string
	UserID    string
	TaskID    string
	Message   string
	IsRead    bool
	SentAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotificationDetail is a Notification enriched with the referenced task,
// nil when the Task collaborator could not resolve it.
type NotificationDetail struct {
	Notification
	Task *TaskSummary
}

type CreateNotificationInput struct {
	UserID  string
	TaskID  string
	Message string
}
