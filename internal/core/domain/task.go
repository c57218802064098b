package domain

import "time"

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusReview     TaskStatus = "Review"
	TaskStatusDone       TaskStatus = "Done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

type Task struct {
	ID          string
	ProjectID   string
	Name        string
	Description *string
	AssignedTo  string
	CreatedBy   string
	StartDate   *time.Time
	DueDate     *time.Time
	Status      TaskStatus
	Priority    TaskPriority
	Progress    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskDetail is a Task enriched with the creator/assignee user records
// resolved through the Auth collaborator. Either user may be nil when the
// lookup failed or returned no match.
type TaskDetail struct {
	Task
	CreatedByUser  *UserInfo
	AssignedToUser *UserInfo
}

// TaskSummary is the lean projection exposed to other services for
// reverse lookups (activity display names, notification detail).
type TaskSummary struct {
	ID         string
	Name       string
	Status     TaskStatus
	Priority   TaskPriority
	AssignedTo string
	ProjectID  string
	DueDate    *time.Time
	Progress   int
}

// TaskReminderView carries just the fields the reminder sweep inspects.
type TaskReminderView struct {
	ID         string
	Name       string
	DueDate    *time.Time
	Status     TaskStatus
	AssignedTo string
}

// TaskStatusStat is one bucket of the per-project aggregation query.
type TaskStatusStat struct {
	Status      TaskStatus
	Count       int
	AvgProgress float64
}

type CreateTaskInput struct {
	ProjectID   string
	Name        string
	Description *string
	AssignedTo  string
	CreatedBy   string
	StartDate   *time.Time
	DueDate     *time.Time
	Status      *TaskStatus
	Priority    *TaskPriority
	Progress    *int
}

// UpdateTaskInput carries a partial field set. The *Set flags distinguish
// "field absent" from "field explicitly set to null" for nullable fields.
type UpdateTaskInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	AssignedTo     *string
	StartDate      *time.Time
	StartDateSet   bool
	DueDate        *time.Time
	DueDateSet     bool
	Status         *TaskStatus
	Priority       *TaskPriority
	Progress       *int
}
