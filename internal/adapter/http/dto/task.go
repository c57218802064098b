package dto

type UserItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type TaskItem struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	TaskName    string  `json:"task_name"`
	Description *string `json:"description,omitempty"`
	AssignedTo  string  `json:"assigned_to"`
	CreatedBy   string  `json:"created_by"`
	StartDate   *string `json:"start_date,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Progress    int     `json:"progress"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TaskDetailItem struct {
	TaskItem
	CreatedByUser  *UserItem `json:"created_by_user,omitempty"`
	AssignedToUser *UserItem `json:"assigned_to_user,omitempty"`
}

// TaskReminderItem is the lean shape served on the internal listing used
// by the reminder sweep. Dates are RFC3339 so downstream consumers keep
// the time component.
type TaskReminderItem struct {
	ID         string  `json:"id"`
	TaskName   string  `json:"task_name"`
	DueDate    *string `json:"due_date,omitempty"`
	Status     string  `json:"status"`
	AssignedTo string  `json:"assigned_to"`
}

type TaskStatItem struct {
	Status      string  `json:"status"`
	Count       int     `json:"count"`
	AvgProgress float64 `json:"avg_progress"`
}

type BatchItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BatchResponse struct {
	Success bool        `json:"success"`
	Data    []BatchItem `json:"data"`
}

type CreateTaskRequest struct {
	ProjectID   string  `json:"project_id" binding:"required"`
	TaskName    string  `json:"task_name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	AssignedTo  string  `json:"assigned_to" binding:"required"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" binding:"omitempty,oneof='To Do' 'In Progress' 'Review' 'Done'"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Progress    *int    `json:"progress" binding:"omitempty,gte=0,lte=100"`
}

type UpdateTaskRequest struct {
	TaskName    *string `json:"task_name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	AssignedTo  *string `json:"assigned_to"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" binding:"omitempty,oneof='To Do' 'In Progress' 'Review' 'Done'"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Progress    *int    `json:"progress" binding:"omitempty,gte=0,lte=100"`
}
