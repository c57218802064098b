package ports

import (
	"context"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	GetByID(ctx context.Context, id string) (domain.Task, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.TaskSummary, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]domain.Task, error)
	ListAll(ctx context.Context) ([]domain.TaskReminderView, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id string) error
	StatsByProject(ctx context.Context, projectID string) ([]domain.TaskStatusStat, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, token string, in domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, token, id string) (domain.TaskDetail, error)
	ListProjectTasks(ctx context.Context, projectID string) ([]domain.Task, error)
	ListUserTasks(ctx context.Context, userID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, token, id, callerID string, in domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, token, id, callerID string) error
	ProjectTaskStats(ctx context.Context, projectID string) ([]domain.TaskStatusStat, error)
	BatchTasks(ctx context.Context, ids []string) ([]domain.TaskSummary, error)
	ListAllTasks(ctx context.Context) ([]domain.TaskReminderView, error)
}
