package remote

import (
	"context"
	"errors"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

// TaskClient is how the notification and activity services see the task
// service.
type TaskClient struct {
	client
}

var _ ports.TaskDirectory = (*TaskClient)(nil)

func NewTaskClient(baseURL string, timeout time.Duration) *TaskClient {
	return &TaskClient{client: newClient("task", baseURL, timeout)}
}

type taskReminderPayload struct {
	ID         string `json:"id"`
	Name       string `json:"task_name"`
	DueDate    string `json:"due_date"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`
}

func (c *TaskClient) ListAllTasks(ctx context.Context) ([]domain.TaskReminderView, error) {
	var payload []taskReminderPayload
	if err := c.get(ctx, "", "/internal/all", &payload); err != nil {
		return nil, err
	}

	tasks := make([]domain.TaskReminderView, 0, len(payload))
	for _, t := range payload {
		tasks = append(tasks, domain.TaskReminderView{
			ID:         t.ID,
			Name:       t.Name,
			DueDate:    parseRemoteDate(t.DueDate),
			Status:     domain.TaskStatus(t.Status),
			AssignedTo: t.AssignedTo,
		})
	}
	return tasks, nil
}

type taskDetailPayload struct {
	ID        string `json:"id"`
	Name      string `json:"task_name"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	ProjectID string `json:"project_id"`
	DueDate   string `json:"due_date"`
	Progress  int    `json:"progress"`
}

func (c *TaskClient) GetTask(ctx context.Context, token, id string) (domain.TaskSummary, error) {
	var payload taskDetailPayload
	if err := c.get(ctx, token, "/"+id, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return domain.TaskSummary{}, domain.ErrTaskNotFound
		}
		return domain.TaskSummary{}, err
	}

	return domain.TaskSummary{
		ID:        payload.ID,
		Name:      payload.Name,
		Status:    domain.TaskStatus(payload.Status),
		Priority:  domain.TaskPriority(payload.Priority),
		ProjectID: payload.ProjectID,
		DueDate:   parseRemoteDate(payload.DueDate),
		Progress:  payload.Progress,
	}, nil
}

func (c *TaskClient) BatchTasks(ctx context.Context, ids []string) ([]domain.RelatedSummary, error) {
	var envelope batchEnvelope
	if err := c.get(ctx, "", batchPath(ids), &envelope); err != nil {
		return nil, err
	}
	return toSummaries(envelope.Data), nil
}
