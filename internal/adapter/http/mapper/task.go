package mapper

import (
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/dto"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:         task.ID,
		ProjectID:  task.ProjectID,
		TaskName:   task.Name,
		AssignedTo: task.AssignedTo,
		CreatedBy:  task.CreatedBy,
		Status:     string(task.Status),
		Priority:   string(task.Priority),
		Progress:   task.Progress,
		CreatedAt:  task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	item.StartDate = formatDate(task.StartDate)
	item.DueDate = formatDate(task.DueDate)

	return item
}

func ToTaskDetailItem(detail domain.TaskDetail) dto.TaskDetailItem {
	return dto.TaskDetailItem{
		TaskItem:       ToTaskItem(detail.Task),
		CreatedByUser:  toUserItem(detail.CreatedByUser),
		AssignedToUser: toUserItem(detail.AssignedToUser),
	}
}

func ToTaskReminderItems(tasks []domain.TaskReminderView) []dto.TaskReminderItem {
	items := make([]dto.TaskReminderItem, 0, len(tasks))
	for _, task := range tasks {
		item := dto.TaskReminderItem{
			ID:         task.ID,
			TaskName:   task.Name,
			Status:     string(task.Status),
			AssignedTo: task.AssignedTo,
		}
		if task.DueDate != nil {
			value := task.DueDate.Format(time.RFC3339)
			item.DueDate = &value
		}
		items = append(items, item)
	}
	return items
}

func ToTaskStatItems(stats []domain.TaskStatusStat) []dto.TaskStatItem {
	items := make([]dto.TaskStatItem, 0, len(stats))
	for _, stat := range stats {
		items = append(items, dto.TaskStatItem{
			Status:      string(stat.Status),
			Count:       stat.Count,
			AvgProgress: stat.AvgProgress,
		})
	}
	return items
}

func ToTaskBatchResponse(summaries []domain.TaskSummary) dto.BatchResponse {
	items := make([]dto.BatchItem, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, dto.BatchItem{ID: summary.ID, Name: summary.Name})
	}
	return dto.BatchResponse{Success: true, Data: items}
}

func toUserItem(user *domain.UserInfo) *dto.UserItem {
	if user == nil {
		return nil
	}
	return &dto.UserItem{ID: user.ID, Name: user.Name, Email: user.Email}
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format("2006-01-02")
	return &formatted
}
