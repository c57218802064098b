package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

// TaskService owns the Task lifecycle. It is the sole writer of the tasks
// collection; Project and Team are read-only collaborators consulted to
// validate mutations before anything is persisted.
type TaskService struct {
	taskRepository ports.TaskRepository
	projects       ports.ProjectDirectory
	teams          ports.TeamDirectory
	users          ports.UserDirectory
	activity       *ActivityLogger

	now func() time.Time
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	projects ports.ProjectDirectory,
	teams ports.TeamDirectory,
	users ports.UserDirectory,
	activity *ActivityLogger,
) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		projects:       projects,
		teams:          teams,
		users:          users,
		activity:       activity,
		now:            time.Now,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, token string, in domain.CreateTaskInput) (domain.Task, error) {
	project, err := s.projects.GetProject(ctx, token, in.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}
	if project.TeamID == "" {
		return domain.Task{}, domain.ErrProjectNotFound
	}

	if err := validateTaskDates(in.StartDate, in.DueDate, project); err != nil {
		return domain.Task{}, err
	}

	team, err := s.teams.GetTeam(ctx, token, project.TeamID)
	if err != nil {
		return domain.Task{}, err
	}
	if !team.HasMember(in.AssignedTo) {
		return domain.Task{}, domain.ErrAssigneeNotTeamMember
	}

	status, progress := domain.ResolveStatusProgress(domain.TaskStatusToDo, 0, in.Status, in.Progress)

	priority := domain.TaskPriorityMedium
	if in.Priority != nil {
		priority = *in.Priority
	}

	now := s.now()
	task := domain.Task{
		ID:          uuid.NewString(),
		ProjectID:   in.ProjectID,
		Name:        in.Name,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   in.CreatedBy,
		StartDate:   in.StartDate,
		DueDate:     in.DueDate,
		Status:      status,
		Priority:    priority,
		Progress:    progress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}

	s.activity.TaskCreated(ctx, token, in.CreatedBy, task.ID, task.Name)
	s.triggerRecalc(ctx, token, in.ProjectID)

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, token, id string) (domain.TaskDetail, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.TaskDetail{}, err
	}

	detail := domain.TaskDetail{Task: task}

	ids := make([]string, 0, 2)
	if task.CreatedBy != "" {
		ids = append(ids, task.CreatedBy)
	}
	if task.AssignedTo != "" && task.AssignedTo != task.CreatedBy {
		ids = append(ids, task.AssignedTo)
	}
	if len(ids) == 0 {
		return detail, nil
	}

	// Missing user info degrades to nil, it never fails the read.
	users, err := s.users.GetUsersInfo(ctx, token, ids)
	if err != nil {
		zap.L().Warn("failed to resolve task users", zap.String("task_id", id), zap.Error(err))
		return detail, nil
	}
	// Resolve both fields independently; creator and assignee may be the
	// same user.
	for i := range users {
		if users[i].ID == task.CreatedBy {
			detail.CreatedByUser = &users[i]
		}
		if users[i].ID == task.AssignedTo {
			detail.AssignedToUser = &users[i]
		}
	}

	return detail, nil
}

func (s *TaskService) ListProjectTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	return s.taskRepository.ListByProject(ctx, projectID)
}

func (s *TaskService) ListUserTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.taskRepository.ListByAssignee(ctx, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, token, id, callerID string, in domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if task.CreatedBy != callerID && task.AssignedTo != callerID {
		return domain.Task{}, domain.ErrForbidden
	}

	project, err := s.projects.GetProject(ctx, token, task.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}

	// Validation runs against the union of supplied fields and prior values.
	newStart := task.StartDate
	if in.StartDateSet {
		newStart = in.StartDate
	}
	newDue := task.DueDate
	if in.DueDateSet {
		newDue = in.DueDate
	}
	if err := validateTaskDates(newStart, newDue, project); err != nil {
		return domain.Task{}, err
	}

	if in.AssignedTo != nil && *in.AssignedTo != task.AssignedTo {
		if project.TeamID == "" {
			return domain.Task{}, domain.ErrProjectNotFound
		}
		team, err := s.teams.GetTeam(ctx, token, project.TeamID)
		if err != nil {
			return domain.Task{}, err
		}
		if !team.HasMember(*in.AssignedTo) {
			return domain.Task{}, domain.ErrAssigneeNotTeamMember
		}
		task.AssignedTo = *in.AssignedTo
	}

	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.DescriptionSet {
		task.Description = in.Description
	}
	if in.StartDateSet {
		task.StartDate = in.StartDate
	}
	if in.DueDateSet {
		task.DueDate = in.DueDate
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}

	oldProgress := task.Progress
	task.Status, task.Progress = domain.ResolveStatusProgress(task.Status, task.Progress, in.Status, in.Progress)
	task.UpdatedAt = s.now()

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	s.activity.TaskUpdated(ctx, token, callerID, task.ID, task.Name, task.Status)

	// Progress is a derived project aggregate; only poke it when the
	// persisted value actually moved.
	if task.Progress != oldProgress {
		s.triggerRecalc(ctx, token, task.ProjectID)
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, token, id, callerID string) error {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if task.CreatedBy != callerID {
		return domain.ErrForbidden
	}

	// Name is captured before the record goes away.
	s.activity.TaskDeleted(ctx, token, callerID, task.ID, task.Name)

	if err := s.taskRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.triggerRecalc(ctx, token, task.ProjectID)
	return nil
}

func (s *TaskService) ProjectTaskStats(ctx context.Context, projectID string) ([]domain.TaskStatusStat, error) {
	return s.taskRepository.StatsByProject(ctx, projectID)
}

func (s *TaskService) BatchTasks(ctx context.Context, ids []string) ([]domain.TaskSummary, error) {
	if len(ids) == 0 {
		return []domain.TaskSummary{}, nil
	}
	return s.taskRepository.GetByIDs(ctx, ids)
}

func (s *TaskService) ListAllTasks(ctx context.Context) ([]domain.TaskReminderView, error) {
	return s.taskRepository.ListAll(ctx)
}

// triggerRecalc asks the Project collaborator to refresh its aggregate
// progress. The aggregate is eventually consistent; a failed refresh must
// never fail the task mutation that caused it.
func (s *TaskService) triggerRecalc(ctx context.Context, token, projectID string) {
	if err := s.projects.RecalcProgress(ctx, token, projectID); err != nil {
		zap.L().Warn("failed to trigger project progress recalculation",
			zap.String("project_id", projectID), zap.Error(err))
	}
}

func validateTaskDates(start, due *time.Time, project domain.ProjectSnapshot) error {
	if start != nil && due != nil && start.After(*due) {
		return domain.ErrInvalidDateRange
	}
	if start != nil && project.StartDate != nil && start.Before(*project.StartDate) {
		return domain.ErrTaskStartBeforeProjectStart
	}
	if due != nil && project.EndDate != nil && due.After(*project.EndDate) {
		return domain.ErrTaskDueAfterProjectEnd
	}
	if start != nil && project.StartDate == nil {
		return domain.ErrProjectMissingStartDate
	}
	if due != nil && project.EndDate == nil {
		return domain.ErrProjectMissingEndDate
	}
	return nil
}
