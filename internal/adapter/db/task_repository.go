package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

const insertTaskQuery = `
INSERT INTO tasks
  (id, project_id, task_name, description, assigned_to, created_by,
   start_date, due_date, status, priority, progress, created_at, updated_at)
VALUES
  (:id, :project_id, :task_name, :description, :assigned_to, :created_by,
   :start_date, :due_date, :status, :priority, :progress, :created_at, :updated_at);
`

const updateTaskQuery = `
UPDATE tasks SET
  task_name = :task_name,
  description = :description,
  assigned_to = :assigned_to,
  start_date = :start_date,
  due_date = :due_date,
  status = :status,
  priority = :priority,
  progress = :progress,
  updated_at = :updated_at
WHERE id = :id;
`

const selectTaskByIDQuery = `SELECT * FROM tasks WHERE id = ?;`

const selectTasksByProjectQuery = `SELECT * FROM tasks WHERE project_id = ? ORDER BY created_at DESC;`

const selectTasksByAssigneeQuery = `SELECT * FROM tasks WHERE assigned_to = ? ORDER BY due_date IS NULL, due_date ASC;`

const selectAllTasksLeanQuery = `SELECT id, task_name, due_date, status, assigned_to FROM tasks;`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`

const taskStatsQuery = `
SELECT status, COUNT(*) AS count, AVG(progress) AS avg_progress
FROM tasks
WHERE project_id = ?
GROUP BY status;
`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID          string         `db:"id"`
	ProjectID   string         `db:"project_id"`
	Name        string         `db:"task_name"`
	Description sql.NullString `db:"description"`
	AssignedTo  string         `db:"assigned_to"`
	CreatedBy   string         `db:"created_by"`
	StartDate   sql.NullTime   `db:"start_date"`
	DueDate     sql.NullTime   `db:"due_date"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	Progress    int            `db:"progress"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToRow(task))
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.TaskSummary, error) {
	if len(ids) == 0 {
		return []domain.TaskSummary{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM tasks WHERE id IN (?);`, ids)
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	summaries := make([]domain.TaskSummary, 0, len(rows))
	for _, row := range rows {
		task := mapTaskRowToDomainTask(row)
		summaries = append(summaries, domain.TaskSummary{
			ID:         task.ID,
			Name:       task.Name,
			Status:     task.Status,
			Priority:   task.Priority,
			AssignedTo: task.AssignedTo,
			ProjectID:  task.ProjectID,
			DueDate:    task.DueDate,
			Progress:   task.Progress,
		})
	}
	return summaries, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	return r.listTasks(ctx, selectTasksByProjectQuery, projectID)
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.listTasks(ctx, selectTasksByAssigneeQuery, userID)
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]domain.TaskReminderView, error) {
	var rows []struct {
		ID         string       `db:"id"`
		Name       string       `db:"task_name"`
		DueDate    sql.NullTime `db:"due_date"`
		Status     string       `db:"status"`
		AssignedTo string       `db:"assigned_to"`
	}
	if err := r.db.SelectContext(ctx, &rows, selectAllTasksLeanQuery); err != nil {
		return nil, err
	}

	tasks := make([]domain.TaskReminderView, 0, len(rows))
	for _, row := range rows {
		view := domain.TaskReminderView{
			ID:         row.ID,
			Name:       row.Name,
			Status:     domain.TaskStatus(row.Status),
			AssignedTo: row.AssignedTo,
		}
		if row.DueDate.Valid {
			value := row.DueDate.Time
			view.DueDate = &value
		}
		tasks = append(tasks, view)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	result, err := r.db.NamedExecContext(ctx, updateTaskQuery, mapDomainTaskToRow(task))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// MySQL reports 0 for a no-op update as well; confirm existence.
		var exists int
		if err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM tasks WHERE id = ?;`, task.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTaskNotFound
			}
			return err
		}
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) StatsByProject(ctx context.Context, projectID string) ([]domain.TaskStatusStat, error) {
	var rows []struct {
		Status      string  `db:"status"`
		Count       int     `db:"count"`
		AvgProgress float64 `db:"avg_progress"`
	}
	if err := r.db.SelectContext(ctx, &rows, taskStatsQuery, projectID); err != nil {
		return nil, err
	}

	stats := make([]domain.TaskStatusStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.TaskStatusStat{
			Status:      domain.TaskStatus(row.Status),
			Count:       row.Count,
			AvgProgress: row.AvgProgress,
		})
	}
	return stats, nil
}

func (r *TaskRepository) listTasks(ctx context.Context, query string, arg any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		ProjectID:  row.ProjectID,
		Name:       row.Name,
		AssignedTo: row.AssignedTo,
		CreatedBy:  row.CreatedBy,
		Status:     domain.TaskStatus(row.Status),
		Priority:   domain.TaskPriority(row.Priority),
		Progress:   row.Progress,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.StartDate.Valid {
		value := row.StartDate.Time
		task.StartDate = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func mapDomainTaskToRow(task domain.Task) taskRow {
	row := taskRow{
		ID:         task.ID,
		ProjectID:  task.ProjectID,
		Name:       strings.TrimSpace(task.Name),
		AssignedTo: task.AssignedTo,
		CreatedBy:  task.CreatedBy,
		Status:     string(task.Status),
		Priority:   string(task.Priority),
		Progress:   task.Progress,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}

	if task.Description != nil {
		row.Description = sql.NullString{String: *task.Description, Valid: true}
	}
	if task.StartDate != nil {
		row.StartDate = sql.NullTime{Time: *task.StartDate, Valid: true}
	}
	if task.DueDate != nil {
		row.DueDate = sql.NullTime{Time: *task.DueDate, Valid: true}
	}

	return row
}
