package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) GetByIDs(ctx context.Context, ids []string) ([]domain.TaskSummary, error) {
	args := m.Called(ctx, ids)

	var summaries []domain.TaskSummary
	if value := args.Get(0); value != nil {
		summaries = value.([]domain.TaskSummary)
	}
	return summaries, args.Error(1)
}

func (m *taskRepositoryMock) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListByAssignee(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListAll(ctx context.Context) ([]domain.TaskReminderView, error) {
	args := m.Called(ctx)

	var tasks []domain.TaskReminderView
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.TaskReminderView)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) StatsByProject(ctx context.Context, projectID string) ([]domain.TaskStatusStat, error) {
	args := m.Called(ctx, projectID)

	var stats []domain.TaskStatusStat
	if value := args.Get(0); value != nil {
		stats = value.([]domain.TaskStatusStat)
	}
	return stats, args.Error(1)
}

type projectDirectoryMock struct {
	mock.Mock
}

func (m *projectDirectoryMock) GetProject(ctx context.Context, token, id string) (domain.ProjectSnapshot, error) {
	args := m.Called(ctx, token, id)

	var project domain.ProjectSnapshot
	if value := args.Get(0); value != nil {
		project = value.(domain.ProjectSnapshot)
	}
	return project, args.Error(1)
}

func (m *projectDirectoryMock) RecalcProgress(ctx context.Context, token, id string) error {
	return m.Called(ctx, token, id).Error(0)
}

func (m *projectDirectoryMock) BatchProjects(ctx context.Context, ids []string) ([]domain.RelatedSummary, error) {
	args := m.Called(ctx, ids)

	var summaries []domain.RelatedSummary
	if value := args.Get(0); value != nil {
		summaries = value.([]domain.RelatedSummary)
	}
	return summaries, args.Error(1)
}

type teamDirectoryMock struct {
	mock.Mock
}

func (m *teamDirectoryMock) GetTeam(ctx context.Context, token, id string) (domain.TeamSnapshot, error) {
	args := m.Called(ctx, token, id)

	var team domain.TeamSnapshot
	if value := args.Get(0); value != nil {
		team = value.(domain.TeamSnapshot)
	}
	return team, args.Error(1)
}

func (m *teamDirectoryMock) BatchTeams(ctx context.Context, ids []string) ([]domain.RelatedSummary, error) {
	args := m.Called(ctx, ids)

	var summaries []domain.RelatedSummary
	if value := args.Get(0); value != nil {
		summaries = value.([]domain.RelatedSummary)
	}
	return summaries, args.Error(1)
}

type userDirectoryMock struct {
	mock.Mock
}

func (m *userDirectoryMock) GetUsersInfo(ctx context.Context, token string, ids []string) ([]domain.UserInfo, error) {
	args := m.Called(ctx, token, ids)

	var users []domain.UserInfo
	if value := args.Get(0); value != nil {
		users = value.([]domain.UserInfo)
	}
	return users, args.Error(1)
}

type activityRecorderMock struct {
	mock.Mock
}

func (m *activityRecorderMock) Record(ctx context.Context, token string, in domain.ActivityEntryInput) error {
	return m.Called(ctx, token, in).Error(0)
}

type taskServiceFixture struct {
	repo     *taskRepositoryMock
	projects *projectDirectoryMock
	teams    *teamDirectoryMock
	users    *userDirectoryMock
	recorder *activityRecorderMock
	service  *TaskService
}

func newTaskServiceFixture(now time.Time) *taskServiceFixture {
	f := &taskServiceFixture{
		repo:     new(taskRepositoryMock),
		projects: new(projectDirectoryMock),
		teams:    new(teamDirectoryMock),
		users:    new(userDirectoryMock),
		recorder: new(activityRecorderMock),
	}
	f.service = NewTaskService(f.repo, f.projects, f.teams, f.users, NewActivityLogger(f.recorder))
	f.service.now = func() time.Time { return now }
	return f
}

func (f *taskServiceFixture) assertExpectations(t *testing.T) {
	f.repo.AssertExpectations(t)
	f.projects.AssertExpectations(t)
	f.teams.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.recorder.AssertExpectations(t)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	value := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &value
}

func strPtr(s string) *string { return &s }

func progressPtr(v int) *int { return &v }

func taskStatusPtr(s domain.TaskStatus) *domain.TaskStatus { return &s }

func memberTeam(teamID string, userIDs ...string) domain.TeamSnapshot {
	team := domain.TeamSnapshot{ID: teamID, Name: "Core"}
	for _, id := range userIDs {
		team.Members = append(team.Members, domain.TeamMember{UserID: id, Role: "member"})
	}
	return team
}

func TestTaskService_CreateTask_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	f := newTaskServiceFixture(now)

	project := domain.ProjectSnapshot{ID: "p1", TeamID: "t1"}
	f.projects.On("GetProject", mock.Anything, "Bearer tok", "p1").Return(project, nil).Once()
	f.teams.On("GetTeam", mock.Anything, "Bearer tok", "t1").Return(memberTeam("t1", "u2"), nil).Once()
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.ID != "" &&
			task.Status == domain.TaskStatusToDo &&
			task.Progress == 0 &&
			task.Priority == domain.TaskPriorityMedium &&
			task.CreatedAt.Equal(now)
	})).Return(nil).Once()
	f.recorder.On("Record", mock.Anything, "Bearer tok", mock.MatchedBy(func(in domain.ActivityEntryInput) bool {
		return in.UserID == "u1" && in.RelatedType == domain.RelatedTypeTask && in.Action == "Created task: Ship it"
	})).Return(nil).Once()
	f.projects.On("RecalcProgress", mock.Anything, "Bearer tok", "p1").Return(nil).Once()

	task, err := f.service.CreateTask(context.Background(), "Bearer tok", domain.CreateTaskInput{
		ProjectID:  "p1",
		Name:       "Ship it",
		AssignedTo: "u2",
		CreatedBy:  "u1",
	})

	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusToDo, task.Status)
	require.Equal(t, 0, task.Progress)
	require.Equal(t, domain.TaskPriorityMedium, task.Priority)
	require.NotEmpty(t, task.ID)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_DoneStatusForcesFullProgress(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	f := newTaskServiceFixture(now)

	project := domain.ProjectSnapshot{ID: "p1", TeamID: "t1"}
	f.projects.On("GetProject", mock.Anything, "", "p1").Return(project, nil).Once()
	f.teams.On("GetTeam", mock.Anything, "", "t1").Return(memberTeam("t1", "u2"), nil).Once()
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Status == domain.TaskStatusDone && task.Progress == 100
	})).Return(nil).Once()
	f.recorder.On("Record", mock.Anything, "", mock.Anything).Return(nil).Once()
	f.projects.On("RecalcProgress", mock.Anything, "", "p1").Return(nil).Once()

	task, err := f.service.CreateTask(context.Background(), "", domain.CreateTaskInput{
		ProjectID:  "p1",
		Name:       "Already done",
		AssignedTo: "u2",
		CreatedBy:  "u1",
		Status:     taskStatusPtr(domain.TaskStatusDone),
		Progress:   progressPtr(10),
	})

	require.NoError(t, err)
	require.Equal(t, 100, task.Progress)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_ProjectWithoutTeam(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	f.projects.On("GetProject", mock.Anything, "", "p1").Return(domain.ProjectSnapshot{ID: "p1"}, nil).Once()

	_, err := f.service.CreateTask(context.Background(), "", domain.CreateTaskInput{
		ProjectID:  "p1",
		Name:       "Orphan",
		AssignedTo: "u2",
		CreatedBy:  "u1",
	})

	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_AssigneeNotTeamMember(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	project := domain.ProjectSnapshot{ID: "p1", TeamID: "t1"}
	f.projects.On("GetProject", mock.Anything, "", "p1").Return(project, nil).Once()
	f.teams.On("GetTeam", mock.Anything, "", "t1").Return(memberTeam("t1", "u3"), nil).Once()

	_, err := f.service.CreateTask(context.Background(), "", domain.CreateTaskInput{
		ProjectID:  "p1",
		Name:       "Stray",
		AssignedTo: "u2",
		CreatedBy:  "u1",
	})

	require.ErrorIs(t, err, domain.ErrAssigneeNotTeamMember)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestTaskService_CreateTask_DateValidation(t *testing.T) {
	tests := []struct {
		name    string
		project domain.ProjectSnapshot
		start   *time.Time
		due     *time.Time
		wantErr error
	}{
		{
			name:    "due before start",
			project: domain.ProjectSnapshot{ID: "p1", TeamID: "t1", StartDate: datePtr(2026, 1, 1), EndDate: datePtr(2026, 12, 31)},
			start:   datePtr(2026, 6, 10),
			due:     datePtr(2026, 6, 1),
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "start before project start",
			project: domain.ProjectSnapshot{ID: "p1", TeamID: "t1", StartDate: datePtr(2026, 6, 1), EndDate: datePtr(2026, 12, 31)},
			start:   datePtr(2026, 5, 20),
			wantErr: domain.ErrTaskStartBeforeProjectStart,
		},
		{
			name:    "due after project end",
			project: domain.ProjectSnapshot{ID: "p1", TeamID: "t1", StartDate: datePtr(2026, 1, 1), EndDate: datePtr(2026, 6, 30)},
			due:     datePtr(2026, 7, 15),
			wantErr: domain.ErrTaskDueAfterProjectEnd,
		},
		{
			name:    "project missing start date",
			project: domain.ProjectSnapshot{ID: "p1", TeamID: "t1", EndDate: datePtr(2026, 12, 31)},
			start:   datePtr(2026, 6, 10),
			wantErr: domain.ErrProjectMissingStartDate,
		},
		{
			name:    "project missing end date",
			project: domain.ProjectSnapshot{ID: "p1", TeamID: "t1", StartDate: datePtr(2026, 1, 1)},
			due:     datePtr(2026, 6, 10),
			wantErr: domain.ErrProjectMissingEndDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTaskServiceFixture(time.Now())
			f.projects.On("GetProject", mock.Anything, "", "p1").Return(tt.project, nil).Once()

			_, err := f.service.CreateTask(context.Background(), "", domain.CreateTaskInput{
				ProjectID:  "p1",
				Name:       "Dated",
				AssignedTo: "u2",
				CreatedBy:  "u1",
				StartDate:  tt.start,
				DueDate:    tt.due,
			})

			require.ErrorIs(t, err, tt.wantErr)
			f.teams.AssertNotCalled(t, "GetTeam", mock.Anything, mock.Anything, mock.Anything)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestTaskService_CreateTask_ProjectDirectoryDown(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	remoteErr := &domain.RemoteError{Service: "project", Err: errors.New("connection refused")}
	f.projects.On("GetProject", mock.Anything, "", "p1").Return(nil, remoteErr).Once()

	_, err := f.service.CreateTask(context.Background(), "", domain.CreateTaskInput{
		ProjectID:  "p1",
		Name:       "Unreachable",
		AssignedTo: "u2",
		CreatedBy:  "u1",
	})

	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_CreateTask_RecalcFailureIsSwallowed(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	project := domain.ProjectSnapshot{ID: "p1", TeamID: "t1"}
	f.projects.On("GetProject", mock.Anything, "", "p1").Return(project, nil).Once()
	f.teams.On("GetTeam", mock.Anything, "", "t1").Return(memberTeam("t1", "u2"), nil).Once()
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.recorder.On("Record", mock.Anything, "", mock.Anything).Return(errors.New("activity down")).Once()
	f.projects.On("RecalcProgress", mock.Anything, "", "p1").
		Return(&domain.RemoteError{Service: "project", Err: errors.New("boom")}).Once()

	task, err := f.service.CreateTask(context.Background(), "", domain.CreateTaskInput{
		ProjectID:  "p1",
		Name:       "Resilient",
		AssignedTo: "u2",
		CreatedBy:  "u1",
	})

	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTask_ForbiddenForOutsider(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	stored := domain.Task{ID: "task1", ProjectID: "p1", CreatedBy: "u1", AssignedTo: "u2"}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()

	_, err := f.service.UpdateTask(context.Background(), "", "task1", "u9", domain.UpdateTaskInput{
		Name: strPtr("Hijacked"),
	})

	require.ErrorIs(t, err, domain.ErrForbidden)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.projects.AssertNotCalled(t, "GetProject", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_UpdateTask_AssigneeCanEdit(t *testing.T) {
	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	f := newTaskServiceFixture(now)

	stored := domain.Task{
		ID: "task1", ProjectID: "p1", Name: "Old name",
		CreatedBy: "u1", AssignedTo: "u2",
		Status: domain.TaskStatusInProgress, Progress: 40,
	}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()
	f.projects.On("GetProject", mock.Anything, "", "p1").Return(domain.ProjectSnapshot{ID: "p1", TeamID: "t1"}, nil).Once()
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Name == "New name" && task.Progress == 40 && task.UpdatedAt.Equal(now)
	})).Return(nil).Once()
	f.recorder.On("Record", mock.Anything, "", mock.MatchedBy(func(in domain.ActivityEntryInput) bool {
		return in.UserID == "u2" && in.Action == "Updated task: New name (In Progress)"
	})).Return(nil).Once()

	task, err := f.service.UpdateTask(context.Background(), "", "task1", "u2", domain.UpdateTaskInput{
		Name: strPtr("New name"),
	})

	require.NoError(t, err)
	require.Equal(t, "New name", task.Name)
	// Progress did not move, so the project aggregate is left alone.
	f.projects.AssertNotCalled(t, "RecalcProgress", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTask_ProgressChangeTriggersRecalcOnce(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	stored := domain.Task{
		ID: "task1", ProjectID: "p1", Name: "Ship it",
		CreatedBy: "u1", AssignedTo: "u2",
		Status: domain.TaskStatusInProgress, Progress: 40,
	}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()
	f.projects.On("GetProject", mock.Anything, "", "p1").Return(domain.ProjectSnapshot{ID: "p1", TeamID: "t1"}, nil).Once()
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.Status == domain.TaskStatusDone && task.Progress == 100
	})).Return(nil).Once()
	f.recorder.On("Record", mock.Anything, "", mock.Anything).Return(nil).Once()
	f.projects.On("RecalcProgress", mock.Anything, "", "p1").Return(nil).Once()

	task, err := f.service.UpdateTask(context.Background(), "", "task1", "u1", domain.UpdateTaskInput{
		Progress: progressPtr(100),
	})

	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusDone, task.Status)
	f.projects.AssertNumberOfCalls(t, "RecalcProgress", 1)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTask_ReassignChecksMembership(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	stored := domain.Task{ID: "task1", ProjectID: "p1", Name: "Ship it", CreatedBy: "u1", AssignedTo: "u2"}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()
	f.projects.On("GetProject", mock.Anything, "", "p1").Return(domain.ProjectSnapshot{ID: "p1", TeamID: "t1"}, nil).Once()
	f.teams.On("GetTeam", mock.Anything, "", "t1").Return(memberTeam("t1", "u2"), nil).Once()

	_, err := f.service.UpdateTask(context.Background(), "", "task1", "u1", domain.UpdateTaskInput{
		AssignedTo: strPtr("u9"),
	})

	require.ErrorIs(t, err, domain.ErrAssigneeNotTeamMember)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestTaskService_UpdateTask_MergedDatesAreValidated(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	// Stored start is June 10; moving only the due date before it must fail.
	stored := domain.Task{
		ID: "task1", ProjectID: "p1", Name: "Ship it",
		CreatedBy: "u1", AssignedTo: "u2",
		StartDate: datePtr(2026, 6, 10),
	}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()
	f.projects.On("GetProject", mock.Anything, "", "p1").Return(domain.ProjectSnapshot{
		ID: "p1", TeamID: "t1",
		StartDate: datePtr(2026, 1, 1), EndDate: datePtr(2026, 12, 31),
	}, nil).Once()

	_, err := f.service.UpdateTask(context.Background(), "", "task1", "u1", domain.UpdateTaskInput{
		DueDate:    datePtr(2026, 6, 1),
		DueDateSet: true,
	})

	require.ErrorIs(t, err, domain.ErrInvalidDateRange)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_DeleteTask_CreatorOnly(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	stored := domain.Task{ID: "task1", ProjectID: "p1", Name: "Ship it", CreatedBy: "u1", AssignedTo: "u2"}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()

	err := f.service.DeleteTask(context.Background(), "", "task1", "u2")

	require.ErrorIs(t, err, domain.ErrForbidden)
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTaskService_DeleteTask_Success(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	stored := domain.Task{ID: "task1", ProjectID: "p1", Name: "Ship it", CreatedBy: "u1", AssignedTo: "u2"}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()
	f.recorder.On("Record", mock.Anything, "", mock.MatchedBy(func(in domain.ActivityEntryInput) bool {
		return in.Action == "Deleted task: Ship it"
	})).Return(nil).Once()
	f.repo.On("Delete", mock.Anything, "task1").Return(nil).Once()
	f.projects.On("RecalcProgress", mock.Anything, "", "p1").Return(nil).Once()

	err := f.service.DeleteTask(context.Background(), "", "task1", "u1")

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestTaskService_GetTask_ResolvesUsers(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	stored := domain.Task{ID: "task1", ProjectID: "p1", Name: "Ship it", CreatedBy: "u1", AssignedTo: "u2"}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()
	f.users.On("GetUsersInfo", mock.Anything, "", []string{"u1", "u2"}).Return([]domain.UserInfo{
		{ID: "u1", Name: "An", Email: "an@example.com"},
		{ID: "u2", Name: "Binh", Email: "binh@example.com"},
	}, nil).Once()

	detail, err := f.service.GetTask(context.Background(), "", "task1")

	require.NoError(t, err)
	require.NotNil(t, detail.CreatedByUser)
	require.Equal(t, "An", detail.CreatedByUser.Name)
	require.NotNil(t, detail.AssignedToUser)
	require.Equal(t, "Binh", detail.AssignedToUser.Name)
	f.assertExpectations(t)
}

func TestTaskService_GetTask_SelfAssignedResolvesBothUsers(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	stored := domain.Task{ID: "task1", ProjectID: "p1", Name: "Ship it", CreatedBy: "u1", AssignedTo: "u1"}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()
	f.users.On("GetUsersInfo", mock.Anything, "", []string{"u1"}).Return([]domain.UserInfo{
		{ID: "u1", Name: "An", Email: "an@example.com"},
	}, nil).Once()

	detail, err := f.service.GetTask(context.Background(), "", "task1")

	require.NoError(t, err)
	require.NotNil(t, detail.CreatedByUser)
	require.NotNil(t, detail.AssignedToUser)
	require.Equal(t, "An", detail.AssignedToUser.Name)
	f.assertExpectations(t)
}

func TestTaskService_GetTask_UserLookupFailureDegrades(t *testing.T) {
	f := newTaskServiceFixture(time.Now())

	stored := domain.Task{ID: "task1", ProjectID: "p1", Name: "Ship it", CreatedBy: "u1", AssignedTo: "u2"}
	f.repo.On("GetByID", mock.Anything, "task1").Return(stored, nil).Once()
	f.users.On("GetUsersInfo", mock.Anything, "", []string{"u1", "u2"}).
		Return(nil, &domain.RemoteError{Service: "auth", Err: errors.New("timeout")}).Once()

	detail, err := f.service.GetTask(context.Background(), "", "task1")

	require.NoError(t, err)
	require.Equal(t, "task1", detail.ID)
	require.Nil(t, detail.CreatedByUser)
	require.Nil(t, detail.AssignedToUser)
	f.assertExpectations(t)
}
