package ports

import (
	"context"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

// Directory ports cover the remote collaborator services. Every call has a
// bounded timeout and surfaces failures as *domain.RemoteError; retries are
// the caller's concern.

type ProjectDirectory interface {
	GetProject(ctx context.Context, token, id string) (domain.ProjectSnapshot, error)
	RecalcProgress(ctx context.Context, token, id string) error
	BatchProjects(ctx context.Context, ids []string) ([]domain.RelatedSummary, error)
}

type TeamDirectory interface {
	GetTeam(ctx context.Context, token, id string) (domain.TeamSnapshot, error)
	BatchTeams(ctx context.Context, ids []string) ([]domain.RelatedSummary, error)
}

type UserDirectory interface {
	GetUsersInfo(ctx context.Context, token string, ids []string) ([]domain.UserInfo, error)
}

type TaskDirectory interface {
	ListAllTasks(ctx context.Context) ([]domain.TaskReminderView, error)
	GetTask(ctx context.Context, token, id string) (domain.TaskSummary, error)
	BatchTasks(ctx context.Context, ids []string) ([]domain.RelatedSummary, error)
}

type Mailer interface {
	Send(ctx context.Context, token, to, subject, body string) error
}

type ActivityRecorder interface {
	Record(ctx context.Context, token string, in domain.ActivityEntryInput) error
}
