package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

func TestProjectClient_GetProject(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"_id": "p1",
			"team_id": "t1",
			"project_name": "Website revamp",
			"start_date": "2026-01-01T00:00:00Z",
			"end_date": "2026-12-31",
			"progress": 35
		}`))
	}))
	defer server.Close()

	client := NewProjectClient(server.URL, time.Second)
	project, err := client.GetProject(context.Background(), "Bearer tok", "p1")

	require.NoError(t, err)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "p1", project.ID)
	require.Equal(t, "t1", project.TeamID)
	require.Equal(t, "Website revamp", project.Name)
	require.NotNil(t, project.StartDate)
	require.Equal(t, 2026, project.StartDate.Year())
	require.NotNil(t, project.EndDate)
	require.Equal(t, time.December, project.EndDate.Month())
	require.Equal(t, 35, project.Progress)
}

func TestProjectClient_GetProject_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewProjectClient(server.URL, time.Second)
	_, err := client.GetProject(context.Background(), "", "missing")

	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectClient_GetProject_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewProjectClient(server.URL, time.Second)
	_, err := client.GetProject(context.Background(), "", "p1")

	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, "project", remoteErr.Service)
}

func TestProjectClient_GetProject_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewProjectClient(server.URL, 20*time.Millisecond)
	_, err := client.GetProject(context.Background(), "", "p1")

	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestProjectClient_RecalcProgress(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewProjectClient(server.URL, time.Second)
	err := client.RecalcProgress(context.Background(), "Bearer tok", "p1")

	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/p1/recalc-progress", gotPath)
}

func TestProjectClient_BatchProjects_FieldVariants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/batch", r.URL.Path)
		require.Equal(t, "p1,p2", r.URL.Query().Get("ids"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"_id": "p1", "project_name": "Alpha"},
				{"id": "p2", "name": "Beta"}
			]
		}`))
	}))
	defer server.Close()

	client := NewProjectClient(server.URL, time.Second)
	summaries, err := client.BatchProjects(context.Background(), []string{"p1", "p2"})

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, domain.RelatedSummary{ID: "p1", Name: "Alpha"}, summaries[0])
	require.Equal(t, domain.RelatedSummary{ID: "p2", Name: "Beta"}, summaries[1])
}

func TestTeamClient_GetTeam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/t1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"team": {"_id": "t1", "team_name": "Core"},
			"members": [
				{"user_id": "u1", "role": "leader"},
				{"user_id": "u2", "role": "member"}
			]
		}`))
	}))
	defer server.Close()

	client := NewTeamClient(server.URL, time.Second)
	team, err := client.GetTeam(context.Background(), "", "t1")

	require.NoError(t, err)
	require.Equal(t, "t1", team.ID)
	require.Equal(t, "Core", team.Name)
	require.True(t, team.HasMember("u2"))
	require.False(t, team.HasMember("u9"))
}

func TestTeamClient_GetTeam_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTeamClient(server.URL, time.Second)
	_, err := client.GetTeam(context.Background(), "", "missing")

	require.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestAuthClient_GetUsersInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/info", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"_id": "u1", "name": "An", "email": "an@example.com"},
			{"id": "u2", "name": "Binh", "email": "binh@example.com"}
		]`))
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, time.Second)
	users, err := client.GetUsersInfo(context.Background(), "Bearer tok", []string{"u1", "u2"})

	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, domain.UserInfo{ID: "u1", Name: "An", Email: "an@example.com"}, users[0])
	require.Equal(t, domain.UserInfo{ID: "u2", Name: "Binh", Email: "binh@example.com"}, users[1])
}

func TestTaskClient_ListAllTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/internal/all", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "t1", "task_name": "Ship it", "due_date": "2026-03-12T08:00:00Z", "status": "In Progress", "assigned_to": "u2"},
			{"id": "t2", "task_name": "No deadline", "status": "To Do", "assigned_to": "u3"}
		]`))
	}))
	defer server.Close()

	client := NewTaskClient(server.URL, time.Second)
	tasks, err := client.ListAllTasks(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "t1", tasks[0].ID)
	require.Equal(t, domain.TaskStatusInProgress, tasks[0].Status)
	require.NotNil(t, tasks[0].DueDate)
	require.Equal(t, 12, tasks[0].DueDate.Day())
	require.Nil(t, tasks[1].DueDate)
}

func TestMailClient_Send(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/send", r.URL.Path)
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewMailClient(server.URL, time.Second)
	err := client.Send(context.Background(), "", "an@example.com", "Task due soon", "Two days left")

	require.NoError(t, err)
	require.JSONEq(t, `{"to":"an@example.com","subject":"Task due soon","text":"Two days left"}`, gotBody)
}

func TestActivityClient_Record(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/", r.URL.Path)
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewActivityClient(server.URL, time.Second)
	relatedID := "task1"
	err := client.Record(context.Background(), "Bearer tok", domain.ActivityEntryInput{
		UserID:      "u1",
		Action:      "Created task: Ship it",
		RelatedID:   &relatedID,
		RelatedType: domain.RelatedTypeTask,
	})

	require.NoError(t, err)
	require.JSONEq(t, `{
		"user_id": "u1",
		"action": "Created task: Ship it",
		"related_id": "task1",
		"related_type": "task"
	}`, gotBody)
}
