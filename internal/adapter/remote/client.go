// Package remote holds the typed clients for the collaborator services
// (Project, Team, Auth, Mail, Activity, Task). Each client gets its own
// bounded-timeout http.Client; failures surface as *domain.RemoteError and
// no retries happen at this layer.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

// errNotFound is internal to this package; typed wrappers translate it to
// the matching domain sentinel.
var errNotFound = errors.New("remote record not found")

type client struct {
	name    string
	baseURL string
	http    *http.Client
}

func newClient(name, baseURL string, timeout time.Duration) client {
	return client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c client) get(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, http.MethodGet, token, path, nil, out)
}

func (c client) post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, token, path, body, out)
}

func (c client) do(ctx context.Context, method, token, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &domain.RemoteError{Service: c.name, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.RemoteError{Service: c.name, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.RemoteError{Service: c.name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.RemoteError{Service: c.name, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.RemoteError{Service: c.name, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// batchEnvelope is the common shape of collaborator batch endpoints.
type batchEnvelope struct {
	Success bool        `json:"success"`
	Data    []batchItem `json:"data"`
}

// batchItem tolerates the id/name field variants the services use.
type batchItem struct {
	MongoID     string `json:"_id"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	TaskName    string `json:"task_name"`
	ProjectName string `json:"project_name"`
	TeamName    string `json:"team_name"`
}

func (b batchItem) summary() domain.RelatedSummary {
	id := b.ID
	if id == "" {
		id = b.MongoID
	}
	name := firstNonEmpty(b.Name, b.TaskName, b.ProjectName, b.TeamName)
	return domain.RelatedSummary{ID: id, Name: name}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func batchPath(ids []string) string {
	return "/batch?ids=" + strings.Join(ids, ",")
}

func toSummaries(items []batchItem) []domain.RelatedSummary {
	summaries := make([]domain.RelatedSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, item.summary())
	}
	return summaries
}

// parseRemoteDate accepts both RFC3339 timestamps and bare dates, the two
// formats the services emit.
func parseRemoteDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
