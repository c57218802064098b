package remote

import (
	"context"
	"errors"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

type ProjectClient struct {
	client
}

var _ ports.ProjectDirectory = (*ProjectClient)(nil)

func NewProjectClient(baseURL string, timeout time.Duration) *ProjectClient {
	return &ProjectClient{client: newClient("project", baseURL, timeout)}
}

type projectPayload struct {
	MongoID   string `json:"_id"`
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	Name      string `json:"project_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Progress  int    `json:"progress"`
}

func (c *ProjectClient) GetProject(ctx context.Context, token, id string) (domain.ProjectSnapshot, error) {
	var payload projectPayload
	if err := c.get(ctx, token, "/"+id, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return domain.ProjectSnapshot{}, domain.ErrProjectNotFound
		}
		return domain.ProjectSnapshot{}, err
	}

	snapshotID := payload.ID
	if snapshotID == "" {
		snapshotID = payload.MongoID
	}
	return domain.ProjectSnapshot{
		ID:        snapshotID,
		TeamID:    payload.TeamID,
		Name:      payload.Name,
		StartDate: parseRemoteDate(payload.StartDate),
		EndDate:   parseRemoteDate(payload.EndDate),
		Progress:  payload.Progress,
	}, nil
}

func (c *ProjectClient) RecalcProgress(ctx context.Context, token, id string) error {
	err := c.post(ctx, token, "/"+id+"/recalc-progress", struct{}{}, nil)
	if errors.Is(err, errNotFound) {
		return domain.ErrProjectNotFound
	}
	return err
}

func (c *ProjectClient) BatchProjects(ctx context.Context, ids []string) ([]domain.RelatedSummary, error) {
	var envelope batchEnvelope
	if err := c.get(ctx, "", batchPath(ids), &envelope); err != nil {
		return nil, err
	}
	return toSummaries(envelope.Data), nil
}
