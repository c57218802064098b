package remote

import (
	"context"
	"errors"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

type TeamClient struct {
	client
}

var _ ports.TeamDirectory = (*TeamClient)(nil)

func NewTeamClient(baseURL string, timeout time.Duration) *TeamClient {
	return &TeamClient{client: newClient("team", baseURL, timeout)}
}

type teamPayload struct {
	Team struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"team_name"`
	} `json:"team"`
	Members []struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	} `json:"members"`
}

func (c *TeamClient) GetTeam(ctx context.Context, token, id string) (domain.TeamSnapshot, error) {
	var payload teamPayload
	if err := c.get(ctx, token, "/"+id, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return domain.TeamSnapshot{}, domain.ErrTeamNotFound
		}
		return domain.TeamSnapshot{}, err
	}

	teamID := payload.Team.ID
	if teamID == "" {
		teamID = payload.Team.MongoID
	}
	snapshot := domain.TeamSnapshot{ID: teamID, Name: payload.Team.Name}
	for _, m := range payload.Members {
		snapshot.Members = append(snapshot.Members, domain.TeamMember{UserID: m.UserID, Role: m.Role})
	}
	return snapshot, nil
}

func (c *TeamClient) BatchTeams(ctx context.Context, ids []string) ([]domain.RelatedSummary, error) {
	var envelope batchEnvelope
	if err := c.get(ctx, "", batchPath(ids), &envelope); err != nil {
		return nil, err
	}
	return toSummaries(envelope.Data), nil
}
