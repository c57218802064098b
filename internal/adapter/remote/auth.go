package remote

import (
	"context"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

type AuthClient struct {
	client
}

var _ ports.UserDirectory = (*AuthClient)(nil)

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{client: newClient("auth", baseURL, timeout)}
}

type userPayload struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func (c *AuthClient) GetUsersInfo(ctx context.Context, token string, ids []string) ([]domain.UserInfo, error) {
	var payload []userPayload
	body := map[string][]string{"ids": ids}
	if err := c.post(ctx, token, "/users/info", body, &payload); err != nil {
		return nil, err
	}

	users := make([]domain.UserInfo, 0, len(payload))
	for _, u := range payload {
		id := u.ID
		if id == "" {
			id = u.MongoID
		}
		users = append(users, domain.UserInfo{ID: id, Name: u.Name, Email: u.Email})
	}
	return users, nil
}
