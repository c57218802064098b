package remote

import (
	"context"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

type ActivityClient struct {
	client
}

var _ ports.ActivityRecorder = (*ActivityClient)(nil)

func NewActivityClient(baseURL string, timeout time.Duration) *ActivityClient {
	return &ActivityClient{client: newClient("activity", baseURL, timeout)}
}

type recordActivityRequest struct {
	UserID      string  `json:"user_id"`
	Action      string  `json:"action"`
	RelatedID   *string `json:"related_id"`
	RelatedType string  `json:"related_type"`
}

func (c *ActivityClient) Record(ctx context.Context, token string, in domain.ActivityEntryInput) error {
	return c.post(ctx, token, "/", recordActivityRequest{
		UserID:      in.UserID,
		Action:      in.Action,
		RelatedID:   in.RelatedID,
		RelatedType: string(in.RelatedType),
	}, nil)
}
