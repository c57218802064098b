package remote

import (
	"context"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

type MailClient struct {
	client
}

var _ ports.Mailer = (*MailClient)(nil)

// NewMailClient gets its own timeout: mail delivery is the slowest
// collaborator call in the system.
func NewMailClient(baseURL string, timeout time.Duration) *MailClient {
	return &MailClient{client: newClient("mail", baseURL, timeout)}
}

type sendMailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (c *MailClient) Send(ctx context.Context, token, to, subject, body string) error {
	return c.post(ctx, token, "/send", sendMailRequest{To: to, Subject: subject, Text: body}, nil)
}
