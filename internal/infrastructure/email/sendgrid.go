package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/venha/invitations-api/internal/core/domain"
)

const (
	DefaultHost  = "https://api.sendgrid.com"
	sendEndpoint = "/v3/mail/send"
)

var ErrMissingAPIKey = errors.New("sendgrid api key not configured")

// SendGridSender implements ports.MailSender with the SendGrid v3 mail API.
type SendGridSender struct {
	apiKey string
	client *sendgrid.Client
}

// NewSendGridSender builds a sender for the given API key. An empty host
// selects the public SendGrid API.
func NewSendGridSender(apiKey, host string) *SendGridSender {
	if host == "" {
		host = DefaultHost
	}
	req := sendgrid.GetRequest(apiKey, sendEndpoint, host)
	req.Method = rest.Post
	return &SendGridSender{apiKey: apiKey, client: &sendgrid.Client{Request: req}}
}

// Send delivers msg. Any non-2xx answer is reported as an error.
func (s *SendGridSender) Send(ctx context.Context, msg domain.Email) error {
	if s.apiKey == "" {
		return ErrMissingAPIKey
	}

	m := mail.NewSingleEmail(
		mail.NewEmail("", msg.From),
		msg.Subject,
		mail.NewEmail("", msg.To),
		"",
		msg.HTMLContent,
	)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
