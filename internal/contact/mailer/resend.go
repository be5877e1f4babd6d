package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/digiweb-agency/digiweb-backend/internal/contact/domain"
	"github.com/imroc/req/v3"
)

// DefaultResendURL is the Resend API base URL.
const DefaultResendURL = "https://api.resend.com"

// ResendMailer sends email through the Resend HTTP API.
type ResendMailer struct {
	apiKey string
	client *req.Client
}

// NewResendMailer creates a mailer. An empty apiKey yields a mailer whose
// every Send fails with domain.ErrMailerNotConfigured.
func NewResendMailer(baseURL, apiKey string, timeout time.Duration) *ResendMailer {
	if baseURL == "" {
		baseURL = DefaultResendURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := req.C().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCommonHeader("Content-Type", "application/json").
		SetCommonBearerAuthToken(apiKey)

	return &ResendMailer{apiKey: apiKey, client: client}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// Send posts the email to /emails.
func (m *ResendMailer) Send(ctx context.Context, e domain.Email) error {
	if m.apiKey == "" {
		return domain.ErrMailerNotConfigured
	}

	var ok sendEmailResponse
	var apiErr resendError
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(sendEmailRequest{
			From:    e.From,
			To:      e.To,
			Subject: e.Subject,
			HTML:    e.HTML,
			ReplyTo: e.ReplyTo,
		}).
		SetSuccessResult(&ok).
		SetErrorResult(&apiErr).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	if !resp.IsSuccessState() {
		return fmt.Errorf("%w: resend returned status %d: %s", domain.ErrDeliveryFailed, resp.StatusCode, apiErr.Message)
	}
	if ok.ID == "" {
		return fmt.Errorf("%w: resend response carried no id", domain.ErrDeliveryFailed)
	}
	return nil
}
