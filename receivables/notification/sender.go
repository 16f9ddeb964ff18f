package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/franchise-ops/collections/receivables/model"
)

// Sender delivers a single email.
type Sender interface {
	Send(ctx context.Context, email model.Email) error
}

// emailAPI is the slice of the Resend client the sender uses.
type emailAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type resendSender struct {
	emails emailAPI
}

// NewResendSender creates a Sender backed by the Resend transactional email API
func NewResendSender(apiKey string) Sender {
	return &resendSender{
		emails: resend.NewClient(apiKey).Emails,
	}
}

func (s *resendSender) Send(ctx context.Context, email model.Email) error {
	if email.To == "" {
		return errors.New("email recipient is required")
	}

	from := email.From
	if email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", email.FromName, email.From)
	}

	_, err := s.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      []string{email.To},
		Subject: email.Subject,
		Text:    email.Text,
		Html:    email.HTML,
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", email.To, err)
	}
	return nil
}
