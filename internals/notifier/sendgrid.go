package notifier

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

var _ EmailSender = (*sendgridMailer)(nil)

func NewSendgridMailer(apiKey, fromName, fromAddr string) EmailSender {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(fromName, fromAddr),
	}
}

func (m *sendgridMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := sgmail.NewSingleEmailPlainText(m.from, subject, sgmail.NewEmail("", to), body)
	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
