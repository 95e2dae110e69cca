// Package notifier delivers OTP codes and reminders over email and SMS.
// The transports are constructed once at process start and injected into the
// controllers that need them; fire-and-forget paths use the *Async variants,
// which log failures instead of surfacing them.
package notifier

import (
	"context"
	"log"

	"rhythmflow_backend/internals/configs"
)

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}

// Service bundles both channels behind one handle.
type Service struct {
	Email EmailSender
	SMS   SMSSender
}

// NewFromEnv wires the real transports when credentials are present and
// falls back to console logging otherwise.
func NewFromEnv() *Service {
	svc := &Service{
		Email: NewConsoleMailer(),
		SMS:   NewDisabledSMS(),
	}
	if configs.SendgridAPIKey != "" {
		svc.Email = NewSendgridMailer(configs.SendgridAPIKey, configs.EmailFromName, configs.EmailFrom)
	}
	if configs.SMSEnabled && configs.Fast2SMSAPIKey != "" {
		svc.SMS = NewFast2SMS(configs.Fast2SMSAPIKey, configs.Fast2SMSSenderID)
	}
	return svc
}

// SendEmailAsync dispatches without blocking the request; errors are logged.
func (s *Service) SendEmailAsync(to, subject, body string) {
	go func() {
		if err := s.Email.SendEmail(context.Background(), to, subject, body); err != nil {
			log.Printf("[notifier] email to %s failed: %v", to, err)
		}
	}()
}

// SendSMSAsync dispatches without blocking the request; errors are logged.
func (s *Service) SendSMSAsync(phone, message string) {
	go func() {
		if err := s.SMS.SendSMS(context.Background(), phone, message); err != nil {
			log.Printf("[notifier] sms to %s failed: %v", phone, err)
		}
	}()
}
