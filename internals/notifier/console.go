package notifier

import (
	"context"
	"log"
)

// consoleMailer stands in for SendGrid in development.
type consoleMailer struct{}

var _ EmailSender = consoleMailer{}

func NewConsoleMailer() EmailSender { return consoleMailer{} }

func (consoleMailer) SendEmail(_ context.Context, to, subject, body string) error {
	log.Printf("[mail:console] to=%s subject=%q\n%s", to, subject, body)
	return nil
}

// disabledSMS logs instead of sending when SMS_ENABLED is off.
type disabledSMS struct{}

var _ SMSSender = disabledSMS{}

func NewDisabledSMS() SMSSender { return disabledSMS{} }

func (disabledSMS) SendSMS(_ context.Context, phone, message string) error {
	log.Printf("[sms:disabled] to=%s message=%q", phone, message)
	return nil
}
