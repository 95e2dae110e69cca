package notifier

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const fast2smsEndpoint = "https://www.fast2sms.com/dev/bulkV2"

type fast2SMS struct {
	apiKey   string
	senderID string
}

var _ SMSSender = (*fast2SMS)(nil)

func NewFast2SMS(apiKey, senderID string) SMSSender {
	return &fast2SMS{apiKey: apiKey, senderID: senderID}
}

func (s *fast2SMS) SendSMS(ctx context.Context, phone, message string) error {
	if phone == "" {
		return fmt.Errorf("fast2sms: empty phone number")
	}

	q := url.Values{}
	q.Set("authorization", s.apiKey)
	q.Set("route", "v3")
	q.Set("sender_id", s.senderID)
	q.Set("message", message)
	q.Set("language", "english")
	q.Set("numbers", phone)

	agent := fiber.Get(fast2smsEndpoint + "?" + q.Encode())
	agent.Timeout(10 * time.Second)

	code, body, errs := agent.String()
	if len(errs) > 0 {
		return fmt.Errorf("fast2sms: %v", errs[0])
	}
	if code >= 400 {
		return fmt.Errorf("fast2sms: status %d: %s", code, body)
	}
	return nil
}
