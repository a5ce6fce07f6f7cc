package webhook

import (
	"errors"
	"fmt"
)

var ErrNoMessage = errors.New("webhook execution returned no message")

// MalformedURLError reports a configured webhook url that does not look like
// https://discord.com/api/webhooks/{id}/{token}. The url itself is not kept
// because it contains the token.
type MalformedURLError struct {
	Field  string
	Reason string
}

func (e *MalformedURLError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed webhook url: %s", e.Reason)
	}
	return fmt.Sprintf("malformed %s webhook url: %s", e.Field, e.Reason)
}

type DeliveryError struct {
	WebhookID string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver message via webhook %s: %v", e.WebhookID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
