package webhook

import (
	"context"
	"fmt"
)

const (
	StartupMessage  = "**TTS Bot is starting up**"
	ShutdownMessage = "**TTS Bot is shutting down**"
)

// Announce posts the startup message to the logs webhook and returns the id
// of the created message.
func Announce(ctx context.Context, executor Executor, logs *Handle) (string, error) {
	msg, err := executor.ExecuteWebhook(ctx, logs, StartupMessage)
	if err != nil {
		return "", err
	}
	if msg == nil || msg.ID == "" {
		return "", &DeliveryError{WebhookID: logs.ID, Err: ErrNoMessage}
	}
	return msg.ID, nil
}

// MarkStopped rewrites the startup message once the bot stops.
func MarkStopped(ctx context.Context, executor Executor, logs *Handle, messageID string) error {
	if err := executor.EditWebhookMessage(ctx, logs, messageID, ShutdownMessage); err != nil {
		return fmt.Errorf("failed to edit startup message %s: %w", messageID, err)
	}
	return nil
}
