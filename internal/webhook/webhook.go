package webhook

import "context"

// Handle is a resolved webhook that can be executed without a bot session.
type Handle struct {
	ID        string
	Token     string
	ChannelID string
	GuildID   string
	Name      string
}

// RawConfig holds the configured webhook urls before resolution.
type RawConfig struct {
	Logs   string
	Errors string
	DMLogs string
}

// Config is only ever built with all three handles resolved.
type Config struct {
	Logs   *Handle
	Errors *Handle
	DMLogs *Handle
}

type Message struct {
	ID        string
	ChannelID string
}

type Fetcher interface {
	FetchWebhook(ctx context.Context, id, token string) (*Handle, error)
}

type Executor interface {
	// ExecuteWebhook posts content and waits for the created message.
	ExecuteWebhook(ctx context.Context, h *Handle, content string) (*Message, error)
	EditWebhookMessage(ctx context.Context, h *Handle, messageID, content string) error
}
