package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/foxseedlab/ttsbot/internal/webhook"
)

// Client talks to Discord's webhook REST endpoints. It never opens a gateway
// connection; webhook tokens authorize every call.
type Client struct {
	session *discordgo.Session
}

func NewClient(token string) (*Client, error) {
	auth := ""
	if token != "" {
		auth = "Bot " + token
	}
	s, err := discordgo.New(auth)
	if err != nil {
		return nil, err
	}
	return &Client{session: s}, nil
}

func (c *Client) FetchWebhook(ctx context.Context, id, token string) (*webhook.Handle, error) {
	wh, err := c.session.WebhookWithToken(id, token, discordgo.WithContext(ctx))
	if err != nil {
		if isRESTNotFound(err) {
			return nil, fmt.Errorf("webhook %s does not exist: %w", id, err)
		}
		return nil, err
	}
	return &webhook.Handle{
		ID:        wh.ID,
		Token:     token,
		ChannelID: wh.ChannelID,
		GuildID:   wh.GuildID,
		Name:      wh.Name,
	}, nil
}

func (c *Client) ExecuteWebhook(ctx context.Context, h *webhook.Handle, content string) (*webhook.Message, error) {
	msg, err := c.session.WebhookExecute(h.ID, h.Token, true, &discordgo.WebhookParams{
		Content: content,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, nil
	}
	return &webhook.Message{ID: msg.ID, ChannelID: msg.ChannelID}, nil
}

func (c *Client) EditWebhookMessage(ctx context.Context, h *webhook.Handle, messageID, content string) error {
	_, err := c.session.WebhookMessageEdit(h.ID, h.Token, messageID, &discordgo.WebhookEdit{
		Content: &content,
	}, discordgo.WithContext(ctx))
	return err
}

func isRESTNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Response == nil {
		return false
	}
	return restErr.Response.StatusCode == http.StatusNotFound
}
