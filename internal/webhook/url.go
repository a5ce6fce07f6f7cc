package webhook

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	minWebhookIDLen    = 17
	maxWebhookIDLen    = 20
	minWebhookTokenLen = 60
	maxWebhookTokenLen = 68
)

var webhookHosts = map[string]struct{}{
	"discord.com":        {},
	"discordapp.com":     {},
	"canary.discord.com": {},
	"ptb.discord.com":    {},
}

// ParseURL extracts the webhook id and token from
// https://discord.com/api[/v{N}]/webhooks/{id}/{token}.
func ParseURL(raw string) (id, token string, err error) {
	u, perr := url.Parse(strings.TrimSpace(raw))
	if perr != nil {
		return "", "", &MalformedURLError{Reason: "not a url"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", &MalformedURLError{Reason: "scheme must be http or https"}
	}
	if _, ok := webhookHosts[strings.ToLower(u.Hostname())]; !ok {
		return "", "", &MalformedURLError{Reason: "host is not discord"}
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) > 0 && segments[0] == "api" {
		segments = segments[1:]
	} else {
		return "", "", &MalformedURLError{Reason: "path must start with /api"}
	}
	if len(segments) > 0 && isAPIVersion(segments[0]) {
		segments = segments[1:]
	}
	if len(segments) != 3 || segments[0] != "webhooks" {
		return "", "", &MalformedURLError{Reason: "path must be /api/webhooks/{id}/{token}"}
	}

	id, token = segments[1], segments[2]
	if len(id) < minWebhookIDLen || len(id) > maxWebhookIDLen || !isDigits(id) {
		return "", "", &MalformedURLError{Reason: "webhook id is not a snowflake"}
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return "", "", &MalformedURLError{Reason: "webhook id overflows a snowflake"}
	}
	if len(token) < minWebhookTokenLen || len(token) > maxWebhookTokenLen {
		return "", "", &MalformedURLError{Reason: "webhook token has unexpected length"}
	}
	return id, token, nil
}

func isAPIVersion(s string) bool {
	return len(s) > 1 && s[0] == 'v' && isDigits(s[1:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
