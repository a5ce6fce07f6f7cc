package config

import (
	"fmt"
	"net/url"

	"github.com/foxseedlab/ttsbot/internal/tts"
)

type Config struct {
	Env                string
	DiscordToken       string
	TTSServiceURL      string
	TTSServiceAuthKey  string
	VoiceModes         []tts.Mode
	TranslationEnabled bool
	WebhookLogsURL     string
	WebhookErrorsURL   string
	WebhookDMLogsURL   string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	u, err := url.Parse(c.TTSServiceURL)
	if err != nil {
		return fmt.Errorf("TTS_SERVICE_URL is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("TTS_SERVICE_URL must be an absolute http(s) url, got %q", c.TTSServiceURL)
	}
	if len(c.VoiceModes) == 0 {
		return fmt.Errorf("TTS_VOICE_MODES must list at least one mode")
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "TTS_SERVICE_URL", value: c.TTSServiceURL},
		{name: "WEBHOOK_LOGS_URL", value: c.WebhookLogsURL},
		{name: "WEBHOOK_ERRORS_URL", value: c.WebhookErrorsURL},
		{name: "WEBHOOK_DM_LOGS_URL", value: c.WebhookDMLogsURL},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
