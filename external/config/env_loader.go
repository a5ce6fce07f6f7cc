package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/ttsbot/internal/config"
	"github.com/foxseedlab/ttsbot/internal/tts"
)

type envConfig struct {
	Env                string   `env:"ENV" envDefault:"production"`
	DiscordToken       string   `env:"DISCORD_TOKEN"`
	TTSServiceURL      string   `env:"TTS_SERVICE_URL,required"`
	TTSServiceAuthKey  string   `env:"TTS_SERVICE_AUTH_KEY"`
	VoiceModes         []string `env:"TTS_VOICE_MODES" envSeparator:"," envDefault:"gtts,espeak,gcloud"`
	TranslationEnabled bool     `env:"TRANSLATION_ENABLED" envDefault:"false"`
	WebhookLogsURL     string   `env:"WEBHOOK_LOGS_URL,required"`
	WebhookErrorsURL   string   `env:"WEBHOOK_ERRORS_URL,required"`
	WebhookDMLogsURL   string   `env:"WEBHOOK_DM_LOGS_URL,required"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	modes, err := parseModes(raw.VoiceModes)
	if err != nil {
		return nil, fmt.Errorf("TTS_VOICE_MODES is invalid: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                raw.Env,
		DiscordToken:       raw.DiscordToken,
		TTSServiceURL:      raw.TTSServiceURL,
		TTSServiceAuthKey:  raw.TTSServiceAuthKey,
		VoiceModes:         modes,
		TranslationEnabled: raw.TranslationEnabled,
		WebhookLogsURL:     raw.WebhookLogsURL,
		WebhookErrorsURL:   raw.WebhookErrorsURL,
		WebhookDMLogsURL:   raw.WebhookDMLogsURL,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseModes(values []string) ([]tts.Mode, error) {
	modes := make([]tts.Mode, 0, len(values))
	seen := make(map[tts.Mode]struct{}, len(values))
	for _, v := range values {
		m, err := tts.ParseMode(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		modes = append(modes, m)
	}
	return modes, nil
}
