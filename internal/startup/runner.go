// Package startup provisions everything the bot needs before it starts
// serving: resolved webhooks, the startup log message, and the voice catalogs.
package startup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foxseedlab/ttsbot/internal/config"
	"github.com/foxseedlab/ttsbot/internal/tts"
	"github.com/foxseedlab/ttsbot/internal/webhook"
	"golang.org/x/sync/errgroup"
)

// State is built once by Run and not modified afterwards.
type State struct {
	Webhooks         *webhook.Config
	StartupMessageID string
	Catalogs         tts.Catalogs
}

type Runner struct {
	cfg      *config.Config
	fetcher  webhook.Fetcher
	executor webhook.Executor
	loader   tts.CatalogLoader
}

func NewRunner(cfg *config.Config, fetcher webhook.Fetcher, executor webhook.Executor, loader tts.CatalogLoader) *Runner {
	return &Runner{
		cfg:      cfg,
		fetcher:  fetcher,
		executor: executor,
		loader:   loader,
	}
}

func (r *Runner) Run(ctx context.Context) (*State, error) {
	webhooks, err := webhook.Resolve(ctx, r.fetcher, webhook.RawConfig{
		Logs:   r.cfg.WebhookLogsURL,
		Errors: r.cfg.WebhookErrorsURL,
		DMLogs: r.cfg.WebhookDMLogsURL,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve webhooks: %w", err)
	}

	messageID, err := webhook.Announce(ctx, r.executor, webhooks.Logs)
	if err != nil {
		return nil, fmt.Errorf("send startup message: %w", err)
	}
	slog.Info("startup message sent", "message_id", messageID, "channel_id", webhooks.Logs.ChannelID)

	catalogs, err := r.loadCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load voice catalogs: %w", err)
	}

	return &State{
		Webhooks:         webhooks,
		StartupMessageID: messageID,
		Catalogs:         catalogs,
	}, nil
}

// Shutdown marks the startup message as stopped.
func (r *Runner) Shutdown(ctx context.Context, st *State) error {
	if st == nil || st.Webhooks == nil || st.StartupMessageID == "" {
		return nil
	}
	return webhook.MarkStopped(ctx, r.executor, st.Webhooks.Logs, st.StartupMessageID)
}

func (r *Runner) loadCatalogs(ctx context.Context) (tts.Catalogs, error) {
	var c tts.Catalogs

	eg, egCtx := errgroup.WithContext(ctx)
	loads := make([]func() error, 0, len(r.cfg.VoiceModes)+1)
	seen := make(map[tts.Mode]struct{}, len(r.cfg.VoiceModes))
	for _, mode := range r.cfg.VoiceModes {
		if _, dup := seen[mode]; dup {
			continue
		}
		seen[mode] = struct{}{}
		switch mode {
		case tts.ModeGTTS:
			loads = append(loads, func() (err error) {
				c.GTTS, err = r.loader.LoadGTTSVoices(egCtx)
				return err
			})
		case tts.ModeESpeak:
			loads = append(loads, func() (err error) {
				c.ESpeak, err = r.loader.LoadESpeakVoices(egCtx)
				return err
			})
		case tts.ModePolly:
			loads = append(loads, func() (err error) {
				c.Polly, err = r.loader.LoadPollyVoices(egCtx)
				return err
			})
		case tts.ModeGCloud:
			loads = append(loads, func() error {
				raw, err := r.loader.LoadGoogleVoices(egCtx)
				if err != nil {
					return err
				}
				c.GCloud = tts.NormalizeGoogleVoices(raw)
				slog.Debug("gcloud voices normalized", "voices", len(raw), "languages", len(c.GCloud))
				return nil
			})
		default:
			return tts.Catalogs{}, fmt.Errorf("unsupported tts mode %q", mode)
		}
	}
	if r.cfg.TranslationEnabled {
		loads = append(loads, func() (err error) {
			c.Translation, err = r.loader.LoadTranslationLanguages(egCtx)
			return err
		})
	}

	// Each load writes its own field of c.
	for _, load := range loads {
		eg.Go(load)
	}
	if err := eg.Wait(); err != nil {
		return tts.Catalogs{}, err
	}

	if c.Translation == nil {
		c.Translation = tts.TranslationLanguages{}
	}
	return c, nil
}
