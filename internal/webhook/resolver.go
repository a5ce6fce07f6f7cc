package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Resolve parses and fetches the three configured webhooks concurrently.
// The first failure is returned and no partial Config is produced.
func Resolve(ctx context.Context, fetcher Fetcher, raw RawConfig) (*Config, error) {
	var logs, errs, dmLogs *Handle

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(resolveOne(egCtx, fetcher, "logs", raw.Logs, &logs))
	eg.Go(resolveOne(egCtx, fetcher, "errors", raw.Errors, &errs))
	eg.Go(resolveOne(egCtx, fetcher, "dm_logs", raw.DMLogs, &dmLogs))
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slog.Info("webhooks fetched", "logs_channel_id", logs.ChannelID, "errors_channel_id", errs.ChannelID, "dm_logs_channel_id", dmLogs.ChannelID)
	return &Config{Logs: logs, Errors: errs, DMLogs: dmLogs}, nil
}

func resolveOne(ctx context.Context, fetcher Fetcher, field, raw string, dst **Handle) func() error {
	return func() error {
		id, token, err := ParseURL(raw)
		if err != nil {
			var malformed *MalformedURLError
			if errors.As(err, &malformed) {
				malformed.Field = field
			}
			return err
		}
		h, err := fetcher.FetchWebhook(ctx, id, token)
		if err != nil {
			return err
		}
		if h == nil {
			return fmt.Errorf("%s webhook resolved to nothing", field)
		}
		*dst = h
		return nil
	}
}
