package discord

import (
	"github.com/foxseedlab/ttsbot/internal/config"
	"github.com/foxseedlab/ttsbot/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Client, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewClient(c.DiscordToken)
	})
	do.Provide(injector, func(i do.Injector) (webhook.Fetcher, error) {
		return do.MustInvoke[*Client](i), nil
	})
	do.Provide(injector, func(i do.Injector) (webhook.Executor, error) {
		return do.MustInvoke[*Client](i), nil
	})
}
