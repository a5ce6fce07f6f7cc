package startup

import (
	"github.com/foxseedlab/ttsbot/internal/config"
	"github.com/foxseedlab/ttsbot/internal/tts"
	"github.com/foxseedlab/ttsbot/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Runner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		fetcher := do.MustInvoke[webhook.Fetcher](i)
		executor := do.MustInvoke[webhook.Executor](i)
		loader := do.MustInvoke[tts.CatalogLoader](i)
		return NewRunner(cfg, fetcher, executor, loader), nil
	})
}
