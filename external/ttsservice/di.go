package ttsservice

import (
	"github.com/foxseedlab/ttsbot/internal/config"
	"github.com/foxseedlab/ttsbot/internal/tts"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (tts.CatalogLoader, error) {
		c := do.MustInvoke[*config.Config](i)
		client, err := NewClient(c.TTSServiceURL, c.TTSServiceAuthKey)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
}
