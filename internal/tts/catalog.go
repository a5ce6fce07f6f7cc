package tts

import "context"

// CatalogLoader fetches raw catalogs from the TTS service.
type CatalogLoader interface {
	LoadGTTSVoices(ctx context.Context) (map[string]string, error)
	LoadESpeakVoices(ctx context.Context) ([]string, error)
	LoadPollyVoices(ctx context.Context) ([]PollyVoice, error)
	LoadGoogleVoices(ctx context.Context) ([]GoogleVoice, error)
	LoadTranslationLanguages(ctx context.Context) (TranslationLanguages, error)
}
