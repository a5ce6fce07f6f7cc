package tts

import "strings"

const legacyVoiceType = "Standard"

type variantScheme int

const (
	// "Standard-A" is stored as "A".
	variantSchemeLegacy variantScheme = iota
	// "Wavenet-F", "Neural2-C" and friends are stored whole so that
	// voices sharing a letter across types do not collide.
	variantSchemePrefixed
)

// classifyVariant takes the part of a voice name after the language and
// region, e.g. "Standard-A", and returns its scheme and the variant key.
func classifyVariant(typeAndVariant string) (variantScheme, string) {
	voiceType, variant, found := strings.Cut(typeAndVariant, "-")
	if found && voiceType == legacyVoiceType {
		return variantSchemeLegacy, variant
	}
	return variantSchemePrefixed, typeAndVariant
}

// NormalizeGoogleVoices builds the {language: {variant: gender}} lookup used
// for voice selection. Names with fewer than three dash separated parts and
// voices without a language code are skipped. When the same language and
// variant appear twice the later voice wins.
func NormalizeGoogleVoices(voices []GoogleVoice) GoogleVoiceCatalog {
	catalog := make(GoogleVoiceCatalog)
	for _, v := range voices {
		parts := strings.SplitN(v.Name, "-", 3)
		if len(parts) < 3 || len(v.LanguageCodes) == 0 {
			continue
		}
		_, variant := classifyVariant(parts[2])

		language := v.LanguageCodes[0]
		variants, ok := catalog[language]
		if !ok {
			variants = make(map[string]GoogleGender)
			catalog[language] = variants
		}
		variants[variant] = v.SSMLGender
	}
	return catalog
}
