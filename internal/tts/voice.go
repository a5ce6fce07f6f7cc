package tts

import (
	"encoding/json"
	"fmt"
)

type GoogleGender string

const (
	GoogleGenderMale        GoogleGender = "MALE"
	GoogleGenderFemale      GoogleGender = "FEMALE"
	GoogleGenderNeutral     GoogleGender = "NEUTRAL"
	GoogleGenderUnspecified GoogleGender = "SSML_VOICE_GENDER_UNSPECIFIED"
)

func (g *GoogleGender) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch v := GoogleGender(s); v {
	case GoogleGenderMale, GoogleGenderFemale, GoogleGenderNeutral, GoogleGenderUnspecified:
		*g = v
		return nil
	}
	return fmt.Errorf("unknown ssml gender %q", s)
}

// GoogleVoice is one raw entry of the gcloud voice list.
type GoogleVoice struct {
	Name          string       `json:"name"`
	LanguageCodes []string     `json:"languageCodes"`
	SSMLGender    GoogleGender `json:"ssmlGender"`
}

// GoogleVoiceCatalog maps language code to variant to gender,
// e.g. {"en-US": {"A": FEMALE, "Wavenet-F": FEMALE}}.
type GoogleVoiceCatalog map[string]map[string]GoogleGender

type PollyVoice struct {
	ID               string   `json:"Id"`
	Name             string   `json:"Name"`
	Gender           string   `json:"Gender"`
	LanguageCode     string   `json:"LanguageCode"`
	LanguageName     string   `json:"LanguageName"`
	SupportedEngines []string `json:"SupportedEngines"`
}

// TranslationLanguages maps a lowercase language code to its display name.
type TranslationLanguages map[string]string

// Catalogs is everything loaded from the TTS service at startup.
type Catalogs struct {
	GTTS        map[string]string
	ESpeak      []string
	Polly       []PollyVoice
	GCloud      GoogleVoiceCatalog
	Translation TranslationLanguages
}
