package tts

import (
	"fmt"
	"strings"
)

// Mode selects which synthesis engine a catalog request targets.
type Mode string

const (
	ModeGTTS   Mode = "gtts"
	ModePolly  Mode = "polly"
	ModeESpeak Mode = "espeak"
	ModeGCloud Mode = "gcloud"
)

var allModes = []Mode{ModeGTTS, ModePolly, ModeESpeak, ModeGCloud}

func (m Mode) String() string {
	return string(m)
}

// ParseMode accepts any casing of a known mode name, e.g. "gTTS" or "gCloud".
func ParseMode(s string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, m := range allModes {
		if string(m) == v {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown tts mode %q", s)
}
