package ttsservice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foxseedlab/ttsbot/internal/tts"
)

func newTestClient(t *testing.T, authKey string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := NewClient(server.URL, authKey)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func TestLoadGoogleVoices_RequestShape(t *testing.T) {
	c := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/voices" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("mode"); got != "gcloud" {
			t.Fatalf("unexpected mode: %s", got)
		}
		if got := r.URL.Query().Get("raw"); got != "true" {
			t.Fatalf("unexpected raw flag: %s", got)
		}
		if got := r.Header.Get("Authorization"); got != "secret" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		_, _ = w.Write([]byte(`[{"name":"en-US-Standard-A","languageCodes":["en-US"],"ssmlGender":"FEMALE"}]`))
	})

	voices, err := c.LoadGoogleVoices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(voices) != 1 || voices[0].Name != "en-US-Standard-A" || voices[0].SSMLGender != tts.GoogleGenderFemale {
		t.Fatalf("unexpected voices: %+v", voices)
	}
}

func TestFetchVoices_EmptyAuthKey(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("expected empty authorization header, got %q", got)
		}
		_, _ = w.Write([]byte(`["en","de"]`))
	})

	voices, err := c.LoadESpeakVoices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(voices) != 2 {
		t.Fatalf("unexpected voices: %v", voices)
	}
}

func TestFetchVoices_ReplacesBasePath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"en":"English"}`))
	}))
	defer server.Close()

	c, err := NewClient(server.URL+"/some/prefix", "")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := c.LoadGTTSVoices(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/voices" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
}

func TestFetchVoices_Non2xx(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.LoadPollyVoices(context.Background())
	var statusErr *tts.HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status code: %d", statusErr.StatusCode)
	}
}

func TestFetchVoices_DecodeError(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := c.LoadGoogleVoices(context.Background())
	var decodeErr *tts.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestFetchVoices_UnknownGenderIsDecodeError(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"en-US-Standard-A","languageCodes":["en-US"],"ssmlGender":"ROBOT"}]`))
	})

	_, err := c.LoadGoogleVoices(context.Background())
	var decodeErr *tts.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestFetchTranslationLanguages_LowercasesAndLastWins(t *testing.T) {
	c := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translation_languages" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[["EN","English"],["DE","German"],["en","English (dup)"]]`))
	})

	langs, err := c.FetchTranslationLanguages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(langs) != 2 {
		t.Fatalf("unexpected languages: %v", langs)
	}
	if langs["en"] != "English (dup)" {
		t.Fatalf("expected later duplicate to win, got %q", langs["en"])
	}
	if langs["de"] != "German" {
		t.Fatalf("unexpected display name for de: %q", langs["de"])
	}
	if _, ok := langs["EN"]; ok {
		t.Fatal("expected keys to be lowercased")
	}
}

func TestFetchTranslationLanguages_Non2xx(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FetchTranslationLanguages(context.Background())
	var statusErr *tts.HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
}

func TestFetchTranslationLanguages_MalformedBodies(t *testing.T) {
	bodies := map[string]string{
		"short pair":    `[["en"]]`,
		"long pair":     `[["en","English","extra"]]`,
		"null body":     `null`,
		"trailing data": `[["en","English"]] trailing`,
		"not a list":    `{"en":"English"}`,
	}
	for name, body := range bodies {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		langs, err := c.FetchTranslationLanguages(context.Background())
		var decodeErr *tts.DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("%s: expected DecodeError, got langs=%v err=%v", name, langs, err)
		}
	}
}

func TestLoadGoogleVoices_NullBody(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null\n"))
	})

	_, err := c.LoadGoogleVoices(context.Background())
	var decodeErr *tts.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestFetchTranslationLanguages_LowercasesASCIIOnly(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[["PT-BR","Portuguese"],["ÉX","Non-ASCII"]]`))
	})

	langs, err := c.FetchTranslationLanguages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if langs["pt-br"] != "Portuguese" {
		t.Fatalf("expected pt-br key, got %v", langs)
	}
	if langs["Éx"] != "Non-ASCII" {
		t.Fatalf("expected non-ASCII letters to keep their case, got %v", langs)
	}
}
