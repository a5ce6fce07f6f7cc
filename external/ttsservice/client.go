package ttsservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/foxseedlab/ttsbot/internal/tts"
)

type Client struct {
	baseURL *url.URL
	authKey string
	client  *http.Client
}

func NewClient(baseURL, authKey string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tts service url: %w", err)
	}
	return &Client{
		baseURL: u,
		authKey: authKey,
		client:  &http.Client{},
	}, nil
}

func (c *Client) LoadGTTSVoices(ctx context.Context) (map[string]string, error) {
	return FetchVoices[map[string]string](ctx, c, tts.ModeGTTS)
}

func (c *Client) LoadESpeakVoices(ctx context.Context) ([]string, error) {
	return FetchVoices[[]string](ctx, c, tts.ModeESpeak)
}

func (c *Client) LoadPollyVoices(ctx context.Context) ([]tts.PollyVoice, error) {
	return FetchVoices[[]tts.PollyVoice](ctx, c, tts.ModePolly)
}

func (c *Client) LoadGoogleVoices(ctx context.Context) ([]tts.GoogleVoice, error) {
	return FetchVoices[[]tts.GoogleVoice](ctx, c, tts.ModeGCloud)
}

func (c *Client) LoadTranslationLanguages(ctx context.Context) (tts.TranslationLanguages, error) {
	return c.FetchTranslationLanguages(ctx)
}

// FetchVoices requests GET {base}/voices?mode={mode}&raw=true and decodes the
// provider-defined body into T.
func FetchVoices[T any](ctx context.Context, c *Client, mode tts.Mode) (T, error) {
	u := c.endpoint("voices")
	q := u.Query()
	q.Add("mode", mode.String())
	q.Add("raw", "true")
	u.RawQuery = q.Encode()

	res, err := fetchJSON[T](ctx, c.client, u.String(), c.authKey)
	if err != nil {
		return res, err
	}
	slog.Info("voices loaded", "mode", mode.String())
	return res, nil
}

// FetchTranslationLanguages requests GET {base}/translation_languages, a list
// of [code, name] pairs. Codes are lowercased and later duplicates win.
func (c *Client) FetchTranslationLanguages(ctx context.Context) (tts.TranslationLanguages, error) {
	u := c.endpoint("translation_languages")
	pairs, err := fetchJSON[[][]string](ctx, c.client, u.String(), c.authKey)
	if err != nil {
		return nil, err
	}

	langs := make(tts.TranslationLanguages, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, &tts.DecodeError{URL: u.String(), Err: fmt.Errorf("translation language %d has %d fields, want 2", i, len(p))}
		}
		langs[asciiLower(p[0])] = p[1]
	}
	slog.Info("translation languages loaded", "count", len(langs))
	return langs, nil
}

// endpoint replaces the base url path, keeping scheme, host and query.
func (c *Client) endpoint(path string) *url.URL {
	u := *c.baseURL
	u.Path = "/" + path
	u.RawPath = ""
	return &u
}

func fetchJSON[T any](ctx context.Context, client *http.Client, rawURL, authHeader string) (T, error) {
	var out T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return out, err
	}
	req.Header.Set("Authorization", authHeader)
	resp, err := client.Do(req)
	if err != nil {
		return out, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if !isHTTPSuccessStatus(resp.StatusCode) {
		return out, &tts.HTTPStatusError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return out, &tts.DecodeError{URL: rawURL, Err: errors.New("response body is null")}
	}
	// json.Unmarshal also rejects trailing data after the top level value.
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &tts.DecodeError{URL: rawURL, Err: err}
	}
	return out, nil
}

// asciiLower lowercases A-Z only and leaves other bytes untouched.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isHTTPSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
