// internal/words/wordnik.go
//
// Wordnik looks up a random word through the Wordnik v4 API:
//
//   GET {baseURL}/words.json/randomWord?minLength=N&maxLength=M&api_key=KEY
//   → {"id": 123, "word": "example"}
//
// A single request is made per call. Any failure (transport, status,
// body shape, ineligible word) is reported as ErrRemoteUnavailable.

package words

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultWordnikURL     = "https://api.wordnik.com/v4"
	defaultWordnikTimeout = 10 * time.Second
	maxResponseBytes      = 64 << 10
)

// Wordnik is a remote Source.
type Wordnik struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// WordnikOption customises a Wordnik source.
type WordnikOption func(*Wordnik)

// WithBaseURL points the source at another API root (tests, proxies).
func WithBaseURL(u string) WordnikOption {
	return func(w *Wordnik) { w.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) WordnikOption {
	return func(w *Wordnik) { w.client = c }
}

// WithTimeout bounds the single request.
func WithTimeout(d time.Duration) WordnikOption {
	return func(w *Wordnik) {
		if d > 0 {
			w.client = &http.Client{Timeout: d}
		}
	}
}

// NewWordnik constructs a Wordnik source authenticated with apiKey.
func NewWordnik(apiKey string, opts ...WordnikOption) *Wordnik {
	w := &Wordnik{
		apiKey:  apiKey,
		baseURL: DefaultWordnikURL,
		client:  &http.Client{Timeout: defaultWordnikTimeout},
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

type randomWordRes struct {
	Word string `json:"word"`
}

// Word implements Source.
func (w *Wordnik) Word(ctx context.Context, minLength, maxLength int) (string, error) {
	if err := ValidateRange(minLength, maxLength); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("minLength", strconv.Itoa(minLength))
	q.Set("maxLength", strconv.Itoa(maxLength))
	q.Set("api_key", w.apiKey)
	endpoint := w.baseURL + "/words.json/randomWord?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ErrRemoteUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Int("minLength", minLength).
		Int("maxLength", maxLength).Msg("wordnik randomWord")

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrRemoteUnavailable, err)
	}
	var res randomWordRes
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("%w: decode body: %w", ErrRemoteUnavailable, err)
	}

	word, ok := Normalize(res.Word)
	if !ok {
		return "", fmt.Errorf("%w: no eligible word in response %q", ErrRemoteUnavailable, res.Word)
	}
	if !InRange(word, minLength, maxLength) {
		return "", fmt.Errorf("%w: word %q outside [%d, %d]", ErrRemoteUnavailable, word, minLength, maxLength)
	}
	return word, nil
}
