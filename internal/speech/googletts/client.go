// Package googletts synthesizes speech through the Google Translate
// text-to-speech endpoint. The endpoint needs no credentials but caps
// input length per call, so long scripts are chunked and the returned
// MP3 frames concatenated.
package googletts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"lecturecast/internal/speech"
)

const (
	defaultBaseURL = "https://translate.google.com/translate_tts"
	timeout        = 120 * time.Second
	maxChunkLen    = 200
)

var _ speech.Provider = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	baseURL    string
	language   string
}

type Config struct {
	Language string
}

type option func(*Client)

func withBaseURL(u string) option {
	return func(c *Client) {
		c.baseURL = u
	}
}

func withHTTPClient(client *http.Client) option {
	return func(c *Client) {
		c.httpClient = client
	}
}

func NewClient(cfg Config) speech.Provider {
	return newClient(cfg)
}

func newClient(cfg Config, opts ...option) *Client {
	language := cfg.Language
	if language == "" {
		language = "en"
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		language:   language,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Format() string { return "mp3" }

func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	chunks := splitText(text, maxChunkLen)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no text to synthesize")
	}

	var audio []byte
	for i, chunk := range chunks {
		data, err := c.fetchChunk(ctx, chunk, i, len(chunks))
		if err != nil {
			return nil, fmt.Errorf("synthesize chunk %d: %w", i, err)
		}
		audio = append(audio, data...)
	}

	return audio, nil
}

func (c *Client) fetchChunk(ctx context.Context, text string, idx, total int) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", c.language)
	params.Set("q", text)
	params.Set("idx", strconv.Itoa(idx))
	params.Set("total", strconv.Itoa(total))
	params.Set("textlen", strconv.Itoa(utf8.RuneCountInString(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translate tts: %s - %s", resp.Status, string(body))
	}

	return body, nil
}

// splitText breaks text into chunks of at most maxLen characters,
// preferring word boundaries so synthesis does not cut words in half.
// Lengths are counted in runes; the endpoint's limit is characters,
// not bytes.
func splitText(text string, maxLen int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	words := strings.Fields(text)
	var current strings.Builder
	currentLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if currentLen > 0 && currentLen+1+wordLen > maxLen {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}
	if currentLen > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
