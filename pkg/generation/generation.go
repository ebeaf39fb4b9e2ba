// Package generation wraps the external marketing-copy generation capability
// behind a bounded, rate-limited client speaking the OpenAI chat completions
// protocol.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o"

	defaultTimeout     = 30 * time.Second
	defaultMaxPerHour  = 20
	maxBusinessInfoLen = 500
	maxTokens          = 1000
)

var (
	// ErrMissingAPIKey indicates no credential was configured.
	ErrMissingAPIKey = errors.New("missing generation API key")

	// ErrRateLimited indicates the hourly request cap was reached.
	ErrRateLimited = errors.New("hourly generation limit reached")

	// ErrTimeout indicates the upstream call exceeded its deadline. Kept
	// distinct from GenerationError so callers can suggest a retry.
	ErrTimeout = errors.New("generation request timed out")

	// ErrEmptyCompletion indicates the upstream returned no content.
	ErrEmptyCompletion = errors.New("generation returned no content")

	// ErrBusinessInfoTooLong indicates the business description exceeds the
	// supported bound.
	ErrBusinessInfoTooLong = fmt.Errorf("business description exceeds %d characters", maxBusinessInfoLen)
)

// GenerationError wraps upstream failures with the HTTP status if known.
type GenerationError struct {
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation request failed with status %d: %v", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("generation request failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Style selects the writing register for the generated copy.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleCasual       Style = "casual"
	StyleFunny        Style = "funny"
	StyleSensitive    Style = "sensitive"
	StyleFormal       Style = "formal"
)

// Request carries everything the prompt template needs.
type Request struct {
	BusinessInfo  string `json:"business_info"  validate:"required,max=500"`
	Category      string `json:"category"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Style         Style  `json:"style"          validate:"omitempty,oneof=professional casual funny sensitive formal"`
	IncludeEmojis bool   `json:"include_emojis"`
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

func WithHourlyLimit(limit int) Option {
	return func(c *Client) { c.maxPerHour = limit }
}

// Client is safe for concurrent use; the rate window is guarded by a mutex.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
	logger     *slog.Logger

	mu          sync.Mutex
	windowStart time.Time
	requests    int
	maxPerHour  int
}

func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      DefaultModel,
		timeout:    defaultTimeout,
		logger:     logger,
		maxPerHour: defaultMaxPerHour,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate produces marketing copy for the given request. The call is
// bounded by the configured timeout and counted against the hourly cap.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if utf8.RuneCountInString(req.BusinessInfo) > maxBusinessInfoLen {
		return "", ErrBusinessInfoTooLong
	}

	if err := c.reserveSlot(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(req.Style)},
			{Role: "user", Content: userPrompt(req)},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}

		return "", &GenerationError{Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(payload)))}
	}

	var decoded chatResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: err}
	}

	if decoded.Error != nil {
		return "", &GenerationError{StatusCode: resp.StatusCode, Err: errors.New(decoded.Error.Message)}
	}

	if len(decoded.Choices) == 0 || strings.TrimSpace(decoded.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(decoded.Choices[0].Message.Content)

	c.logger.DebugContext(ctx, "Generated marketing copy",
		"style", req.Style,
		"emoji", req.IncludeEmojis,
		"length", len(content))

	return content, nil
}

// reserveSlot counts the request against the rolling hourly window.
func (c *Client) reserveSlot() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if now.Sub(c.windowStart) >= time.Hour {
		c.windowStart = now
		c.requests = 0
	}

	if c.requests >= c.maxPerHour {
		return ErrRateLimited
	}

	c.requests++

	return nil
}
