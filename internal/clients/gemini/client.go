// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/mattcarrick/advisor/internal/common"
	"github.com/mattcarrick/advisor/internal/interfaces"
)

const (
	DefaultModel      = "gemini-2.0-flash"
	DefaultTimeout    = 60 * time.Second
	DefaultMaxRetries = 2
	DefaultRateLimit  = 5 // requests per second
)

// Client implements the GeminiClient interface. Each call carries its own
// timeout and a bounded retry-with-backoff policy applied to transport
// errors only — content problems are never retried here.
type Client struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	limiter    *rate.Limiter
	logger     *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets the maximum number of retries on transport errors
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *Client) {
		if maxRetries >= 0 {
			c.maxRetries = maxRetries
		}
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:     genaiClient,
		model:      DefaultModel,
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:     common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close closes the client
func (c *Client) Close() error {
	// The genai client doesn't have a Close method
	return nil
}

// GenerateContent generates AI content from a prompt. Transport failures are
// retried up to maxRetries times with doubling backoff; a response with no
// usable text fails immediately.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	contents := genai.Text(prompt)

	var lastErr error
	backoff := time.Second
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug().
				Int("attempt", attempt).
				Err(lastErr).
				Msg("Retrying Gemini request")
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("generate content: %w", ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
		if err == nil {
			return extractTextFromResponse(result)
		}
		if !isRetryable(err) {
			return "", fmt.Errorf("failed to generate content: %w", err)
		}
		lastErr = err
	}

	return "", fmt.Errorf("failed to generate content after %d retries: %w", c.maxRetries, lastErr)
}

// isRetryable reports whether an error is a transient transport condition.
// Rate limiting and server-side errors qualify; client errors (bad request,
// auth) do not.
func isRetryable(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	// Non-API errors are network-level failures
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// Ensure Client implements GeminiClient
var _ interfaces.GeminiClient = (*Client)(nil)
