// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the paced, retrying HTTP client shared by the
// ADS, OpenAlex and remote data-source stages.
package httputil

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// MaxRetryAfter caps a server-provided Retry-After delay.
var MaxRetryAfter = 2 * time.Minute

const defaultMaxRetries = 5

// Client wraps an *http.Client with request pacing and 429 retries.
type Client struct {
	HTTP *http.Client

	// Limiter paces outgoing requests. Nil disables pacing.
	Limiter *rate.Limiter

	// MaxRetries bounds the retries after a 429. Zero uses the default (5).
	MaxRetries int

	// UserAgent is set on requests that do not carry one.
	UserAgent string

	Logger *slog.Logger
}

// NewClient returns a Client with the given timeout and rate. A
// non-positive perSecond disables pacing.
func NewClient(timeout time.Duration, perSecond float64, maxRetries int, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		HTTP:       &http.Client{Timeout: timeout},
		MaxRetries: maxRetries,
		Logger:     logger,
	}
	if perSecond > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
	return c
}

// Do sends req, waiting on the limiter before every attempt. On HTTP 429
// it backs off and retries: the delay is the server's Retry-After when
// given, otherwise RetryBaseDelay doubled per attempt. After exhausting
// retries the last 429 response is returned so the caller can inspect it.
// Context cancellation during a wait returns ctx.Err().
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	maxRetries := c.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	for attempt := 0; ; attempt++ {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resp, err := hc.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		backoff := retryAfter(resp.Header.Get("Retry-After"))
		if backoff <= 0 {
			backoff = time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		logger.Warn("rate limited",
			"url", req.URL.Redacted(),
			"backoff", backoff,
			"attempt", attempt+1,
			"max_retries", maxRetries)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP
// date. It returns zero when the header is absent or unusable.
func retryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if t, err := http.ParseTime(v); err == nil {
		d = time.Until(t)
	}
	if d <= 0 {
		return 0
	}
	if d > MaxRetryAfter {
		d = MaxRetryAfter
	}
	return d
}
