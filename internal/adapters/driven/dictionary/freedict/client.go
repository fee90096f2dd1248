package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexi-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.DictionaryClient = (*Client)(nil)

// HeaderRequestID carries the per-lookup correlation id.
const HeaderRequestID = "X-Request-ID"

// Client fetches dictionary entries from the Free Dictionary API.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a client from dictionary settings.
func NewClient(settings domain.DictionarySettings, opts ...Option) (*Client, error) {
	c := &Client{
		// No Timeout: a lookup waits until the transport settles or ctx is done.
		httpClient: &http.Client{},
	}
	if err := c.Configure(settings); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Configure swaps the base URL, user agent and rate limit.
// In-flight lookups keep the settings they started with.
func (c *Client) Configure(settings domain.DictionarySettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("freedict: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(settings.BaseURL, "/")
	c.userAgent = settings.UserAgent
	c.limiter = newLimiter(settings.RateLimit)
	return nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// Lookup issues one GET for word and decodes the entry list.
func (c *Client) Lookup(ctx context.Context, word string) ([]domain.DictionaryEntry, error) {
	c.mu.RLock()
	baseURL, userAgent, limiter := c.baseURL, c.userAgent, c.limiter
	c.mu.RUnlock()

	requestID := uuid.New().String()
	reqURL := baseURL + "/" + url.PathEscape(word)
	logger.Debug("freedict request id=%s url=%s", requestID, reqURL)

	if err := wait(ctx, limiter); err != nil {
		return nil, transportError("rate limit wait", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportError("create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("freedict request id=%s failed: %v", requestID, err)
		return nil, transportError("request failed", err)
	}
	defer resp.Body.Close()
	logger.Debug("freedict response id=%s status=%d in %s",
		requestID, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Word: word}
	}

	var entries []domain.DictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		logger.Warn("freedict response id=%s: decode failed: %v", requestID, err)
		return nil, transportError("decode json", err)
	}

	logger.Debug("freedict response id=%s entries=%d", requestID, len(entries))
	return entries, nil
}
