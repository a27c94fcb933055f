package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/meal-finder/internal/model"
)

// Endpoint constants
const (
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"
	LookupPath     = "/lookup.php"
	LookupParam    = "i"
)

// DefaultUserAgent is sent when Config.UserAgent is empty
const DefaultUserAgent = "MealFinder/1.0 (+https://github.com/ytget/meal-finder)"

// Config holds configuration for the lookup client
type Config struct {
	// Base URL (for testing). Default: DefaultBaseURL
	BaseURL string

	// Timeout for the whole request. Zero leaves the request unbounded apart
	// from the caller's context.
	Timeout time.Duration

	UserAgent string

	// HTTPClient overrides the client built from Timeout
	HTTPClient *http.Client
}

// Client handles communication with the lookup endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new lookup client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Lookup fetches the meals matching id
func (c *Client) Lookup(ctx context.Context, id string) ([]model.MealRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL(id), nil)
	if err != nil {
		return nil, &NetworkError{Op: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "lookup " + id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &NetworkError{Op: "lookup " + id, Status: resp.StatusCode}
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &NetworkError{Op: "decode lookup " + id, Status: resp.StatusCode, Err: err}
	}

	if len(payload.Meals) == 0 {
		return nil, &NotFoundError{ID: id}
	}

	return payload.Meals, nil
}

// lookupURL builds {base}/lookup.php?i={id}
func (c *Client) lookupURL(id string) string {
	query := url.Values{}
	query.Set(LookupParam, id)
	return fmt.Sprintf("%s%s?%s", c.baseURL, LookupPath, query.Encode())
}
