package search

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

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
	searcherrors "github.com/alexisbeaulieu97/imagesearch/pkg/errors"
)

const (
	// DefaultBaseURL is used when no backend endpoint is configured.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultTimeout bounds a single request when Options.Timeout is unset.
	DefaultTimeout = 30 * time.Second
	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	imagesPath   = "/get_image"
	healthPath   = "/health"
	maxBodyBytes = 8 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// PageSize is sent as the size parameter when it differs from DefaultPageSize.
	PageSize int
	// RateLimit caps outgoing requests per second. Zero disables throttling.
	RateLimit  float64
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client talks to the image search backend.
type Client struct {
	baseURL  *url.URL
	pageSize int
	http     *http.Client
	limiter  *rate.Limiter
	log      *logger.Logger
}

var _ Fetcher = (*Client)(nil)

// NewClient validates opts and returns a ready Client.
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must use http or https", raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", raw)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}

	return &Client{
		baseURL:  base,
		pageSize: opts.PageSize,
		http:     httpClient,
		limiter:  rate.NewLimiter(limit, 1),
		log:      opts.Logger,
	}, nil
}

// BaseURL returns the configured backend endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchImages runs one search for query at page. The caller guarantees a non-empty
// query and page >= 1. Every failure is a *errors.FetchError.
func (c *Client) FetchImages(ctx context.Context, query string, page int) (ResultSet, error) {
	requestID := uuid.NewString()
	log := c.log.WithFields(logger.Fields{"query": query, "page": page, "request_id": requestID})

	if err := c.limiter.Wait(ctx); err != nil {
		return ResultSet{}, searcherrors.NewRequestFailed(query, page, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.imagesURL(query, page), nil)
	if err != nil {
		return ResultSet{}, searcherrors.NewRequestFailed(query, page, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("search request failed", logger.Fields{"error": err.Error()})
		return ResultSet{}, searcherrors.NewRequestFailed(query, page, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		log.Debug("search returned non-success status", logger.Fields{"status": resp.StatusCode})
		return ResultSet{}, searcherrors.NewRequestFailed(query, page, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return ResultSet{}, searcherrors.NewRequestFailed(query, page, resp.StatusCode, err)
	}

	rs, shape, err := decodeResponse(body, query, page)
	if err != nil {
		log.Debug("search response malformed", logger.Fields{"error": err.Error()})
		return ResultSet{}, searcherrors.NewMalformedResponse(query, page, err)
	}

	log.Debug("search completed", logger.Fields{
		"results":     rs.Len(),
		"shape":       shape.String(),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return rs, nil
}

// Health checks that the backend reports {"status":"ok"}.
func (c *Client) Health(ctx context.Context) error {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: healthPath})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return fmt.Errorf("decode health response: %w", err)
	}
	if payload.Status != "ok" {
		return fmt.Errorf("backend status %q", payload.Status)
	}
	return nil
}

func (c *Client) imagesURL(query string, page int) string {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: imagesPath})
	params := url.Values{}
	params.Set("query_string", query)
	params.Set("page", strconv.Itoa(page))
	if c.pageSize > 0 && c.pageSize != DefaultPageSize {
		params.Set("size", strconv.Itoa(c.pageSize))
	}
	endpoint.RawQuery = params.Encode()
	return endpoint.String()
}
