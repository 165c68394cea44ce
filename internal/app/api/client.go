package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRetries = 2
	retryDelay     = 1 * time.Second
	maxRetryDelay  = 10 * time.Second
)

// ErrTimeout marks a request aborted by its deadline. Timeouts and plain
// network failures are retried; HTTP errors are not.
var ErrTimeout = errors.New("request timed out")

// HTTPError is a non-2xx response. The body is kept so callers can
// surface server-provided detail.
type HTTPError struct {
	Status int
	Data   json.RawMessage
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d", e.Status)
}

type Response struct {
	Data   json.RawMessage
	Status int
}

type Options struct {
	Timeout time.Duration
	Retries int
}

// Client is the app's only network dependency. Failures come back as
// ErrTimeout, *HTTPError, or a generic network error.
type Client interface {
	Get(ctx context.Context, path string, opts *Options) (*Response, error)
	Post(ctx context.Context, path string, body any, opts *Options) (*Response, error)
}

type httpClient struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewClient(baseURL string) Client {
	return &httpClient{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		baseURL:   baseURL,
		userAgent: "ExplorAR/1.0",
	}
}

func (h *httpClient) Get(ctx context.Context, path string, opts *Options) (*Response, error) {
	return h.request(ctx, http.MethodGet, path, nil, opts)
}

func (h *httpClient) Post(ctx context.Context, path string, body any, opts *Options) (*Response, error) {
	return h.request(ctx, http.MethodPost, path, body, opts)
}

func (h *httpClient) request(ctx context.Context, method, path string, body any, opts *Options) (*Response, error) {
	timeout := defaultTimeout
	retries := defaultRetries
	if opts != nil {
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		if opts.Retries > 0 {
			retries = opts.Retries
		}
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var lastErr error
	delay := retryDelay
	for attempt := 1; attempt <= retries+1; attempt++ {
		resp, err := h.attempt(ctx, method, path, payload, timeout)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var httpErr *HTTPError
		if errors.As(err, &httpErr) || attempt > retries {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, classify(ctx.Err())
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * 1.5)
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
	return nil, lastErr
}

func (h *httpClient) attempt(ctx context.Context, method, path string, payload []byte, timeout time.Duration) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	// The catalog polls aggressively; intermediaries must not serve
	// cached copies.
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Data: data}
	}

	return &Response{Data: data, Status: resp.StatusCode}, nil
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("network error: %w", err)
}
