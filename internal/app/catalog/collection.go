package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"explorar/internal/app/api"
)

// Collection is an in-memory cache of one remote list. Items are replaced
// wholesale on a successful fetch; a failed refresh keeps the last good
// snapshot and surfaces the failure through Err only.
type Collection[T any] struct {
	client  api.Client
	path    string
	window  time.Duration
	timeout time.Duration
	now     func() time.Time

	mu        sync.Mutex
	items     []T
	loading   bool
	err       string
	lastFetch time.Time
}

func newCollection[T any](client api.Client, path string, window, timeout time.Duration) *Collection[T] {
	return &Collection[T]{
		client:  client,
		path:    path,
		window:  window,
		timeout: timeout,
		now:     time.Now,
	}
}

// Fetch refreshes the collection unless the cached copy is still inside
// the freshness window. Errors never propagate; they land in Err.
func (c *Collection[T]) Fetch(ctx context.Context, forceRefresh bool) {
	c.mu.Lock()
	if !forceRefresh && len(c.items) > 0 && c.now().Sub(c.lastFetch) < c.window {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	resp, err := c.client.Get(ctx, c.path, &api.Options{Timeout: c.timeout})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.err = errorMessage(err)
		return
	}

	fresh := decodeList[T](resp.Data)
	c.lastFetch = c.now()
	c.err = ""
	if reflect.DeepEqual(c.items, fresh) {
		// Identical payload: refreshing items would ripple a spurious
		// diff into change detection.
		return
	}
	c.items = fresh
}

// Items returns the cached snapshot. Callers must treat it as read-only.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err is the display-only message from the last failed fetch, empty when
// the last fetch succeeded.
func (c *Collection[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Collection[T]) LastFetch() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastFetch
}

// decodeList coerces anything that is not a JSON array to an empty list
// rather than propagating a shape error.
func decodeList[T any](data json.RawMessage) []T {
	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}
	}
	return items
}

func errorMessage(err error) string {
	var httpErr *api.HTTPError
	switch {
	case errors.Is(err, api.ErrTimeout):
		return "La solicitud tardó demasiado"
	case errors.As(err, &httpErr):
		return fmt.Sprintf("Error del servidor (%d)", httpErr.Status)
	default:
		return "Error de red"
	}
}
