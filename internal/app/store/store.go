package store

import "context"

// BlobStore is the durable key-value contract the persisted stores write
// through. A missing key yields ("", nil), mirroring an empty slot rather
// than an error, so callers treat it as no prior state.
type BlobStore interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// Storage keys. One key per store so concurrent stores never contend on
// the same slot.
const (
	KeyNotifications = "explorar-notifications"
	KeyTourHistory   = "explorar-tour-history"
)
