// Package app wires the client-side data subsystem: remote collection
// caches, change detection, the notification inbox, watch history, the
// analytics queue and the session-scoped hidden sets. One App is built
// at process start and handed to the UI layer.
package app

import (
	"context"

	"explorar/internal/app/analytics"
	"explorar/internal/app/api"
	"explorar/internal/app/catalog"
	"explorar/internal/app/changes"
	"explorar/internal/app/history"
	"explorar/internal/app/notification"
	"explorar/internal/app/session"
	"explorar/internal/app/store"
)

type App struct {
	Catalog       *catalog.Service
	Notifications *notification.Service
	Detector      *changes.Detector
	History       *history.Service
	Analytics     *analytics.Service
	Session       *session.Service
}

func New(client api.Client, blob store.BlobStore) *App {
	notifications := notification.NewService(blob)

	return &App{
		Catalog:       catalog.NewService(client),
		Notifications: notifications,
		Detector:      changes.NewDetector(notifications),
		History:       history.NewService(blob),
		Analytics:     analytics.NewService(client),
		Session:       session.NewService(),
	}
}

// Load restores the persisted stores. Failures degrade to empty state.
func (a *App) Load(ctx context.Context) {
	a.Notifications.Load(ctx)
	a.History.Load(ctx)
}

// Snapshot captures all three cached collections at once so change
// detection always compares a consistent before/after pairing.
func (a *App) Snapshot() changes.Snapshot {
	return changes.Snapshot{
		Careers:      a.Catalog.Careers.Items(),
		Tours:        a.Catalog.Tours.Items(),
		Testimonials: a.Catalog.Testimonials.Items(),
	}
}
