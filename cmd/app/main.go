// The headless app runtime: polls the catalog, runs change detection
// against the notification inbox and ships analytics batches. The
// mobile shell embeds the same internal/app packages; this binary keeps
// them running end to end against a live backend.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"explorar/internal/app"
	"explorar/internal/app/analytics"
	"explorar/internal/app/api"
	"explorar/internal/app/store"
	"explorar/internal/config"
)

const pollInterval = 5 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	blob, err := store.NewSQLiteStore(cfg.AppDBPath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer blob.Close()

	client := api.NewClient(cfg.APIBaseURL)
	a := app.New(client, blob)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Load(ctx)
	a.Analytics.InitSession(ctx, cfg.AppVersion)

	// Prime every cache before the first comparison so startup does not
	// look like a wave of additions.
	a.Catalog.Careers.Fetch(ctx, false)
	a.Catalog.Tours.Fetch(ctx, false)
	a.Catalog.Testimonials.Fetch(ctx, false)

	poll := time.NewTicker(pollInterval)
	defer poll.Stop()
	flush := time.NewTicker(analytics.FlushInterval)
	defer flush.Stop()

	log.Printf("Polling %s every %s", cfg.APIBaseURL, pollInterval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down, flushing analytics")
			flushCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			a.Analytics.Flush(flushCtx)
			cancel()
			return

		case <-poll.C:
			prev := a.Snapshot()
			// Careers ride the same tick; their longer freshness window
			// means most ticks serve them from cache.
			a.Catalog.Careers.Fetch(ctx, false)
			a.Catalog.Tours.Fetch(ctx, true)
			a.Catalog.Testimonials.Fetch(ctx, true)
			a.Detector.DetectChanges(ctx, a.Snapshot(), prev)

		case <-flush.C:
			a.Analytics.Flush(ctx)
		}
	}
}
