//go:build integration
// +build integration

package integration_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorar/internal/repository"
	analyticssvc "explorar/internal/service/analytics"
)

func TestAnalyticsIngestFlow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	svc := analyticssvc.NewService(repository.NewAnalyticsRepository(env.DB))
	ctx := context.Background()

	events := []json.RawMessage{
		json.RawMessage(`{"eventType":"app_open","sessionId":"s1","userId":"u1"}`),
		json.RawMessage(`{"eventType":"screen_view","sessionId":"s1","userId":"u1","screenName":"home"}`),
		json.RawMessage(`{"eventType":"screen_view","sessionId":"s1","userId":"u1","screenName":"tours"}`),
	}

	inserted, err := svc.Ingest(ctx, events, "2025-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	counts, err := svc.UserMetrics(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "screen_view", counts[0].EventType)
	assert.Equal(t, int64(2), counts[0].Count)
}
