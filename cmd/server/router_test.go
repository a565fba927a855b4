package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedex/gamedex-api/internal/config"
	"github.com/gamedex/gamedex-api/internal/platform/metrics"
)

// newTestApplication wires an application around the seeded in-memory
// store, mirroring the no-database startup path.
func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		},
		logger:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
		gameStore: newSeededMemoryStore(),
		metrics:   metrics.NewManager(),
	}
}

// The metrics manager registers on the process-global Prometheus
// registry, so the router under test is built exactly once.
var testApp = newTestApplication()

func TestRouterWiring(t *testing.T) {
	server := httptest.NewServer(testApp.setupRouter())
	defer server.Close()

	t.Run("health_endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer func() { require.NoError(t, resp.Body.Close()) }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "OK", string(body))
	})

	t.Run("catalog_routes_mounted", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/videogame/")
		require.NoError(t, err)
		defer func() { require.NoError(t, resp.Body.Close()) }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var games []json.RawMessage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
		assert.Len(t, games, 3)
	})

	t.Run("metrics_endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)
		defer func() { require.NoError(t, resp.Body.Close()) }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		// The catalog request above must have been counted.
		assert.Contains(t, string(body), "gamedex_http_requests_total")
	})
}

// cleanup runs via defer on every exit path of run, including the
// in-memory configuration where no database handle exists.
func TestCleanupWithoutDatabase(t *testing.T) {
	app := &application{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	}

	assert.NotPanics(t, app.cleanup)
}

func TestSeededMemoryStoreMatchesMigrationSeed(t *testing.T) {
	s := newSeededMemoryStore()

	games, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, int64(1), games[0].ID)
	assert.Equal(t, "Elden Ring", games[1].Title)
}
