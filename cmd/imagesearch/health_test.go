package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthCommand_Healthy(t *testing.T) {
	setupHome(t)
	url := startMockAPI(t, false)

	stdout, _, err := executeCommand("health", "--api-url", url)
	require.NoError(t, err)
	require.Contains(t, stdout, "Backend "+url)
	require.Contains(t, stdout, "is healthy")
}

func TestHealthCommand_Unhealthy(t *testing.T) {
	setupHome(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))
	t.Cleanup(srv.Close)

	_, _, err := executeCommand("health", "--api-url", srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to reach backend")
	require.Contains(t, err.Error(), `backend status "degraded"`)
}

func TestHealthCommand_InvalidURL(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("health", "--api-url", "ftp://example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "api.base_url")
}

func TestBrowseCommand_RequiresTerminal(t *testing.T) {
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		t.Skip("test binary is attached to a terminal")
	}
	setupHome(t)

	_, _, err := executeCommand("browse", "mountains")
	require.Error(t, err)
	require.ErrorIs(t, err, errNotTerminal)
}
