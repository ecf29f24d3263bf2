// ABOUTME: Tests for the HTTP API handlers.
// ABOUTME: Serves the router with httptest against a temp-directory repository.

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ImFeH2/sylvo/internal/app"
	"github.com/ImFeH2/sylvo/internal/models"
	"github.com/ImFeH2/sylvo/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a test server with routes
func setupTestServer(t *testing.T) (*httptest.Server, *app.State) {
	t.Helper()

	repo, err := store.Open(t.TempDir(), store.DefaultName, store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	state := app.New(repo)

	ts := httptest.NewServer(New(state).Routes())
	t.Cleanup(ts.Close)
	return ts, state
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthCheck(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp := do(t, "GET", ts.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeBody[map[string]string](t, resp)["status"])
}

func TestCardsCRUD(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp := do(t, "POST", ts.URL+"/api/cards", `{"title":"Q","tags":["b","a","a"],"content":"A"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	card := decodeBody[models.Card](t, resp)
	assert.Equal(t, []string{"a", "b"}, card.Tags)
	cardURL := ts.URL + "/api/cards/" + card.ID.String()

	resp = do(t, "GET", cardURL, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, card, decodeBody[models.Card](t, resp))

	for path, body := range map[string]string{
		"/title":   `{"title":"Q2"}`,
		"/tags":    `{"tags":["c"]}`,
		"/content": `{"content":"A2"}`,
	} {
		resp = do(t, "PUT", cardURL+path, body)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.True(t, decodeBody[bool](t, resp), path)
	}

	resp = do(t, "GET", ts.URL+"/api/cards", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]models.Card](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Q2", list[0].Title)
	assert.Equal(t, []string{"c"}, list[0].Tags)
	assert.Equal(t, "A2", list[0].Content)

	resp = do(t, "DELETE", cardURL, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeBody[bool](t, resp))

	resp = do(t, "DELETE", cardURL, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeBody[bool](t, resp))

	resp = do(t, "GET", cardURL, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMissingCard(t *testing.T) {
	ts, _ := setupTestServer(t)
	cardURL := ts.URL + "/api/cards/" + uuid.New().String()

	resp := do(t, "PUT", cardURL+"/title", `{"title":"x"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeBody[bool](t, resp))
}

func TestInvalidRequests(t *testing.T) {
	ts, _ := setupTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"get invalid id", "GET", "/api/cards/nope", "", http.StatusBadRequest},
		{"delete invalid id", "DELETE", "/api/cards/nope", "", http.StatusBadRequest},
		{"rename invalid id", "PUT", "/api/cards/nope/title", `{"title":"x"}`, http.StatusBadRequest},
		{"create invalid json", "POST", "/api/cards", `{invalid`, http.StatusBadRequest},
		{"retag invalid json", "PUT", "/api/cards/" + uuid.New().String() + "/tags", `{invalid`, http.StatusBadRequest},
		{"unknown route", "GET", "/api/nodes", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, ts.URL+tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestStorageErrorIs500(t *testing.T) {
	ts, state := setupTestServer(t)

	path := state.Path()
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(path, "child"), []byte("x"), 0600))

	resp := do(t, "POST", ts.URL+"/api/cards", `{"title":"t"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestWriteJSONLogsEncodeFailure(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, logs.String(), "encode response failed")
	assert.Contains(t, logs.String(), "unsupported type")
}
