package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/antcolony/distcache"
	"github.com/katalvlaran/antcolony/internal/server"
	"github.com/stretchr/testify/require"
)

const body = `{
  "start": "Rome",
  "colony": {"ants": 10, "iterations": 8, "seed": 3, "zero_policy": "uniform"},
  "nodes": [
    {"label": "Berlin", "lat": 52.52,   "lon": 13.405},
    {"label": "Paris",  "lat": 48.8566, "lon": 2.3522},
    {"label": "Rome",   "lat": 41.9028, "lon": 12.4964},
    {"label": "Madrid", "lat": 40.4168, "lon": -3.7038}
  ]
}`

func post(t *testing.T, h http.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// TestHealthz answers ok.
func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	server.New(server.Options{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

// TestSolve_RoundTrip solves a small problem and checks the response shape.
func TestSolve_RoundTrip(t *testing.T) {
	store, err := distcache.NewFileStore(t.TempDir())
	require.NoError(t, err)
	srv := server.New(server.Options{Store: store})

	rec := post(t, srv, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Found)
	require.Len(t, resp.Tour, 4)
	require.Equal(t, "Rome", resp.Tour[0])
	require.ElementsMatch(t, []string{"Berlin", "Paris", "Rome", "Madrid"}, resp.Tour)
	require.Positive(t, resp.Length)
	require.Equal(t, 8, resp.Iterations)

	_, err = uuid.Parse(resp.ID)
	require.NoError(t, err)
	require.Equal(t, resp.ID, rec.Header().Get("X-Run-ID"))

	// Same seed, warm cache: identical answer.
	again := post(t, srv, body)
	var resp2 server.Response
	require.NoError(t, json.NewDecoder(again.Body).Decode(&resp2))
	require.Equal(t, resp.Tour, resp2.Tour)
	require.Equal(t, resp.Length, resp2.Length)
	require.NotEqual(t, resp.ID, resp2.ID)
}

// TestSolve_BadRequests maps input problems to 4xx statuses.
func TestSolve_BadRequests(t *testing.T) {
	srv := server.New(server.Options{MaxNodes: 3})

	cases := []struct {
		name    string
		payload string
		status  int
	}{
		{"malformed", `{`, http.StatusBadRequest},
		{"unknown field", `{"nodez": []}`, http.StatusBadRequest},
		{"no nodes", `{"nodes": []}`, http.StatusBadRequest},
		{"bad option", `{"colony": {"ants": 0}, "nodes": [{"label":"a"},{"label":"b"}]}`, http.StatusBadRequest},
		{"unknown start", `{"start": "z", "nodes": [{"label":"a"},{"label":"b","lat":1}]}`, http.StatusBadRequest},
		{"duplicate", `{"nodes": [{"label":"a"},{"label":"a"}]}`, http.StatusBadRequest},
		{"too many", `{"nodes": [{"label":"a"},{"label":"b"},{"label":"c"},{"label":"d"}]}`, http.StatusRequestEntityTooLarge},
		{"coincident", `{"nodes": [{"label":"a"},{"label":"b"}]}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, srv, tc.payload)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())

			var e struct {
				ID    string `json:"id"`
				Error string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&e))
			require.NotEmpty(t, e.Error)
			require.NotEmpty(t, e.ID)
		})
	}
}

// TestSolve_WorkLimits rejects colonies larger than the configured bounds
// before any work is done.
func TestSolve_WorkLimits(t *testing.T) {
	srv := server.New(server.Options{MaxAnts: 20, MaxIterations: 100})
	nodes := `"nodes": [{"label":"a"},{"label":"b","lat":1}]`

	cases := []struct {
		name    string
		colony  string
		status  int
		message string
	}{
		{"ants", `{"ants": 100000000, "iterations": 5}`, http.StatusRequestEntityTooLarge, "ants"},
		{"iterations", `{"ants": 5, "iterations": 1000000000}`, http.StatusRequestEntityTooLarge, "iterations"},
		{"at the limit", `{"ants": 20, "iterations": 100, "zero_policy": "uniform"}`, http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, srv, `{"colony": `+tc.colony+`, `+nodes+`}`)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			if tc.message != "" {
				require.Contains(t, rec.Body.String(), "too many "+tc.message)
			}
		})
	}

	// The defaults apply when no bound is given.
	rec := post(t, server.New(server.Options{}), `{"colony": {"ants": 1001}, `+nodes+`}`)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// TestSolve_CancelledRequest stops the colony when the client goes away.
func TestSolve_CancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	server.New(server.Options{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), "context canceled")
}

// TestSolve_MethodNotAllowed relies on the router.
func TestSolve_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	server.New(server.Options{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/solve", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
