package remote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, "test-token")
	require.NoError(t, err)
	return c
}

func TestNewPreconditions(t *testing.T) {
	_, err := New("", "tok")
	assert.ErrorIs(t, err, ErrNoRemote)

	_, err = New("https://nova.example.com", "")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestAuthHeaderSent(t *testing.T) {
	var gotToken string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(AuthHeader)
		io.WriteString(w, "[]")
	})

	_, err := c.ListDatasets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-token", gotToken)
}

func TestAPIErrorFromErrorField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error": "not found"}`)
	})

	_, err := c.CloneData(context.Background(), "coll", "name")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "not found", apiErr.Message)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestAPIErrorFallbackToMessageField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"message": "token expired"}`)
	})

	err := c.CreateDataset(context.Background(), CreateRequest{Collection: "c", Name: "n"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestAPIErrorFallbackToStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "panic at the server")
	})

	err := c.CreateDataset(context.Background(), CreateRequest{Collection: "c", Name: "n"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestCreateDataset(t *testing.T) {
	var gotPath, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
	})

	err := c.CreateDataset(context.Background(), CreateRequest{
		Collection:  "weather",
		Name:        "hourly",
		Description: "hourly observations",
		Created:     "2026-08-24T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/datasets", gotPath)
	assert.Contains(t, gotBody, `"collection":"weather"`)
	assert.Contains(t, gotBody, `"name":"hourly"`)
}

func TestPushCloneRoundTrip(t *testing.T) {
	payload := []byte("pretend this is a gzip stream")
	var stored []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/api/datasets/weather/hourly/data", r.URL.Path)
			assert.Equal(t, "application/gzip", r.Header.Get("Content-Type"))
			stored, _ = io.ReadAll(r.Body)
		case http.MethodGet:
			w.Write(stored)
		}
	})

	ctx := context.Background()
	require.NoError(t, c.PushData(ctx, "weather", "hourly", bytes.NewReader(payload)))

	stream, err := c.CloneData(ctx, "weather", "hourly")
	require.NoError(t, err)
	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSearch(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		io.WriteString(w, `[{"owner":"alice","collection":"weather","name":"hourly"}]`)
	})

	results, err := c.Search(context.Background(), "hourly weather")
	require.NoError(t, err)
	assert.Equal(t, "hourly weather", gotQuery)
	require.Len(t, results, 1)
	assert.Equal(t, SearchResult{Owner: "alice", Collection: "weather", Name: "hourly"}, results[0])
}

func TestListDatasets(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/datasets", r.URL.Path)
		io.WriteString(w, `[{"name":"hourly","collection":"weather"},{"name":"daily"}]`)
	})

	datasets, err := c.ListDatasets(context.Background())
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	assert.Equal(t, "hourly", datasets[0].Name)
	assert.Equal(t, "daily", datasets[1].Name)
}
