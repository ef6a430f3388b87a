package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Name string `json:"name"`
}

func TestPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var payload echoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test", time.Second)

	var result echoPayload
	err := client.PostJSON(context.Background(), "/things", echoPayload{Name: "widget"}, &result)

	require.NoError(t, err)
	assert.Equal(t, "widget", result.Name)
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/things/42", r.URL.Path)
		json.NewEncoder(w).Encode(echoPayload{Name: "widget"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)

	var result echoPayload
	err := client.GetJSON(context.Background(), "/things/42", &result)

	require.NoError(t, err)
	assert.Equal(t, "widget", result.Name)
}

func TestDoJSON_ErrorStatusSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "amount too small"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test", time.Second)

	err := client.PostJSON(context.Background(), "/things", echoPayload{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "amount too small")
}

func TestDoJSON_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.GetJSON(ctx, "/slow", nil)
	assert.Error(t, err)
}
