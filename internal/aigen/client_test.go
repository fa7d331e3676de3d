package aigen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/suitcasegen/internal/catalog"
)

func TestPrompt(t *testing.T) {
	p := catalog.Product{Name: "Acme Tote", Color: "blue", Size: "L"}
	assert.Equal(t, "blue L suitcase with handle, studio photo, white background, product photo, no text", Prompt(p))

	p = catalog.Product{Name: "Plain"}
	assert.Equal(t, "grey  suitcase with handle, studio photo, white background, product photo, no text", Prompt(p))
}

func TestGenerate_Success(t *testing.T) {
	var got inferenceRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG fake"))
	}))
	defer srv.Close()

	c := New(Options{APIURL: srv.URL, Token: "secret", HTTPClient: srv.Client()})
	b, err := c.Generate(context.Background(), " red S suitcase ")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG fake"), b)
	assert.Equal(t, "red S suitcase", got.Inputs)
}

func TestGenerate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Model is loading"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(Options{APIURL: srv.URL, Token: "secret", HTTPClient: srv.Client()})
	_, err := c.Generate(context.Background(), "prompt")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Model is loading")
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	c := New(Options{APIURL: "http://127.0.0.1:1", HTTPClient: http.DefaultClient})
	_, err := c.Generate(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestGenerate_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(Options{APIURL: srv.URL, HTTPClient: srv.Client()})
	_, err := c.Generate(ctx, "prompt")
	assert.ErrorIs(t, err, context.Canceled)
}
