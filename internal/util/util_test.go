package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirAndFileExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.False(t, FileExists(dir))
	require.NoError(t, EnsureDir(dir))
	assert.True(t, FileExists(dir))
}

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			_, _ = w.Write([]byte("payload"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	b, err := GetBytes(context.Background(), srv.Client(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))

	_, err = GetBytes(context.Background(), srv.Client(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "404")
}

func TestNewHTTPClient(t *testing.T) {
	assert.Equal(t, 60*time.Second, NewHTTPClient(0).Timeout)
	assert.Equal(t, 5*time.Second, NewHTTPClient(5*time.Second).Timeout)
}
