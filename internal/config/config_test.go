package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"ASSETS_DIR", "ITEMS_DIR", "REFERENCE_IMAGE", "CATALOG_PATH", "FONT_PATH",
	"START_INDEX", "QR_BADGE", "PORT", "LOG_LEVEL", "HF_API_URL", "HF_TOKEN",
	"AI_DELAY_SECONDS", "HTTP_TIMEOUT_SECONDS",
}

func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "src/assets", cfg.AssetsDir)
	assert.Equal(t, filepath.Join("src/assets", "images/items"), cfg.ItemsDir)
	assert.Equal(t, filepath.Join("src/assets", "images/items/image1.png"), cfg.ReferenceImage)
	assert.Equal(t, filepath.Join("src/assets", "data.json"), cfg.CatalogPath)
	assert.Equal(t, 20, cfg.StartIndex)
	assert.False(t, cfg.QRBadge)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.AIDelay)
	assert.Equal(t, 60*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, defaultHFAPIURL, cfg.HFAPIURL)
	assert.Error(t, cfg.RequireAIToken())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ASSETS_DIR", "/srv/assets")
	t.Setenv("CATALOG_PATH", "/data/products.csv")
	t.Setenv("REFERENCE_IMAGE", "https://cdn.example.com/image1.png")
	t.Setenv("START_INDEX", "0")
	t.Setenv("QR_BADGE", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HF_TOKEN", " token ")
	t.Setenv("AI_DELAY_SECONDS", "-3")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "bogus")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/assets/images/items", cfg.ItemsDir)
	assert.Equal(t, "/data/products.csv", cfg.CatalogPath)
	assert.Equal(t, "https://cdn.example.com/image1.png", cfg.ReferenceImage)
	assert.Equal(t, 0, cfg.StartIndex)
	assert.True(t, cfg.QRBadge)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.AIDelay)
	assert.Equal(t, 60*time.Second, cfg.HTTPTimeout)
	assert.NoError(t, cfg.RequireAIToken())
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("START_INDEX", "-1")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("PORT", "http")
	_, err = Load()
	assert.Error(t, err)
}
