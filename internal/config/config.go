package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultHFAPIURL = "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-2"

type Config struct {
	AssetsDir      string
	ItemsDir       string
	ReferenceImage string
	CatalogPath    string
	FontPath       string
	StartIndex     int
	QRBadge        bool

	Port     string
	LogLevel string

	HFAPIURL    string
	HFToken     string
	AIDelay     time.Duration
	HTTPTimeout time.Duration
}

// Load reads the configuration from the environment. Relative paths other
// than AssetsDir are resolved against AssetsDir.
func Load() (Config, error) {
	cfg := Config{
		AssetsDir:      getEnv("ASSETS_DIR", "src/assets"),
		ItemsDir:       getEnv("ITEMS_DIR", "images/items"),
		ReferenceImage: getEnv("REFERENCE_IMAGE", "images/items/image1.png"),
		CatalogPath:    getEnv("CATALOG_PATH", "data.json"),
		FontPath:       getEnv("FONT_PATH", "arial.ttf"),
		StartIndex:     getEnvInt("START_INDEX", 20),
		QRBadge:        getEnvBool("QR_BADGE", false),
		Port:           getEnv("PORT", "8080"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		HFAPIURL:       getEnv("HF_API_URL", defaultHFAPIURL),
		HFToken:        strings.TrimSpace(os.Getenv("HF_TOKEN")),
		AIDelay:        time.Duration(getEnvInt("AI_DELAY_SECONDS", 5)) * time.Second,
		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 60)) * time.Second,
	}

	if cfg.StartIndex < 0 {
		return Config{}, errors.New("START_INDEX must not be negative")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, errors.New("PORT must be numeric")
	}
	if cfg.AIDelay < 0 {
		cfg.AIDelay = 0
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}

	cfg.ItemsDir = cfg.resolve(cfg.ItemsDir)
	cfg.ReferenceImage = cfg.resolve(cfg.ReferenceImage)
	cfg.CatalogPath = cfg.resolve(cfg.CatalogPath)
	return cfg, nil
}

// RequireAIToken reports an error when the hosted image API has no token.
func (c Config) RequireAIToken() error {
	if c.HFToken == "" {
		return errors.New("HF_TOKEN is required for AI generation")
	}
	return nil
}

func (c Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || strings.Contains(p, "://") {
		return p
	}
	return filepath.Join(c.AssetsDir, p)
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
