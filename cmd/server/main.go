package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/youruser/suitcasegen/internal/api"
	"github.com/youruser/suitcasegen/internal/catalog"
	"github.com/youruser/suitcasegen/internal/config"
	imagepkg "github.com/youruser/suitcasegen/internal/image"
	"github.com/youruser/suitcasegen/internal/logging"
	"github.com/youruser/suitcasegen/internal/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer logger.Sync()

	// Load the catalog at startup (best-effort)
	if ps, err := catalog.LoadCatalog(cfg.CatalogPath); err != nil {
		logger.Warn("catalog not loaded at startup", zap.String("path", cfg.CatalogPath), zap.Error(err))
	} else {
		logger.Info("catalog loaded", zap.Int("products", len(ps)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	width, height := imagepkg.ReferenceSize(ctx, util.NewHTTPClient(cfg.HTTPTimeout), cfg.ReferenceImage, logger)
	fonts, _ := imagepkg.ProbeFont(cfg.FontPath)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewEngine(&api.Server{
		Renderer: imagepkg.NewRenderer(imagepkg.Options{
			Fonts:   fonts,
			QRBadge: cfg.QRBadge,
			Logger:  logger,
		}),
		CatalogPath: cfg.CatalogPath,
		ItemsDir:    cfg.ItemsDir,
		StartIndex:  cfg.StartIndex,
		Width:       width,
		Height:      height,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
