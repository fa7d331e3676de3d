package imagepkg

import (
	"bytes"
	"context"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/youruser/suitcasegen/internal/util"
)

// DownloadImage fetches and decodes an image from url.
func DownloadImage(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	body, err := util.GetBytes(ctx, client, url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}

// OpenReference decodes the reference image at ref, which may be a local
// path or an http(s) URL.
func OpenReference(ctx context.Context, client *http.Client, ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return DownloadImage(ctx, client, ref)
	}
	return imaging.Open(ref)
}

// ReferenceSize returns the pixel size of the reference image, or the
// default 400x297 canvas when it cannot be read.
func ReferenceSize(ctx context.Context, client *http.Client, ref string, logger *zap.Logger) (int, int) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ref == "" {
		return DefaultWidth, DefaultHeight
	}
	img, err := OpenReference(ctx, client, ref)
	if err != nil {
		logger.Warn("reference image unreadable, using default canvas",
			zap.String("ref", ref),
			zap.Error(err))
		return DefaultWidth, DefaultHeight
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return b.Dx(), b.Dy()
}
