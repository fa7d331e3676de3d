package imagepkg

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrBadgeFrac   = 0.22
	qrBadgeMargin = 4
)

// GenerateQRPNG encodes text as a size x size PNG QR code.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// GenerateQRImage builds the QR code as an image for compositing.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}

// badgeText is the id half of a "name|id" caption, or the caption itself.
func badgeText(caption string) string {
	if _, id, ok := strings.Cut(caption, CaptionSeparator); ok {
		return strings.TrimSpace(id)
	}
	return strings.TrimSpace(caption)
}

// pasteQRBadge stamps a QR code of the caption id onto the top-right corner.
func pasteQRBadge(img image.Image, caption string) (image.Image, error) {
	text := badgeText(caption)
	if text == "" {
		return img, nil
	}
	b := img.Bounds()
	side := int(float64(b.Dy()) * qrBadgeFrac)
	if side < 21 {
		return img, nil
	}
	qr, err := GenerateQRImage(text, 256)
	if err != nil {
		return nil, err
	}
	badge := imaging.Resize(qr, side, side, imaging.NearestNeighbor)
	return imaging.Paste(img, badge, image.Pt(b.Max.X-side-qrBadgeMargin, b.Min.Y+qrBadgeMargin)), nil
}
