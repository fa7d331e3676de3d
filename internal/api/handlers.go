package api

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/suitcasegen/internal/batch"
	"github.com/youruser/suitcasegen/internal/catalog"
	imagepkg "github.com/youruser/suitcasegen/internal/image"
)

const (
	maxCanvasSide = 4096
	maxQRSize     = 2048
)

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func queryInt(c *gin.Context, key string, fallback, lo, hi int) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		return 0, false
	}
	return v, true
}

// placeholder renders one suitcase for the query and returns it as PNG.
func (s *Server) placeholderHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	width, ok := queryInt(c, "width", s.Width, 1, maxCanvasSide)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid width"})
		return
	}
	height, ok := queryInt(c, "height", s.Height, 1, maxCanvasSide)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid height"})
		return
	}

	spec := imagepkg.NewRenderSpec(text, c.Query("color"), c.Query("size"), width, height)
	res, err := s.Renderer.Render(spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, res.Image); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Style-Seed", strconv.FormatInt(res.Seed, 10))
	c.Header("X-Font-Status", res.FontStatus.String())
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size, ok := queryInt(c, "size", 400, 32, maxQRSize)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (s *Server) filterHandler(c *gin.Context) {
	var opt catalog.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	all, err := catalog.LoadCatalog(s.CatalogPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := catalog.Filter(all, opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "products": out})
}

type generateRequest struct {
	StartIndex *int `json:"start_index"`
}

// generateCatalog runs the placeholder batch over the configured catalog.
func (s *Server) generateCatalogHandler(c *gin.Context) {
	if !s.generating.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "catalog generation already running"})
		return
	}
	defer s.generating.Unlock()

	var req generateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	start := s.StartIndex
	if req.StartIndex != nil {
		if *req.StartIndex < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_index must not be negative"})
			return
		}
		start = *req.StartIndex
	}

	products, err := catalog.LoadCatalog(s.CatalogPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	opts := batch.PlaceholderOptions(s.ItemsDir, start)
	opts.Logger = s.logger()
	producer := batch.PlaceholderProducer{Renderer: s.Renderer, Width: s.Width, Height: s.Height}
	rep, err := batch.NewRunner(producer, opts).Run(c.Request.Context(), products)
	if err != nil {
		s.logger().Error("catalog generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "report": rep})
		return
	}
	c.JSON(http.StatusOK, rep)
}
