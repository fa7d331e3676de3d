package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	imagepkg "github.com/youruser/suitcasegen/internal/image"
)

// Server carries what the handlers need: the renderer, where the catalog and
// item images live, and the default canvas size.
type Server struct {
	Renderer    *imagepkg.Renderer
	CatalogPath string
	ItemsDir    string
	StartIndex  int
	Width       int
	Height      int
	Logger      *zap.Logger

	// generating is held for the length of a catalog batch; the runner
	// assumes it is the only writer of ItemsDir.
	generating sync.Mutex
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// NewEngine returns a gin engine with recovery, request logging and the API
// routes registered.
func NewEngine(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger()))
	RegisterRoutes(r, s)
	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}
