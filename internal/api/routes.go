package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/placeholder", s.placeholderHandler)
		api.GET("/qr", qrHandler)
		api.POST("/filter", s.filterHandler)
		api.POST("/catalog/generate", s.generateCatalogHandler)
	}
}
