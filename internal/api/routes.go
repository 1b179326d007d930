package api

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Zuo-Peng/claude-history/internal/history"
	"github.com/Zuo-Peng/claude-history/internal/log"
)

// NewRouter builds the gin engine with logging, recovery and gzip.
func NewRouter(reader *history.Reader) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(log.GinLogger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	SetupRoutes(r, NewHandlers(reader))
	return r
}

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	api.GET("/stats", h.GetStats)
	api.GET("/projects", h.GetProjects)
	api.GET("/conversations", h.GetConversations)
	api.GET("/conversation/:sessionId", h.GetConversation)
	api.GET("/search", h.Search)
}
