package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes registers middleware and endpoints on router.
func SetupRoutes(router *gin.Engine, h *Handler, logger logrus.FieldLogger) {
	router.Use(RequestID(), accessLog(logger))

	router.GET("/health", h.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/arbitrage/cycles", h.DetectCycles)
		v1.POST("/arbitrage/check", h.CheckArbitrage)
	}
}

// NewRouter returns a gin engine with recovery and all routes installed.
func NewRouter(h *Handler, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	SetupRoutes(router, h, logger)

	return router
}

func accessLog(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
			"request_id": c.GetString(requestIDKey),
		}).Debug("request")
	}
}
