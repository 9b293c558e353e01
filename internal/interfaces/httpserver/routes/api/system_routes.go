package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"film-platform/studio-api/internal/interfaces/httpserver/handlers"
)

func registerSystemRoutes(router gin.IRoutes, handler *handlers.SystemHandler) {
	router.GET("/health", getHealth(handler))
	router.GET("/test-replicate", getProviderProbe(handler))
}

// getHealth godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Router       /api/health [get]
func getHealth(handler *handlers.SystemHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.Health())
	}
}

// getProviderProbe godoc
// @Summary      Probe Replicate connectivity
// @Description  Runs a short prompt against the live provider, or reports demo mode. Always answers 200; check success.
// @Tags         system
// @Produce      json
// @Success      200  {object}  responses.ProbeResponse
// @Router       /api/test-replicate [get]
func getProviderProbe(handler *handlers.SystemHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.Probe(c.Request.Context()))
	}
}
