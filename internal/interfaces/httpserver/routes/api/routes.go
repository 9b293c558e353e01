package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"film-platform/studio-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates registration of the /api surface.
type Routes struct {
	handlers       *handlers.Provider
	authMiddleware gin.HandlerFunc
	log            zerolog.Logger
}

// NewRoutes builds the /api route registrar.
func NewRoutes(handlerProvider *handlers.Provider, authMiddleware gin.HandlerFunc, log zerolog.Logger) *Routes {
	return &Routes{
		handlers:       handlerProvider,
		authMiddleware: authMiddleware,
		log:            log,
	}
}

// Register attaches all routes under the /api prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/api")
	if r.authMiddleware != nil {
		group.Use(r.authMiddleware)
	}
	registerSystemRoutes(group, r.handlers.System)
	registerToolRoutes(group, r.handlers.Tool, r.log)
	registerProjectRoutes(group, r.handlers.Project, r.log)
}
