package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"film-platform/studio-api/internal/interfaces/httpserver/handlers"
	"film-platform/studio-api/internal/interfaces/httpserver/routes/api"
)

// Provider registers every route group on the engine.
type Provider struct {
	api *api.Routes
}

// NewProvider builds the route provider. The auth middleware guards /api.
func NewProvider(handlerProvider *handlers.Provider, authMiddleware gin.HandlerFunc, log zerolog.Logger) *Provider {
	return &Provider{
		api: api.NewRoutes(handlerProvider, authMiddleware, log),
	}
}

// Register attaches all route groups.
func (p *Provider) Register(engine *gin.Engine) {
	p.api.Register(engine)
}
