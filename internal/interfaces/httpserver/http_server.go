package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	studioapidocs "film-platform/studio-api/docs/swagger"
	"film-platform/studio-api/internal/config"
	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/domain/tool"
	"film-platform/studio-api/internal/infrastructure/auth"
	"film-platform/studio-api/internal/interfaces/httpserver/handlers"
	"film-platform/studio-api/internal/interfaces/httpserver/middlewares"
	"film-platform/studio-api/internal/interfaces/httpserver/routes"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg         *config.Config
	engine      *gin.Engine
	log         zerolog.Logger
	handlerProv *handlers.Provider
	routeProv   *routes.Provider
	readiness   []ReadinessCheck
}

// New constructs the HTTP server with default middleware and routes.
func New(
	cfg *config.Config,
	log zerolog.Logger,
	registry *tool.Registry,
	executionService execution.Service,
	projectService project.Service,
	authValidator *auth.Validator,
	readiness ...ReadinessCheck,
) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	studioapidocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))
	engine.Use(middlewares.TracingMiddleware(cfg.ServiceName))
	engine.Use(middlewares.LoggingMiddleware(log))
	engine.Use(middlewares.MetricsMiddleware())

	var authMiddleware gin.HandlerFunc
	if authValidator != nil {
		authMiddleware = authValidator.Middleware()
	}

	handlerProvider := handlers.NewProvider(cfg.ServiceName, registry, executionService, projectService)
	routeProvider := routes.NewProvider(handlerProvider, authMiddleware, log)

	s := &HttpServer{
		cfg:         cfg,
		engine:      engine,
		log:         log,
		handlerProv: handlerProvider,
		routeProv:   routeProvider,
		readiness:   readiness,
	}
	if authValidator != nil {
		s.readiness = append(s.readiness, func(context.Context) error {
			if !authValidator.Ready() {
				return errors.New("auth validator not ready")
			}
			return nil
		})
	}
	s.registerCoreRoutes()
	return s
}

// Handler exposes the gin engine, mainly for tests.
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *HttpServer) registerCoreRoutes() {
	system := s.handlerProv.System

	s.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, system.Root())
	})

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	s.engine.GET("/readyz", func(c *gin.Context) {
		for _, check := range s.readiness {
			if err := check(c.Request.Context()); err != nil {
				s.log.Warn().Err(err).Msg("readiness check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "mode": system.Mode()})
	})

	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.routeProv.Register(s.engine)
}
