package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/config"
	"github.com/pageza/brewfinder/backend/internal/api"
	"github.com/pageza/brewfinder/backend/internal/database"
	"github.com/pageza/brewfinder/backend/internal/middleware"
	"github.com/pageza/brewfinder/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New wires services, middleware and routes. redisClient may be nil, in
// which case rate limiting is disabled.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *zap.Logger) *Server {
	if cfg.Env.DebugMode() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.AccessLog(log),
		middleware.CORS(cfg.CORS.AllowOrigins),
	)

	var apiMiddleware []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if redisClient != nil {
			limiter := middleware.NewRateLimiter(middleware.NewRedisCounter(redisClient), middleware.RateLimitConfig{
				Window: cfg.RateLimit.Window,
				Limit:  cfg.RateLimit.Requests,
			}, log)
			apiMiddleware = append(apiMiddleware, limiter.Middleware())
		} else {
			log.Warn("rate limiting enabled but no redis client, continuing without it")
		}
	}

	tags := service.NewTagService(service.NewTagStore(db))
	api.RegisterRoutes(router, api.Dependencies{
		Recipes:   service.NewRecipeService(db, tags, log),
		Equipment: service.NewEquipmentService(db),
		Tags:      tags,
		Ping: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
		StrictRanges: cfg.Search.StrictRanges,
		Logger:       log,
	}, apiMiddleware...)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		logger: log,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until Shutdown is called. It returns nil after a clean
// shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
