package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/contactmansi/Recipe-Box/config"
	"github.com/contactmansi/Recipe-Box/internal/api"
	"github.com/contactmansi/Recipe-Box/internal/database"
	"github.com/contactmansi/Recipe-Box/internal/middleware"
	"github.com/contactmansi/Recipe-Box/internal/service"
)

// Options carries the dependencies the server wires together. RedisClient
// and ImageStore are optional; nil disables rate limiting and falls back
// to local disk storage respectively.
type Options struct {
	DB          *gorm.DB
	Config      *config.Config
	RedisClient *redis.Client
	ImageStore  service.ImageStore
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New builds the router with all routes and middleware registered.
func New(opts Options) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	// The profile endpoint contract requires 405 rather than 404 for
	// unsupported methods on known routes.
	router.HandleMethodNotAllowed = true

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)
	router.Use(metrics.Middleware())
	router.GET("/metrics", middleware.MetricsHandler(registry))

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), opts.DB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	store := opts.ImageStore
	if store == nil {
		store = service.NewLocalImageStore(opts.Config.UploadDir)
		router.Static("/static", opts.Config.UploadDir)
	}

	authService := service.NewAuthService(opts.DB, opts.Config.JWTSecret)
	userService := service.NewUserService(opts.DB)
	tagService := service.NewTagService(opts.DB)
	ingredientService := service.NewIngredientService(opts.DB)
	recipeService := service.NewRecipeService(opts.DB)
	imageService := service.NewImageService(opts.DB, store)

	var writeLimiter *middleware.RateLimiter
	if opts.RedisClient != nil {
		writeLimiter = middleware.NewWriteRateLimiter(opts.RedisClient)
	}

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authService).RegisterRoutes(v1)
	api.NewProfileHandler(userService, authService).RegisterRoutes(v1)
	api.NewTagHandler(tagService, authService).RegisterRoutes(v1)
	api.NewIngredientHandler(ingredientService, authService).RegisterRoutes(v1)
	api.NewRecipeHandler(recipeService, imageService, authService, writeLimiter).RegisterRoutes(v1)

	return &Server{
		router: router,
		db:     opts.DB,
	}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving on the given port and blocks until the listener
// fails or is shut down.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
