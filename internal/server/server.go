package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/auth"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/config"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/handlers"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/logger"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/middleware"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/object"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/postgres"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	db         *gorm.DB
	images     *object.ImageStore
}

// New creates a new server instance
func New(cfg *config.Config, db *gorm.DB, images *object.ImageStore) *Server {
	return &Server{
		config: cfg,
		db:     db,
		images: images,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestLog())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	tokens := auth.NewTokenManager(s.config.Auth.JWTSecret, s.config.Auth.TokenTTL)
	router.Use(middleware.Principal(tokens, s.config.Auth.CookieName))

	eventRepo := postgres.NewPostgresEventRepository(s.db)
	userRepo := postgres.NewPostgresUserRepository(s.db)

	eventHandler := handlers.NewEventHandler(eventRepo)
	statsHandler := handlers.NewStatsHandler(eventRepo)
	volunteerHandler := handlers.NewVolunteerHandler(eventRepo)
	authHandler := handlers.NewAuthHandler(userRepo, tokens, s.config.Auth.CookieName)
	userHandler := handlers.NewUserHandler(userRepo)
	uploadHandler := handlers.NewUploadHandler(s.images, s.config.Upload.MaxFileSize)

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		status := "healthy"
		if err := postgres.HealthCheck(s.db); err != nil {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Ganitha Sawiya tracker is running",
			"status":  status,
		})
	})

	s.setupAPIRoutes(router, eventHandler, statsHandler, volunteerHandler, authHandler, userHandler, uploadHandler)

	return router
}

// setupAPIRoutes configures all API routes
func (s *Server) setupAPIRoutes(
	router *gin.Engine,
	eventHandler *handlers.EventHandler,
	statsHandler *handlers.StatsHandler,
	volunteerHandler *handlers.VolunteerHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	uploadHandler *handlers.UploadHandler,
) {
	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.GetAllEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("", middleware.RequireAuth(), eventHandler.CreateEvent)
			events.PUT("/:id", middleware.RequireAuth(), eventHandler.UpdateEvent)
			events.DELETE("/:id", middleware.RequireAuth(), eventHandler.DeleteEvent)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/dashboard", statsHandler.GetDashboard)
			stats.GET("/scoreboard", statsHandler.GetScoreboard)
			stats.GET("/overdue", middleware.RequireAuth(), statsHandler.GetOverdue)
		}

		api.GET("/volunteers", middleware.RequireAuth(), volunteerHandler.ListVolunteers)

		adminRoutes := api.Group("/admin", middleware.RequireSuperAdmin())
		{
			adminRoutes.GET("/users", userHandler.ListUsers)
			adminRoutes.POST("/users/reset", userHandler.ResetPassword)
		}

		api.PUT("/profile/password", middleware.RequireAuth(), userHandler.ChangePassword)

		api.POST("/upload", middleware.RequireAuth(), uploadHandler.UploadImage)
	}
}
