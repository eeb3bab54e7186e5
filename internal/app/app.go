package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/pkg/config"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/middleware"

	portfolioHTTP "portfolio-backend/internal/controller/http"
	"portfolio-backend/internal/repo/persistent"
	"portfolio-backend/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "portfolio-backend/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	projectRepo := persistent.NewProjectRepository(db)
	blogRepo := persistent.NewBlogRepository(db)
	testimonialRepo := persistent.NewTestimonialRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(cfg.AdminEmail, cfg.AdminPasswordHash, jwtService, log)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, log)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, redisClient, log)
	testimonialUseCase := usecase.NewTestimonialUseCase(testimonialRepo, log)

	// Initialize HTTP handlers
	authHandler := portfolioHTTP.NewAuthHandler(authUseCase, cfg.CookieSecure, log)
	projectHandler := portfolioHTTP.NewProjectHandler(projectUseCase, log)
	blogHandler := portfolioHTTP.NewBlogHandler(blogUseCase, log)
	testimonialHandler := portfolioHTTP.NewTestimonialHandler(testimonialUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware for the separate frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Every route sees the session state; public read handlers use it to
	// decide what they may expose.
	api.Use(middleware.OptionalAuthMiddleware(jwtService))

	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/session", authHandler.Session)

		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/testimonials", testimonialHandler.ListTestimonials)

		api.GET("/blogs", blogHandler.ListBlogs)
		api.GET("/blogs/tags", blogHandler.GetTags)
		api.GET("/blogs/by-slug/:slug", blogHandler.GetBlogBySlug)
		api.POST("/blogs/by-slug/:slug/views",
			middleware.RateLimitMiddleware(redisClient, 60, time.Minute),
			blogHandler.IncrementViews)
	}

	// Everything below mutates content and is gated on the admin session.
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(jwtService))

	{
		admin.POST("/projects", projectHandler.CreateProject)
		admin.PUT("/projects/:id", projectHandler.UpdateProject)
		admin.DELETE("/projects/:id", projectHandler.DeleteProject)
		admin.POST("/projects/reorder", projectHandler.ReorderProject)
		admin.POST("/projects/:id/toggle-active", projectHandler.ToggleProjectActive)

		admin.POST("/blogs/manage", blogHandler.CreateBlog)
		admin.GET("/blogs/manage/:id", blogHandler.GetBlog)
		admin.PUT("/blogs/manage/:id", blogHandler.UpdateBlog)
		admin.DELETE("/blogs/manage/:id", blogHandler.DeleteBlog)
		admin.POST("/blogs/manage/:id/publish", blogHandler.TogglePublished)
		admin.POST("/blogs/manage/:id/feature", blogHandler.ToggleFeatured)

		admin.POST("/testimonials", testimonialHandler.CreateTestimonial)
		admin.PUT("/testimonials/:id", testimonialHandler.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", testimonialHandler.DeleteTestimonial)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Portfolio backend starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Portfolio backend exited")
}
