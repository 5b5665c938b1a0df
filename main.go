package main

import (
	"log"
	"time"

	"resourcely-be/internal/cache"
	"resourcely-be/internal/config"
	"resourcely-be/internal/controllers"
	"resourcely-be/internal/database"
	"resourcely-be/internal/jwt"
	"resourcely-be/internal/middleware"
	"resourcely-be/internal/repository"
	"resourcely-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to MongoDB
	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Disconnect(client) // Close connection when program exits

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	engineerService := service.NewEngineerService(userRepo, assignmentRepo, cacheClient)
	projectService := service.NewProjectService(projectRepo, userRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo, projectRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	engineerController := controllers.NewEngineerController(engineerService)
	projectController := controllers.NewProjectController(projectService)
	assignmentController := controllers.NewAssignmentController(assignmentService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Liveness endpoint (no rate limiting)
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to Resourcely API",
		})
	})

	// API routes group with general rate limiting
	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Login with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/login", authController.Login)
		}

		// Protected routes - require a verified token
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/auth/profile", authController.Profile)

			protected.GET("/engineers", engineerController.List)
			protected.GET("/engineers/:id/capacity", engineerController.GetCapacity)

			protected.GET("/projects", projectController.List)
			protected.POST("/projects", projectController.Create)
			protected.GET("/projects/:id", projectController.Get)

			protected.GET("/assignments", assignmentController.List)
			protected.POST("/assignments", assignmentController.Create)
			protected.PUT("/assignments/:id", assignmentController.Update)
			protected.DELETE("/assignments/:id", assignmentController.Delete)
		}
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
