package main

import (
	"net/http"
	"os"
	"time"

	"takabet-api/config"
	"takabet-api/handlers"
	"takabet-api/logger"
	"takabet-api/middleware"
	"takabet-api/repositories"
	"takabet-api/seeder"
	"takabet-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}
	config.InitJWT()

	// Initialize database
	db := config.InitDB()

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seeder.Run(db); err != nil {
			logger.Fatal("Seeding failed", "error", err)
		}
		logger.Info("Seeding complete")
		return
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	postRepo := repositories.NewPostRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	postService := services.NewPostService(postRepo, categoryRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	postHandler := handlers.NewPostHandler(postService)

	// Setup router
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Root route
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "TakaBet API is running",
			"version": "1.0.0",
			"endpoints": []string{
				"GET  /api/health",
				"GET  /api/categories",
				"GET  /api/posts",
				"POST /api/auth/login",
			},
		})
	})

	// Health check
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthMiddleware(), authHandler.GetProfile)
		}

		// Category routes
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:slug", categoryHandler.GetCategoryBySlug)

			admin := categories.Group("")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
			{
				admin.POST("", categoryHandler.CreateCategory)
				admin.PUT("/:id", categoryHandler.UpdateCategory)
				admin.DELETE("/:id", categoryHandler.DeleteCategory)
			}
		}

		// Post routes
		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.GetPosts)
			posts.GET("/:slug", postHandler.GetPostBySlug)

			admin := posts.Group("")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
			{
				admin.GET("/admin/all", postHandler.GetAllPostsAdmin)
				admin.POST("", postHandler.CreatePost)
				admin.PUT("/:id", postHandler.UpdatePost)
				admin.DELETE("/:id", postHandler.DeletePost)
			}
		}
	}

	// Unmatched routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	logger.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}
