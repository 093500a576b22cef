package main

import (
	"canteen/internal/config"
	"canteen/internal/database"
	"canteen/internal/handlers"
	"canteen/internal/logger"
	"canteen/internal/middleware"
	"canteen/internal/migrations"
	"canteen/internal/redis"
	"canteen/internal/repository"
	"canteen/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrations.Run(db, cfg); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize Redis session store
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, redisClient, cfg.JWTSecret, cfg.SessionTTL())
	menuService := services.NewMenuService(menuRepo, feedbackRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, menuRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Setup routes
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestID(), logger.AccessLog())

	auth := router.Group("/api/auth", middleware.RateLimit(rate.Limit(2), 5))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.RequireAuth(cfg.JWTSecret, redisClient), authHandler.Logout)
	}

	api := router.Group("/api", middleware.RequireAuth(cfg.JWTSecret, redisClient))
	{
		api.GET("/menu", menuHandler.ListMenu)
		api.POST("/menu/:id/feedback", feedbackHandler.SubmitFeedback)

		api.POST("/orders", orderHandler.PlaceOrder)
		api.GET("/orders", orderHandler.ListMyOrders)
		api.GET("/orders/:id", orderHandler.GetReceipt)
		api.POST("/orders/:id/payment", orderHandler.RecordPayment)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)
	}

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/menu", menuHandler.ListMenu)
		admin.POST("/menu", menuHandler.AddItem)
		admin.POST("/menu/:id/toggle", menuHandler.ToggleAvailability)

		admin.GET("/orders", orderHandler.ListAllOrders)
		admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	}

	// Start server
	log.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
