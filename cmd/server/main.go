package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yutasaki/todo-list-api/internal/config"
	"github.com/yutasaki/todo-list-api/internal/database"
	"github.com/yutasaki/todo-list-api/internal/handlers"
	"github.com/yutasaki/todo-list-api/internal/mail"
	"github.com/yutasaki/todo-list-api/internal/middleware"
	"github.com/yutasaki/todo-list-api/internal/repository"
	"github.com/yutasaki/todo-list-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	lg := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		lg.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.AddIndexes(db); err != nil {
		lg.Fatal().Err(err).Msg("failed to add indexes")
	}

	// Mail dispatcher
	var mailer mail.Mailer
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(cfg, lg)
	} else {
		lg.Warn().Msg("SMTP_HOST not set, using fake mailer")
		mailer = mail.NewFakeMailer()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	otpRepo := repository.NewOTPRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, otpRepo, mailer, cfg.OTPTTL)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Cross-origin requests are permitted from any origin
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.BodySizeLimit())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo List API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.POST("/send-otp", authHandler.SendOTP)
		api.POST("/register-final", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/forgot-password", authHandler.ForgotPassword)
		api.POST("/reset-password", authHandler.ResetPassword)

		api.PATCH("/user/update-photo", userHandler.UpdatePhoto)
		api.DELETE("/user/:userId", userHandler.DeleteAccount)

		api.GET("/tasks/:userId", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PATCH("/tasks/:taskId", taskHandler.ToggleTask)
		api.DELETE("/tasks/:taskId", taskHandler.DeleteTask)
	}

	// Start server
	lg.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		lg.Fatal().Err(err).Msg("failed to start server")
	}
}
