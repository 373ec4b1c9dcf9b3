package app

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/renan-throsa/Golden-leaf/docs"
	"github.com/renan-throsa/Golden-leaf/internal/config"
	"github.com/renan-throsa/Golden-leaf/internal/db"
	"github.com/renan-throsa/Golden-leaf/internal/handlers"
	"github.com/renan-throsa/Golden-leaf/internal/middleware"
	"github.com/renan-throsa/Golden-leaf/internal/pdf"
	"github.com/renan-throsa/Golden-leaf/internal/repositories"
	"github.com/renan-throsa/Golden-leaf/internal/routes"
	"github.com/renan-throsa/Golden-leaf/internal/services"
)

func Run() {
	cfg := config.LoadConfig()
	jwtKey := []byte(cfg.Auth.JWTSecret)

	// === DB ===
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to the database: ", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close the database: %v", err)
		}
	}()

	if err := db.Migrate(sqlDB); err != nil {
		log.Fatal("Failed to apply migrations: ", err)
	}

	// === Repos ===
	clerkRepo := repositories.NewClerkRepository(sqlDB)
	clientRepo := repositories.NewClientRepository(sqlDB)
	resetRepo := repositories.NewPasswordResetRepository(sqlDB)

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.App.BaseURL,
	)
	authService := services.NewAuthService(clerkRepo, jwtKey)
	clerkService := services.NewClerkService(clerkRepo, emailService, authService)
	resetService := services.NewPasswordResetService(clerkRepo, resetRepo, emailService, authService, jwtKey)

	var notifier services.NotifyService
	if cfg.Telegram.BotToken != "" {
		notifier, err = services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("Telegram notifications disabled: %v", err)
			notifier = nil
		}
	}
	clientService := services.NewClientService(clientRepo, notifier)

	cardGen := pdf.NewCardGenerator(cfg.Files.RootDir, cfg.Files.FontPath)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService)
	clerkHandler := handlers.NewClerkHandler(clerkService)
	clientHandler := handlers.NewClientHandler(clientService, cardGen)
	resetHandler := handlers.NewPasswordResetHandler(resetService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// login and reset requests share one per-IP budget
	authLimiter := middleware.NewRateLimiter(1, 5)

	routes.SetupRoutes(
		router,
		authHandler,
		clerkHandler,
		clientHandler,
		resetHandler,
		jwtKey,
		authLimiter,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Server error: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
