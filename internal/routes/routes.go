package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renan-throsa/Golden-leaf/internal/handlers"
	"github.com/renan-throsa/Golden-leaf/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	clerkHandler *handlers.ClerkHandler,
	clientHandler *handlers.ClientHandler,
	resetHandler *handlers.PasswordResetHandler,
	jwtKey []byte,
	authLimiter *middleware.RateLimiter,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/login", authLimiter.Middleware(), authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.POST("/register", clerkHandler.Register)

	reset := r.Group("/password-reset")
	{
		reset.POST("/request", authLimiter.Middleware(), resetHandler.Request)
		reset.POST("/confirm", resetHandler.Confirm)
	}

	// JSON API over the client aggregate
	client := r.Group("/client")
	{
		client.GET("", clientHandler.List)
		client.GET("/search", clientHandler.Search)
		client.GET("/:id", clientHandler.GetByID)
		client.GET("/:id/address", clientHandler.GetAddress)
		client.GET("/:id/card", clientHandler.Card)
		client.POST("", clientHandler.Create)
		client.PUT("/:id", clientHandler.Update)
		client.PUT("/:id/address", clientHandler.UpdateAddress)
	}

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtKey))

	r.POST("/logout", authHandler.Logout)

	account := r.Group("/account")
	{
		account.GET("", clerkHandler.Account)
		account.PUT("", clerkHandler.UpdateAccount)
	}

	return r
}
