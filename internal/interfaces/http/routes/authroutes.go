package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "revu/internal/interfaces/http/handlers/auth"
	"revu/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes. Signup and login are
// public; logout requires a valid session so the actor can be logged.
func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/signup/", config.AuthHandler.Signup)
		auth.POST("/login/", config.AuthHandler.Login)
		auth.POST("/logout/", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Logout)
	}
}
