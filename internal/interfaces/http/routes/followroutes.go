package routes

import (
	"github.com/gin-gonic/gin"

	followhandlers "revu/internal/interfaces/http/handlers/follow"
	"revu/internal/interfaces/http/middleware"
)

type FollowRouteConfig struct {
	FollowHandler  *followhandlers.FollowHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFollowRoutes(engine *gin.Engine, config *FollowRouteConfig) {
	engine.GET("/subscriptions/", config.AuthMiddleware.RequireAuth(), config.FollowHandler.ListSubscriptions)
	engine.POST("/follow/", config.AuthMiddleware.RequireAuth(), config.FollowHandler.FollowUser)
	engine.POST("/unfollow/:user_id/", config.AuthMiddleware.RequireAuth(), config.FollowHandler.UnfollowUser)
}
