package routes

import (
	"github.com/gin-gonic/gin"

	feedhandlers "revu/internal/interfaces/http/handlers/feed"
	"revu/internal/interfaces/http/middleware"
)

type FeedRouteConfig struct {
	FeedHandler    *feedhandlers.FeedHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFeedRoutes(engine *gin.Engine, config *FeedRouteConfig) {
	engine.GET("/", config.AuthMiddleware.RequireAuth(), config.FeedHandler.Feed)
	engine.GET("/posts/", config.AuthMiddleware.RequireAuth(), config.FeedHandler.OwnPosts)
}
