package routes

import (
	"github.com/gin-gonic/gin"

	reviewhandlers "revu/internal/interfaces/http/handlers/review"
	"revu/internal/interfaces/http/middleware"
)

type ReviewRouteConfig struct {
	ReviewHandler  *reviewhandlers.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupReviewRoutes(engine *gin.Engine, config *ReviewRouteConfig) {
	reviews := engine.Group("/review")
	reviews.Use(config.AuthMiddleware.RequireAuth())
	{
		reviews.POST("/create/:ticket_id/", config.ReviewHandler.CreateReview)

		reviews.GET("/edit/:review_id/", config.ReviewHandler.GetReview)
		reviews.POST("/edit/:review_id/", config.ReviewHandler.UpdateReview)

		reviews.POST("/delete/:review_id/", config.ReviewHandler.DeleteReview)
	}

	// Composite form that creates a ticket and its first review in one step.
	composite := engine.Group("/ticket-review")
	composite.Use(config.AuthMiddleware.RequireAuth())
	{
		composite.POST("/create/", config.ReviewHandler.CreateTicketWithReview)
	}
}
