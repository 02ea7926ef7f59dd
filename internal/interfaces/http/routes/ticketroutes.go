package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "revu/internal/interfaces/http/handlers/ticket"
	"revu/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/ticket")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("/create/", config.TicketHandler.CreateTicket)

		// GET returns the current values for the edit form, POST applies them.
		tickets.GET("/edit/:ticket_id/", config.TicketHandler.GetTicket)
		tickets.POST("/edit/:ticket_id/", config.TicketHandler.UpdateTicket)

		tickets.POST("/delete/:ticket_id/", config.TicketHandler.DeleteTicket)
	}
}
