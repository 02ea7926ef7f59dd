package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/ticket/usecases"
	"revu/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description" binding:"max=2048"`
	Image       string `json:"image" binding:"max=500"`
}

func (r *CreateTicketRequest) ToCommand(actorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		ActorID:     actorID,
	}
}

type UpdateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description" binding:"max=2048"`
	Image       string `json:"image" binding:"max=500"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, actorID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		ActorID:     actorID,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("ticket_id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid ticket ID")
	}
	return uint(id), nil
}
