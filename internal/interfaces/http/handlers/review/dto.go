package review

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/review/usecases"
	"revu/internal/shared/errors"
)

type CreateReviewRequest struct {
	Rating   *int   `json:"rating" binding:"required,gte=0,lte=5"`
	Headline string `json:"headline" binding:"required,max=128"`
	Body     string `json:"body" binding:"max=8192"`
}

func (r *CreateReviewRequest) ToCommand(ticketID, actorID uint) usecases.CreateReviewCommand {
	return usecases.CreateReviewCommand{
		TicketID: ticketID,
		Rating:   *r.Rating,
		Headline: r.Headline,
		Body:     r.Body,
		ActorID:  actorID,
	}
}

type UpdateReviewRequest struct {
	Rating   *int   `json:"rating" binding:"required,gte=0,lte=5"`
	Headline string `json:"headline" binding:"required,max=128"`
	Body     string `json:"body" binding:"max=8192"`
}

func (r *UpdateReviewRequest) ToCommand(reviewID, actorID uint) usecases.UpdateReviewCommand {
	return usecases.UpdateReviewCommand{
		ReviewID: reviewID,
		ActorID:  actorID,
		Rating:   *r.Rating,
		Headline: r.Headline,
		Body:     r.Body,
	}
}

// CreateTicketWithReviewRequest carries both halves of the composite form.
type CreateTicketWithReviewRequest struct {
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description" binding:"max=2048"`
	Image       string `json:"image" binding:"max=500"`
	Rating      *int   `json:"rating" binding:"required,gte=0,lte=5"`
	Headline    string `json:"headline" binding:"required,max=128"`
	Body        string `json:"body" binding:"max=8192"`
}

func (r *CreateTicketWithReviewRequest) ToCommand(actorID uint) usecases.CreateTicketWithReviewCommand {
	return usecases.CreateTicketWithReviewCommand{
		TicketTitle:       r.Title,
		TicketDescription: r.Description,
		TicketImage:       r.Image,
		Rating:            *r.Rating,
		Headline:          r.Headline,
		Body:              r.Body,
		ActorID:           actorID,
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("ticket_id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid ticket ID")
	}
	return uint(id), nil
}

func parseReviewID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("review_id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid review ID")
	}
	return uint(id), nil
}
