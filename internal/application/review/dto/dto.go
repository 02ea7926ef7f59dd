package dto

import (
	"time"

	"revu/internal/domain/review"
)

// ReviewDTO is the review representation returned to HTTP handlers.
type ReviewDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Rating    int       `json:"rating"`
	Headline  string    `json:"headline"`
	Body      string    `json:"body,omitempty"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDomain(r *review.Review) *ReviewDTO {
	return &ReviewDTO{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		Rating:    r.Rating(),
		Headline:  r.Headline(),
		Body:      r.Body(),
		OwnerID:   r.OwnerID(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}
