package dto

import "time"

const (
	KindTicket = "ticket"
	KindReview = "review"
)

// TicketSummary is the parent ticket embedded in a review feed item, enough
// to render the review in context without a second request.
type TicketSummary struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	DescriptionHTML string `json:"description_html,omitempty"`
	Image           string `json:"image,omitempty"`
	OwnerID         uint   `json:"owner_id"`
	OwnerUsername   string `json:"owner_username"`
}

// FeedItem is one entry in the merged feed. Kind selects which of the
// ticket or review fields are populated.
type FeedItem struct {
	Kind          string    `json:"kind"`
	ID            uint      `json:"id"`
	OwnerID       uint      `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	CreatedAt     time.Time `json:"created_at"`

	// ticket fields
	Title           string `json:"title,omitempty"`
	DescriptionHTML string `json:"description_html,omitempty"`
	Image           string `json:"image,omitempty"`

	// review fields
	Rating   int            `json:"rating,omitempty"`
	Headline string         `json:"headline,omitempty"`
	BodyHTML string         `json:"body_html,omitempty"`
	Ticket   *TicketSummary `json:"ticket,omitempty"`
}
