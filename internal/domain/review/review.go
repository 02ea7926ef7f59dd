package review

import (
	"fmt"
	"strings"
	"time"
)

const (
	MaxHeadlineLength = 128
	MaxBodyLength     = 8192
	MinRating         = 0
	MaxRating         = 5
)

// Review is a rated response to a ticket. The ticket link, owner and
// creation time are fixed at creation; rating, headline and body may change.
type Review struct {
	id        uint
	ticketID  uint
	rating    int
	headline  string
	body      string
	ownerID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(ticketID uint, rating int, headline, body string, ownerID uint) (*Review, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if err := validateFields(rating, headline, body); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Review{
		ticketID:  ticketID,
		rating:    rating,
		headline:  strings.TrimSpace(headline),
		body:      body,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(
	id uint,
	ticketID uint,
	rating int,
	headline string,
	body string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Review{
		id:        id,
		ticketID:  ticketID,
		rating:    rating,
		headline:  headline,
		body:      body,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) TicketID() uint {
	return r.ticketID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Headline() string {
	return r.headline
}

func (r *Review) Body() string {
	return r.body
}

func (r *Review) OwnerID() uint {
	return r.ownerID
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}

// UpdateDetails replaces the mutable fields. The ticket link, owner and
// creation time are untouched.
func (r *Review) UpdateDetails(rating int, headline, body string) error {
	if err := validateFields(rating, headline, body); err != nil {
		return err
	}

	r.rating = rating
	r.headline = strings.TrimSpace(headline)
	r.body = body
	r.updatedAt = time.Now()
	return nil
}

func validateFields(rating int, headline, body string) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	if len(strings.TrimSpace(headline)) == 0 {
		return fmt.Errorf("headline is required")
	}
	if len(headline) > MaxHeadlineLength {
		return fmt.Errorf("headline exceeds maximum length of %d characters", MaxHeadlineLength)
	}
	if len(body) > MaxBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", MaxBodyLength)
	}
	return nil
}
