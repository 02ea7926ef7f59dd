package ticket

import (
	"fmt"
	"strings"
	"time"
)

const (
	MaxTitleLength       = 128
	MaxDescriptionLength = 2048
)

// Ticket is a request for a review of a work (book or article). The owner
// and creation time are fixed at creation; only title, description and
// image may change afterwards.
type Ticket struct {
	id          uint
	title       string
	description string
	image       string
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(title, description, image string, ownerID uint) (*Ticket, error) {
	if err := validateFields(title, description); err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:       strings.TrimSpace(title),
		description: description,
		image:       image,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	image string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		image:       image,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Image() string {
	return t.image
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails replaces the mutable fields. Owner and creation time are
// untouched.
func (t *Ticket) UpdateDetails(title, description, image string) error {
	if err := validateFields(title, description); err != nil {
		return err
	}

	t.title = strings.TrimSpace(title)
	t.description = description
	t.image = image
	t.updatedAt = time.Now()
	return nil
}

func validateFields(title, description string) error {
	if len(strings.TrimSpace(title)) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}
