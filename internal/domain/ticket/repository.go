package ticket

import "context"

// Repository persists tickets. Owner-scoped operations affect only tickets
// owned by the given user, so a missing ticket and a ticket owned by someone
// else are indistinguishable to callers.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*Ticket, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Ticket, error)
	FindByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*Ticket, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
}
