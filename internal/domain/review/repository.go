package review

import "context"

// Repository persists reviews. Owner-scoped operations collapse "absent"
// and "owned by someone else" into the same not-found outcome.
type Repository interface {
	Save(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*Review, error)
	FindByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*Review, error)
	ExistsByTicketAndOwner(ctx context.Context, ticketID, ownerID uint) (bool, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
