package follow

import "context"

// Repository persists follow edges. The edge set is unique per
// (follower, followee) pair.
type Repository interface {
	Save(ctx context.Context, e *Edge) error
	Exists(ctx context.Context, followerID, followeeID uint) (bool, error)
	Delete(ctx context.Context, followerID, followeeID uint) error
	FindByFollower(ctx context.Context, followerID uint) ([]*Edge, error)
	FindByFollowee(ctx context.Context, followeeID uint) ([]*Edge, error)
	FolloweeIDs(ctx context.Context, followerID uint) ([]uint, error)
}
