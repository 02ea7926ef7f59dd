package follow

import (
	"fmt"
	"time"
)

// Edge is a directed follow relationship: the follower's feed includes the
// followee's posts. Only the follower side creates or removes it.
type Edge struct {
	id         uint
	followerID uint
	followeeID uint
	createdAt  time.Time
}

func NewEdge(followerID, followeeID uint) (*Edge, error) {
	if followerID == 0 {
		return nil, fmt.Errorf("follower ID is required")
	}
	if followeeID == 0 {
		return nil, fmt.Errorf("followee ID is required")
	}
	if followerID == followeeID {
		return nil, fmt.Errorf("users cannot follow themselves")
	}

	return &Edge{
		followerID: followerID,
		followeeID: followeeID,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructEdge(id, followerID, followeeID uint, createdAt time.Time) (*Edge, error) {
	if id == 0 {
		return nil, fmt.Errorf("edge ID cannot be zero")
	}
	if followerID == 0 || followeeID == 0 {
		return nil, fmt.Errorf("follower and followee IDs are required")
	}

	return &Edge{
		id:         id,
		followerID: followerID,
		followeeID: followeeID,
		createdAt:  createdAt,
	}, nil
}

func (e *Edge) ID() uint {
	return e.id
}

func (e *Edge) FollowerID() uint {
	return e.followerID
}

func (e *Edge) FolloweeID() uint {
	return e.followeeID
}

func (e *Edge) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Edge) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("edge ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("edge ID cannot be zero")
	}
	e.id = id
	return nil
}
