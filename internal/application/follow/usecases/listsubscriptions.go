package usecases

import (
	"context"

	"revu/internal/domain/follow"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type ListSubscriptionsQuery struct {
	ActorID uint
}

// SubscriptionEntry is one row on the subscriptions page.
type SubscriptionEntry struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type ListSubscriptionsResult struct {
	Following []SubscriptionEntry `json:"following"`
	Followers []SubscriptionEntry `json:"followers"`
}

// ListSubscriptionsUseCase returns who the actor follows and who follows
// the actor, with usernames resolved for display.
type ListSubscriptionsUseCase struct {
	followRepo follow.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListSubscriptionsUseCase(followRepo follow.Repository, userRepo user.Repository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) (*ListSubscriptionsResult, error) {
	if query.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	following, err := uc.followRepo.FindByFollower(ctx, query.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to list following", "error", err, "follower_id", query.ActorID)
		return nil, err
	}

	followers, err := uc.followRepo.FindByFollowee(ctx, query.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to list followers", "error", err, "followee_id", query.ActorID)
		return nil, err
	}

	ids := make([]uint, 0, len(following)+len(followers))
	for _, e := range following {
		ids = append(ids, e.FolloweeID())
	}
	for _, e := range followers {
		ids = append(ids, e.FollowerID())
	}

	usernames, err := uc.resolveUsernames(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := &ListSubscriptionsResult{
		Following: make([]SubscriptionEntry, 0, len(following)),
		Followers: make([]SubscriptionEntry, 0, len(followers)),
	}
	for _, e := range following {
		result.Following = append(result.Following, SubscriptionEntry{
			UserID:   e.FolloweeID(),
			Username: usernames[e.FolloweeID()],
		})
	}
	for _, e := range followers {
		result.Followers = append(result.Followers, SubscriptionEntry{
			UserID:   e.FollowerID(),
			Username: usernames[e.FollowerID()],
		})
	}

	return result, nil
}

func (uc *ListSubscriptionsUseCase) resolveUsernames(ctx context.Context, ids []uint) (map[uint]string, error) {
	usernames := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return usernames, nil
	}

	users, err := uc.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to resolve usernames", "error", err)
		return nil, err
	}
	for _, u := range users {
		usernames[u.ID()] = u.Username()
	}
	return usernames, nil
}
