package usecases

import (
	"context"

	"revu/internal/domain/follow"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type UnfollowUserCommand struct {
	ActorID    uint
	FolloweeID uint
}

type UnfollowUserResult struct {
	FolloweeID uint
}

type UnfollowUserUseCase struct {
	followRepo follow.Repository
	logger     logger.Interface
}

func NewUnfollowUserUseCase(followRepo follow.Repository, logger logger.Interface) *UnfollowUserUseCase {
	return &UnfollowUserUseCase{
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *UnfollowUserUseCase) Execute(ctx context.Context, cmd UnfollowUserCommand) (*UnfollowUserResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.FolloweeID == 0 {
		return nil, errors.NewBadRequestError("followee ID is required")
	}

	if err := uc.followRepo.Delete(ctx, cmd.ActorID, cmd.FolloweeID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete follow edge", "error", err, "follower_id", cmd.ActorID, "followee_id", cmd.FolloweeID)
		}
		return nil, err
	}

	uc.logger.Infow("follow removed", "follower_id", cmd.ActorID, "followee_id", cmd.FolloweeID)

	return &UnfollowUserResult{FolloweeID: cmd.FolloweeID}, nil
}
