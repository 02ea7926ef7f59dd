package usecases

import (
	"context"
	"fmt"

	"revu/internal/domain/follow"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type FollowUserCommand struct {
	ActorID  uint
	Username string
}

type FollowUserResult struct {
	FolloweeID       uint
	FolloweeUsername string
}

// FollowUserUseCase subscribes the actor to another user, looked up by
// username as typed into the follow form.
type FollowUserUseCase struct {
	followRepo follow.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewFollowUserUseCase(followRepo follow.Repository, userRepo user.Repository, logger logger.Interface) *FollowUserUseCase {
	return &FollowUserUseCase{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *FollowUserUseCase) Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	followee, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %q does not exist", cmd.Username))
		}
		uc.logger.Errorw("failed to look up followee", "error", err, "username", cmd.Username)
		return nil, err
	}

	if followee.ID() == cmd.ActorID {
		return nil, errors.NewSelfFollowError("you cannot follow yourself")
	}

	exists, err := uc.followRepo.Exists(ctx, cmd.ActorID, followee.ID())
	if err != nil {
		uc.logger.Errorw("failed to check follow edge", "error", err, "follower_id", cmd.ActorID)
		return nil, err
	}
	if exists {
		return nil, errors.NewDuplicateError(fmt.Sprintf("you already follow %s", followee.Username()))
	}

	edge, err := follow.NewEdge(cmd.ActorID, followee.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.followRepo.Save(ctx, edge); err != nil {
		if errors.IsDuplicateKeyError(err) {
			return nil, errors.NewDuplicateError(fmt.Sprintf("you already follow %s", followee.Username()))
		}
		uc.logger.Errorw("failed to save follow edge", "error", err, "follower_id", cmd.ActorID, "followee_id", followee.ID())
		return nil, err
	}

	uc.logger.Infow("follow created", "follower_id", cmd.ActorID, "followee_id", followee.ID())

	return &FollowUserResult{
		FolloweeID:       followee.ID(),
		FolloweeUsername: followee.Username(),
	}, nil
}
