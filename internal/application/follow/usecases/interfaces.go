package usecases

import "context"

type FollowUserExecutor interface {
	Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error)
}

type UnfollowUserExecutor interface {
	Execute(ctx context.Context, cmd UnfollowUserCommand) (*UnfollowUserResult, error)
}

type ListSubscriptionsExecutor interface {
	Execute(ctx context.Context, query ListSubscriptionsQuery) (*ListSubscriptionsResult, error)
}
