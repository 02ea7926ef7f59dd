package usecases

import "context"

type ComposeFeedExecutor interface {
	Execute(ctx context.Context, query ComposeFeedQuery) (*ComposeFeedResult, error)
}
