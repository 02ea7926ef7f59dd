package usecases

import (
	"context"

	"revu/internal/shared/logger"
)

type LogoutCommand struct {
	ActorID uint
}

type LogoutResult struct {
	RedirectTo string
}

// LogoutUseCase is stateless: tokens are not tracked server side, so
// logging out just tells the client to drop its token and go to the
// login page.
type LogoutUseCase struct {
	logger logger.Interface
}

func NewLogoutUseCase(logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) (*LogoutResult, error) {
	if cmd.ActorID != 0 {
		uc.logger.Infow("user logged out", "user_id", cmd.ActorID)
	}
	return &LogoutResult{RedirectTo: "/auth/login/"}, nil
}
