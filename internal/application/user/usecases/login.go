package usecases

import (
	"context"

	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	UserID      uint
	Username    string
	AccessToken string
}

// LoginUseCase authenticates a user by username and password. Unknown
// usernames and wrong passwords produce the same error so the endpoint
// cannot be used to probe for accounts.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	u, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to look up user", "error", err, "username", cmd.Username)
		return nil, err
	}

	if err := uc.hasher.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to generate access token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())

	return &LoginResult{
		UserID:      u.ID(),
		Username:    u.Username(),
		AccessToken: token,
	}, nil
}
