package usecases

import (
	"context"
	"fmt"

	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	UserID   uint
	Username string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := user.ValidateUsername(cmd.Username); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < user.MinPasswordLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", user.MinPasswordLength))
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err, "username", cmd.Username)
		return nil, err
	}
	if exists {
		return nil, errors.NewDuplicateError("username is already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateKeyError(err) {
			return nil, errors.NewDuplicateError("username is already taken")
		}
		uc.logger.Errorw("failed to save user", "error", err, "username", cmd.Username)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())

	return &RegisterResult{
		UserID:   newUser.ID(),
		Username: newUser.Username(),
	}, nil
}
