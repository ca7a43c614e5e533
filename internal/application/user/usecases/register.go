package usecases

import (
	"context"
	"fmt"

	"mentorhub/internal/domain/user"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// RegisterCommand creates an account. Role defaults to mentee; mentor and
// admin accounts are provisioned by an admin.
type RegisterCommand struct {
	Email       string
	Password    string
	DisplayName string
	Role        user.Role
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, log logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, hasher: hasher, logger: log}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	if len(cmd.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	role := cmd.Role
	if role == "" {
		role = user.RoleMentee
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Email, hash, cmd.DisplayName, role)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid account", err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("an account with this email already exists")
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uc.logger.Infow("account created", "user_sid", u.SID(), "role", string(u.Role()))
	return u, nil
}
