package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorhub/internal/domain/user"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// LoginCommand authenticates an account by email and password.
type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User      *user.User
	Token     string
	ExpiresAt time.Time
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenService, log logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: log}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same answer as a wrong password; account existence is not
			// disclosed.
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !uc.hasher.Verify(u.PasswordHash(), cmd.Password) {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresAt, err := uc.tokens.Generate(u)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{User: u, Token: token, ExpiresAt: expiresAt}, nil
}
