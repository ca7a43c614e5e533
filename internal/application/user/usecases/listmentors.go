package usecases

import (
	"context"
	"fmt"

	"mentorhub/internal/domain/user"
	"mentorhub/internal/shared/logger"
)

// ListMentorsUseCase lists mentor accounts for the booking directory.
type ListMentorsUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListMentorsUseCase(userRepo user.Repository, log logger.Interface) *ListMentorsUseCase {
	return &ListMentorsUseCase{userRepo: userRepo, logger: log}
}

func (uc *ListMentorsUseCase) Execute(ctx context.Context) ([]*user.User, error) {
	mentors, err := uc.userRepo.ListMentors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	return mentors, nil
}
