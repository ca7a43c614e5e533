package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mentorhub/internal/domain/user"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/services/storage"
)

// UpdateProfileCommand edits the caller's own profile.
type UpdateProfileCommand struct {
	UserID      uint
	DisplayName string
	Bio         string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, log logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, logger: log}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := u.UpdateProfile(cmd.DisplayName, cmd.Bio); err != nil {
		return nil, apperrors.NewValidationError("invalid profile", err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return u, nil
}

// ProfileUploadKind selects which profile object an upload replaces.
type ProfileUploadKind string

const (
	UploadPhoto  ProfileUploadKind = "photo"
	UploadResume ProfileUploadKind = "resume"
)

// UploadProfileObjectCommand uploads the caller's photo or resume.
type UploadProfileObjectCommand struct {
	UserID   uint
	Kind     ProfileUploadKind
	Filename string
	Content  io.Reader
}

type UploadProfileObjectUseCase struct {
	userRepo user.Repository
	storage  storage.Service
	logger   logger.Interface
}

func NewUploadProfileObjectUseCase(userRepo user.Repository, store storage.Service, log logger.Interface) *UploadProfileObjectUseCase {
	return &UploadProfileObjectUseCase{userRepo: userRepo, storage: store, logger: log}
}

func (uc *UploadProfileObjectUseCase) Execute(ctx context.Context, cmd UploadProfileObjectCommand) (string, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", apperrors.NewNotFoundError("account not found")
		}
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	var prefix string
	var oldKey string
	switch cmd.Kind {
	case UploadPhoto:
		prefix, oldKey = "photos", u.PhotoKey()
	case UploadResume:
		prefix, oldKey = "resumes", u.ResumeKey()
	default:
		return "", apperrors.NewValidationError("unknown upload kind", string(cmd.Kind))
	}

	key, err := uc.storage.Save(ctx, prefix, cmd.Filename, cmd.Content)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	switch cmd.Kind {
	case UploadPhoto:
		u.SetPhotoKey(key)
	case UploadResume:
		u.SetResumeKey(key)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			uc.logger.Warnw("failed to clean up orphaned upload", "key", key, "error", delErr)
		}
		return "", fmt.Errorf("failed to update account: %w", err)
	}

	if oldKey != "" && oldKey != key {
		if delErr := uc.storage.Delete(ctx, oldKey); delErr != nil {
			uc.logger.Warnw("failed to delete replaced upload", "key", oldKey, "error", delErr)
		}
	}

	return uc.storage.PublicURL(key), nil
}
