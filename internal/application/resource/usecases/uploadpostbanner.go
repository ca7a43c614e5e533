package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mentorhub/internal/domain/resource"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/services/storage"
)

// UploadPostBannerCommand attaches a banner image to a post. Only the author
// may replace their post's banner.
type UploadPostBannerCommand struct {
	PostSID  string
	AuthorID uint
	Filename string
	Content  io.Reader
}

type UploadPostBannerUseCase struct {
	postRepo resource.Repository
	storage  storage.Service
	logger   logger.Interface
}

func NewUploadPostBannerUseCase(postRepo resource.Repository, store storage.Service, log logger.Interface) *UploadPostBannerUseCase {
	return &UploadPostBannerUseCase{postRepo: postRepo, storage: store, logger: log}
}

func (uc *UploadPostBannerUseCase) Execute(ctx context.Context, cmd UploadPostBannerCommand) (string, error) {
	post, err := uc.postRepo.GetBySID(ctx, cmd.PostSID)
	if err != nil {
		if errors.Is(err, resource.ErrPostNotFound) {
			return "", apperrors.NewNotFoundError("post not found", cmd.PostSID)
		}
		return "", fmt.Errorf("failed to look up post: %w", err)
	}
	if post.AuthorID() != cmd.AuthorID {
		return "", apperrors.NewForbiddenError("only the author may change the banner")
	}

	oldKey := post.BannerKey()

	key, err := uc.storage.Save(ctx, "banners", cmd.Filename, cmd.Content)
	if err != nil {
		return "", fmt.Errorf("failed to store banner: %w", err)
	}

	post.SetBannerKey(key)
	if err := uc.postRepo.Update(ctx, post); err != nil {
		// Roll back the orphaned object; the post still points at the old
		// banner.
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			uc.logger.Warnw("failed to clean up orphaned banner", "key", key, "error", delErr)
		}
		return "", fmt.Errorf("failed to update post banner: %w", err)
	}

	if oldKey != "" && oldKey != key {
		if delErr := uc.storage.Delete(ctx, oldKey); delErr != nil {
			uc.logger.Warnw("failed to delete replaced banner", "key", oldKey, "error", delErr)
		}
	}

	return uc.storage.PublicURL(key), nil
}
