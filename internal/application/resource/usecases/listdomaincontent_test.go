package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/resource"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/services/markdown"
	"mentorhub/internal/shared/services/storage"
)

func newListUC(t *testing.T, repo *fakePostRepo, gate *fakeGate) *ListDomainContentUseCase {
	t.Helper()
	store, err := storage.NewLocalService(t.TempDir(), "http://localhost:8080/static")
	require.NoError(t, err)
	return NewListDomainContentUseCase(repo, gate, markdown.NewService(), store, logger.NewNop())
}

func seedPublishedPost(t *testing.T, repo *fakePostRepo, kind resource.Kind, title, body string) *resource.Post {
	t.Helper()
	p, err := resource.NewPost("golang-backend", 3, kind, title, body)
	require.NoError(t, err)
	require.NoError(t, p.Publish(postNow))
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestListDomainContent(t *testing.T) {
	repo := newFakePostRepo()
	seedPublishedPost(t, repo, resource.KindMaterial, "Interfaces", "# Interfaces\n\nAccept them.")
	uc := newListUC(t, repo, newFakeGate("golang-backend"))

	result, err := uc.Execute(context.Background(), ListDomainContentCommand{
		UserEmail:  "mentee@example.com",
		DomainSlug: "golang-backend",
		Page:       1,
		PageSize:   20,
	})
	require.NoError(t, err)

	require.Len(t, result.Posts, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Contains(t, result.Posts[0].BodyHTML, "<h1")
	assert.Contains(t, result.Posts[0].BodyHTML, "Accept them.")
}

func TestListDomainContentLockedDomain(t *testing.T) {
	repo := newFakePostRepo()
	seedPublishedPost(t, repo, resource.KindMaterial, "Interfaces", "body")
	uc := newListUC(t, repo, newFakeGate())

	_, err := uc.Execute(context.Background(), ListDomainContentCommand{
		UserEmail:  "mentee@example.com",
		DomainSlug: "golang-backend",
		Page:       1,
		PageSize:   20,
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestListDomainContentKindFilter(t *testing.T) {
	repo := newFakePostRepo()
	seedPublishedPost(t, repo, resource.KindMaterial, "Interfaces", "body")
	seedPublishedPost(t, repo, resource.KindNews, "Workshop", "body")
	uc := newListUC(t, repo, newFakeGate("golang-backend"))

	result, err := uc.Execute(context.Background(), ListDomainContentCommand{
		UserEmail:  "mentee@example.com",
		DomainSlug: "golang-backend",
		Kind:       resource.KindNews,
		Page:       1,
		PageSize:   20,
	})
	require.NoError(t, err)

	require.Len(t, result.Posts, 1)
	assert.Equal(t, "Workshop", result.Posts[0].Post.Title())
}

func TestListDomainContentSanitizesMarkdown(t *testing.T) {
	repo := newFakePostRepo()
	seedPublishedPost(t, repo, resource.KindMaterial, "Sneaky",
		"hello <script>alert(1)</script> world")
	uc := newListUC(t, repo, newFakeGate("golang-backend"))

	result, err := uc.Execute(context.Background(), ListDomainContentCommand{
		UserEmail:  "mentee@example.com",
		DomainSlug: "golang-backend",
		Page:       1,
		PageSize:   20,
	})
	require.NoError(t, err)

	require.Len(t, result.Posts, 1)
	assert.NotContains(t, result.Posts[0].BodyHTML, "<script>")
}

func TestListDomainContentBannerURL(t *testing.T) {
	repo := newFakePostRepo()
	post := seedPublishedPost(t, repo, resource.KindMaterial, "With banner", "body")
	post.SetBannerKey("banners/abc.png")
	uc := newListUC(t, repo, newFakeGate("golang-backend"))

	result, err := uc.Execute(context.Background(), ListDomainContentCommand{
		UserEmail:  "mentee@example.com",
		DomainSlug: "golang-backend",
		Page:       1,
		PageSize:   20,
	})
	require.NoError(t, err)

	require.Len(t, result.Posts, 1)
	assert.Equal(t, "http://localhost:8080/static/banners/abc.png", result.Posts[0].BannerURL)
}
