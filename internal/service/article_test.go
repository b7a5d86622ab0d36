package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
)

// fakeArticleRepo In-memory article store for service tests
type fakeArticleRepo struct {
	articles map[int64]*model.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[int64]*model.Article)}
}

func (r *fakeArticleRepo) Create(_ context.Context, a *model.Article) error {
	r.articles[a.ID] = a
	return nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id int64) (*model.Article, error) {
	if a, ok := r.articles[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeArticleRepo) GetBySlug(_ context.Context, slug string) (*model.Article, error) {
	for _, a := range r.articles {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, a := range r.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeArticleRepo) List(_ context.Context, status, category string, _, _ int) ([]*model.Article, error) {
	out := []*model.Article{}
	for _, a := range r.articles {
		if a.Status != status {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeArticleRepo) AdminList(_ context.Context, f model.AdminArticleFilter) ([]*model.Article, error) {
	out := []*model.Article{}
	for _, a := range r.articles {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Search != "" && !strings.Contains(a.Title, f.Search) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeArticleRepo) AdminCount(ctx context.Context, f model.AdminArticleFilter) (int, error) {
	list, _ := r.AdminList(ctx, f)
	return len(list), nil
}

func (r *fakeArticleRepo) Update(_ context.Context, a *model.Article) error {
	r.articles[a.ID] = a
	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id int64) error {
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) DeleteByIDs(_ context.Context, ids []int64) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.articles[id]; ok {
			delete(r.articles, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeArticleRepo) IncViews(_ context.Context, id int64) error {
	if a, ok := r.articles[id]; ok {
		a.Views++
	}
	return nil
}

func (r *fakeArticleRepo) SumViews(_ context.Context) (int64, error) {
	var n int64
	for _, a := range r.articles {
		n += a.Views
	}
	return n, nil
}

func (r *fakeArticleRepo) SumViewsCreatedBetween(_ context.Context, _, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeArticleRepo) CountCreatedBetween(_ context.Context, _, _ time.Time) (int, error) {
	return 0, nil
}

func (r *fakeArticleRepo) PublishedSlugs(_ context.Context, _ int) ([]*model.Article, error) {
	out := []*model.Article{}
	for _, a := range r.articles {
		if a.Status == model.StatusPublished {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeUserRepo In-memory user store for service tests
type fakeUserRepo struct {
	users map[int64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ string, _, _ int) ([]*model.User, error) {
	out := []*model.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) SetAdmin(_ context.Context, id int64, isAdmin bool) error {
	if u, ok := r.users[id]; ok {
		u.IsAdmin = isAdmin
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func newTestArticleService() (*ArticleService, *fakeArticleRepo, *fakeUserRepo) {
	articleRepo := newFakeArticleRepo()
	userRepo := newFakeUserRepo()
	userRepo.users[1] = &model.User{ID: 1, Username: "anna", FullName: "Anna Lindqvist"}
	userRepo.users[2] = &model.User{ID: 2, Username: "bo"}
	return NewArticleService(articleRepo, userRepo), articleRepo, userRepo
}

func TestArticleCreateDefaults(t *testing.T) {
	svc, _, _ := newTestArticleService()
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, &model.ArticleCreateRequest{
		Title:   "Golden Hour in Kyoto",
		Content: "body",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusDraft, a.Status)
	assert.Equal(t, "golden-hour-in-kyoto", a.Slug)
	assert.Equal(t, 5, a.ReadingTime)
	assert.Equal(t, int64(1), a.AuthorID)
	assert.Equal(t, "Anna Lindqvist", a.AuthorName)
	assert.Nil(t, a.PublishedAt)
}

func TestArticleCreateSlugCollision(t *testing.T) {
	svc, _, _ := newTestArticleService()
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, &model.ArticleCreateRequest{Title: "Same Title", Content: "a"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, 1, &model.ArticleCreateRequest{Title: "Same Title", Content: "b"})
	require.NoError(t, err)

	assert.Equal(t, "same-title", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "same-title-"))
}

func TestArticleGetIncrementsViews(t *testing.T) {
	svc, _, _ := newTestArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &model.ArticleCreateRequest{Title: "Views", Content: "c"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	got, err = svc.GetBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)
}

func TestArticleGetMissing(t *testing.T) {
	svc, _, _ := newTestArticleService()

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	ae, ok := err.(*apperr.AppError)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeArticleNotFound, ae.Code)
}

func TestArticleUpdateOwnership(t *testing.T) {
	svc, _, _ := newTestArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &model.ArticleCreateRequest{Title: "Mine", Content: "c"})
	require.NoError(t, err)

	title := "Stolen"
	_, err = svc.Update(ctx, 2, false, created.ID, &model.ArticleUpdateRequest{Title: &title})
	require.Error(t, err)
	ae, ok := err.(*apperr.AppError)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeForbidden, ae.Code)

	// an admin who is not the author may update
	updated, err := svc.Update(ctx, 2, true, created.ID, &model.ArticleUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Stolen", updated.Title)
}

func TestArticlePublishStampOnce(t *testing.T) {
	svc, repo, _ := newTestArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &model.ArticleCreateRequest{Title: "Publish Me", Content: "c"})
	require.NoError(t, err)

	published := model.StatusPublished
	first, err := svc.Update(ctx, 1, false, created.ID, &model.ArticleUpdateRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, first.PublishedAt)
	stamp := *first.PublishedAt

	// unpublish then publish again, the original stamp survives
	draft := model.StatusDraft
	_, err = svc.Update(ctx, 1, false, created.ID, &model.ArticleUpdateRequest{Status: &draft})
	require.NoError(t, err)

	second, err := svc.Update(ctx, 1, false, created.ID, &model.ArticleUpdateRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, second.PublishedAt)
	assert.Equal(t, stamp, *second.PublishedAt)

	stored := repo.articles[created.ID]
	assert.Equal(t, model.StatusPublished, stored.Status)
}

func TestArticleListDefaultsToPublished(t *testing.T) {
	svc, repo, _ := newTestArticleService()
	ctx := context.Background()

	now := time.Now()
	repo.articles[10] = &model.Article{ID: 10, Title: "Draft", Slug: "draft", Status: model.StatusDraft, AuthorID: 1, CreatedAt: now}
	repo.articles[11] = &model.Article{ID: 11, Title: "Live", Slug: "live", Status: model.StatusPublished, AuthorID: 1, CreatedAt: now}

	list, err := svc.List(ctx, "", "", 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Live", list[0].Title)

	drafts, err := svc.List(ctx, model.StatusDraft, "", 0, 10)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Draft", drafts[0].Title)
}

func TestArticleBulkDelete(t *testing.T) {
	svc, repo, _ := newTestArticleService()
	ctx := context.Background()

	now := time.Now()
	repo.articles[1] = &model.Article{ID: 1, Slug: "a", Status: model.StatusDraft, CreatedAt: now}
	repo.articles[2] = &model.Article{ID: 2, Slug: "b", Status: model.StatusDraft, CreatedAt: now}

	deleted, err := svc.BulkDelete(ctx, []int64{1, 2, 99})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
