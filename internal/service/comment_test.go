package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
)

// fakeCommentRepo In-memory comment store for service tests
type fakeCommentRepo struct {
	comments map[int64]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*model.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *model.Comment) error {
	c.CreatedAt = time.Now()
	r.comments[c.ID] = c
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	return r.comments[id], nil
}

func (r *fakeCommentRepo) ListByArticle(_ context.Context, articleID int64, approvedOnly bool) ([]*model.CommentWithMeta, error) {
	out := []*model.CommentWithMeta{}
	for _, c := range r.comments {
		if c.ArticleID != articleID {
			continue
		}
		if approvedOnly && !c.IsApproved {
			continue
		}
		out = append(out, &model.CommentWithMeta{Comment: *c})
	}
	return out, nil
}

func (r *fakeCommentRepo) ListAll(_ context.Context) ([]*model.CommentWithMeta, error) {
	out := []*model.CommentWithMeta{}
	for _, c := range r.comments {
		out = append(out, &model.CommentWithMeta{Comment: *c})
	}
	return out, nil
}

func (r *fakeCommentRepo) Approve(_ context.Context, id int64) error {
	if c, ok := r.comments[id]; ok {
		c.IsApproved = true
	}
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteByIDs(_ context.Context, ids []int64) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.comments[id]; ok {
			delete(r.comments, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeCommentRepo) CountPending(_ context.Context) (int, error) {
	n := 0
	for _, c := range r.comments {
		if !c.IsApproved {
			n++
		}
	}
	return n, nil
}

func newTestCommentService() (*CommentService, *fakeCommentRepo, *fakeArticleRepo) {
	commentRepo := newFakeCommentRepo()
	articleRepo := newFakeArticleRepo()
	articleRepo.articles[1] = &model.Article{
		ID: 1, Title: "Host", Slug: "host", Status: model.StatusPublished, CreatedAt: time.Now(),
	}
	return NewCommentService(commentRepo, articleRepo), commentRepo, articleRepo
}

func TestCommentModerationFlow(t *testing.T) {
	svc, _, _ := newTestCommentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, 7, &model.CommentCreateRequest{Content: "lovely shot"})
	require.NoError(t, err)
	assert.False(t, created.IsApproved, "new comments start unapproved")

	// hidden from the public until approved
	public, err := svc.ListForArticle(ctx, 1, true)
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := svc.ListForArticle(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Approve(ctx, created.ID))

	public, err = svc.ListForArticle(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.True(t, public[0].IsApproved)
}

func TestCommentOnMissingArticle(t *testing.T) {
	svc, _, _ := newTestCommentService()

	_, err := svc.Create(context.Background(), 404, 7, &model.CommentCreateRequest{Content: "x"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeArticleNotFound, err.(*apperr.AppError).Code)

	_, err = svc.ListForArticle(context.Background(), 404, true)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeArticleNotFound, err.(*apperr.AppError).Code)
}

func TestCommentApproveMissing(t *testing.T) {
	svc, _, _ := newTestCommentService()

	err := svc.Approve(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeCommentNotFound, err.(*apperr.AppError).Code)
}

func TestCommentBulkDelete(t *testing.T) {
	svc, repo, _ := newTestCommentService()
	ctx := context.Background()

	repo.comments[1] = &model.Comment{ID: 1, ArticleID: 1}
	repo.comments[2] = &model.Comment{ID: 2, ArticleID: 1}

	deleted, err := svc.BulkDelete(ctx, []int64{1, 2, 55})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
