package mgt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_go/internal/model"
	"lumiere_go/internal/service"
)

// moderationCommentRepo In-memory comment store for handler tests
type moderationCommentRepo struct {
	comments map[int64]*model.Comment
}

func newModerationCommentRepo() *moderationCommentRepo {
	return &moderationCommentRepo{comments: make(map[int64]*model.Comment)}
}

func (r *moderationCommentRepo) Create(_ context.Context, c *model.Comment) error {
	r.comments[c.ID] = c
	return nil
}

func (r *moderationCommentRepo) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	return r.comments[id], nil
}

func (r *moderationCommentRepo) ListByArticle(_ context.Context, articleID int64, approvedOnly bool) ([]*model.CommentWithMeta, error) {
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

func (r *moderationCommentRepo) ListAll(_ context.Context) ([]*model.CommentWithMeta, error) {
	out := []*model.CommentWithMeta{}
	for _, c := range r.comments {
		out = append(out, &model.CommentWithMeta{Comment: *c})
	}
	return out, nil
}

func (r *moderationCommentRepo) Approve(_ context.Context, id int64) error {
	if c, ok := r.comments[id]; ok {
		c.IsApproved = true
	}
	return nil
}

func (r *moderationCommentRepo) Delete(_ context.Context, id int64) error {
	delete(r.comments, id)
	return nil
}

func (r *moderationCommentRepo) DeleteByIDs(_ context.Context, ids []int64) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.comments[id]; ok {
			delete(r.comments, id)
			n++
		}
	}
	return n, nil
}

func (r *moderationCommentRepo) CountPending(_ context.Context) (int, error) {
	n := 0
	for _, c := range r.comments {
		if !c.IsApproved {
			n++
		}
	}
	return n, nil
}

// newModerationRouter Moderation routes with a stats service wired in,
// the way the dashboard mounts them.
func newModerationRouter(repo *moderationCommentRepo) *gin.Engine {
	commentSvc := service.NewCommentService(repo, nil)
	adminSvc := service.NewAdminService(nil, nil, repo, nil, nil)
	h := NewCommentHandler(commentSvc, adminSvc)

	r := gin.New()
	r.GET("/comments", h.List)
	r.POST("/comments/:id/approve", h.Approve)
	r.DELETE("/comments/:id", h.Delete)
	r.POST("/comments/bulk-delete", h.BulkDelete)
	return r
}

func TestCommentApproveHandler(t *testing.T) {
	repo := newModerationCommentRepo()
	repo.comments[5] = &model.Comment{ID: 5, ArticleID: 1, Content: "nice light"}
	r := newModerationRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/comments/5/approve", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.comments[5].IsApproved)
}

func TestCommentApproveHandlerMissing(t *testing.T) {
	r := newModerationRouter(newModerationCommentRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/comments/999/approve", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentDeleteHandler(t *testing.T) {
	repo := newModerationCommentRepo()
	repo.comments[5] = &model.Comment{ID: 5, ArticleID: 1}
	r := newModerationRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/comments/5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, repo.comments, int64(5))
}

func TestCommentBulkDeleteHandler(t *testing.T) {
	repo := newModerationCommentRepo()
	repo.comments[1] = &model.Comment{ID: 1, ArticleID: 1}
	repo.comments[2] = &model.Comment{ID: 2, ArticleID: 1}
	r := newModerationRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments/bulk-delete",
		strings.NewReader(`{"ids":[1,2,55]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted_count":2`)
	assert.Empty(t, repo.comments)
}
