package service

import (
	"context"
	"time"

	"lumiere_go/internal/core/logger"
	"lumiere_go/internal/core/snowflake"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
	"lumiere_go/internal/pkg/pool"
	"lumiere_go/internal/pkg/util"
	"lumiere_go/internal/repository"
)

const defaultReadingTime = 5

// ArticleService Article business rules: visibility, slugs, view counting,
// publish stamping and ownership checks.
type ArticleService struct {
	repo     repository.ArticleRepository
	userRepo repository.UserRepository
	authors  *pool.Cache[int64, string] // author display names
}

// NewArticleService Create article service
func NewArticleService(repo repository.ArticleRepository, userRepo repository.UserRepository) *ArticleService {
	return &ArticleService{
		repo:     repo,
		userRepo: userRepo,
		authors:  pool.NewCache[int64, string](1024),
	}
}

// List Fetch articles. An empty status means the public default: published only.
func (s *ArticleService) List(ctx context.Context, status, category string, skip, limit int) ([]*model.ArticleResponse, error) {
	if status == "" {
		status = model.StatusPublished
	}

	articles, err := s.repo.List(ctx, status, category, skip, limit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	result := make([]*model.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		result = append(result, s.toResponse(a, s.authorName(ctx, a.AuthorID)))
	}
	return result, nil
}

// Get Fetch one article by ID.
// Every successful fetch increments the view counter before returning.
func (s *ArticleService) Get(ctx context.Context, id int64) (*model.ArticleResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if a == nil {
		return nil, apperr.New(apperr.CodeArticleNotFound, "article not found")
	}
	return s.countView(ctx, a)
}

// GetBySlug Fetch one article by slug, same view side effect as Get
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*model.ArticleResponse, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if a == nil {
		return nil, apperr.New(apperr.CodeArticleNotFound, "article not found")
	}
	return s.countView(ctx, a)
}

func (s *ArticleService) countView(ctx context.Context, a *model.Article) (*model.ArticleResponse, error) {
	if err := s.repo.IncViews(ctx, a.ID); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	a.Views++
	return s.toResponse(a, s.authorName(ctx, a.AuthorID)), nil
}

// Create Persist a new article. Status always starts as draft and the slug is
// derived from the title, disambiguated with a timestamp suffix on collision.
func (s *ArticleService) Create(ctx context.Context, authorID int64, req *model.ArticleCreateRequest) (*model.ArticleResponse, error) {
	slug := util.Slugify(req.Title)
	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if exists {
		slug = util.SlugWithSuffix(slug, time.Now().Unix())
	}

	readingTime := req.ReadingTime
	if readingTime == 0 {
		readingTime = defaultReadingTime
	}

	a := &model.Article{
		ID:          snowflake.Generate(),
		Title:       req.Title,
		Slug:        slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		CoverImage:  req.CoverImage,
		Category:    req.Category,
		Status:      model.StatusDraft,
		ReadingTime: readingTime,
		AuthorID:    authorID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		logger.Error("create article", logger.Err(err), logger.String("slug", slug))
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	return s.toResponse(a, s.authorName(ctx, authorID)), nil
}

// Update Apply a partial update. Only the author or an admin may update.
// The publish timestamp is stamped exactly once, on the first transition
// into published status.
func (s *ArticleService) Update(ctx context.Context, callerID int64, callerAdmin bool, id int64, req *model.ArticleUpdateRequest) (*model.ArticleResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if a == nil {
		return nil, apperr.New(apperr.CodeArticleNotFound, "article not found")
	}

	if a.AuthorID != callerID && !callerAdmin {
		return nil, apperr.Forbidden("not the author of this article")
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Excerpt != nil {
		a.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.CoverImage != nil {
		a.CoverImage = *req.CoverImage
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.ReadingTime != nil {
		a.ReadingTime = *req.ReadingTime
	}
	if req.Status != nil {
		a.Status = *req.Status
		if a.Status == model.StatusPublished && a.PublishedAt == nil {
			now := time.Now()
			a.PublishedAt = &now
		}
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	return s.toResponse(a, s.authorName(ctx, a.AuthorID)), nil
}

// Delete Remove an article and its comments
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if a == nil {
		return apperr.New(apperr.CodeArticleNotFound, "article not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return nil
}

// AdminList Fetch a filtered dashboard page plus the total matching count
func (s *ArticleService) AdminList(ctx context.Context, f model.AdminArticleFilter) (*model.AdminArticleList, error) {
	articles, err := s.repo.AdminList(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	total, err := s.repo.AdminCount(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	items := make([]model.AdminArticleItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, model.AdminArticleItem{
			ID:        a.ID,
			Title:     a.Title,
			Author:    s.authorName(ctx, a.AuthorID),
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
			Views:     a.Views,
		})
	}
	return &model.AdminArticleList{Items: items, Total: total}, nil
}

// BulkDelete Remove a batch of articles with their comments,
// returns how many actually existed
func (s *ArticleService) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	deleted, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return deleted, nil
}

// authorName Resolve the author display name, cached per author ID
func (s *ArticleService) authorName(ctx context.Context, authorID int64) string {
	if name, ok := s.authors.Get(authorID); ok {
		return name
	}

	user, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}

	name := user.DisplayName()
	s.authors.Set(authorID, name)
	return name
}

// InvalidateAuthor Drop a cached display name after a user change
func (s *ArticleService) InvalidateAuthor(authorID int64) {
	s.authors.Remove(authorID)
}

func (s *ArticleService) toResponse(a *model.Article, authorName string) *model.ArticleResponse {
	return &model.ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		CoverImage:  a.CoverImage,
		Category:    a.Category,
		Status:      a.Status,
		ReadingTime: a.ReadingTime,
		AuthorID:    a.AuthorID,
		AuthorName:  authorName,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Views:       a.Views,
	}
}
