package service

import (
	"context"

	"lumiere_go/internal/core/logger"
	"lumiere_go/internal/core/snowflake"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
	"lumiere_go/internal/repository"
)

// CommentService Comments and their moderation workflow.
// New comments start unapproved and stay invisible to the public until
// an admin approves them.
type CommentService struct {
	repo        repository.CommentRepository
	articleRepo repository.ArticleRepository
}

// NewCommentService Create comment service
func NewCommentService(repo repository.CommentRepository, articleRepo repository.ArticleRepository) *CommentService {
	return &CommentService{repo: repo, articleRepo: articleRepo}
}

// ListForArticle Fetch comments under one article, oldest first.
// Public callers see approved comments only.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int64, approvedOnly bool) ([]*model.CommentResponse, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if article == nil {
		return nil, apperr.New(apperr.CodeArticleNotFound, "article not found")
	}

	comments, err := s.repo.ListByArticle(ctx, articleID, approvedOnly)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	result := make([]*model.CommentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, &model.CommentResponse{
			ID:         c.ID,
			Content:    c.Content,
			ArticleID:  c.ArticleID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName(),
			IsApproved: c.IsApproved,
			CreatedAt:  c.CreatedAt,
		})
	}
	return result, nil
}

// Create Attach an unapproved comment to an article
func (s *CommentService) Create(ctx context.Context, articleID, authorID int64, req *model.CommentCreateRequest) (*model.CommentResponse, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if article == nil {
		return nil, apperr.New(apperr.CodeArticleNotFound, "article not found")
	}

	comment := &model.Comment{
		ID:         snowflake.Generate(),
		Content:    req.Content,
		ArticleID:  articleID,
		AuthorID:   authorID,
		IsApproved: false,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		logger.Error("create comment", logger.Err(err), logger.Int64("article_id", articleID))
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	return &model.CommentResponse{
		ID:         comment.ID,
		Content:    comment.Content,
		ArticleID:  comment.ArticleID,
		AuthorID:   comment.AuthorID,
		IsApproved: comment.IsApproved,
		CreatedAt:  comment.CreatedAt,
	}, nil
}

// AdminList Fetch every comment for moderation, newest first
func (s *CommentService) AdminList(ctx context.Context) ([]*model.AdminCommentItem, error) {
	comments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	items := make([]*model.AdminCommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, &model.AdminCommentItem{
			ID:           c.ID,
			Content:      c.Content,
			ArticleID:    c.ArticleID,
			ArticleTitle: c.ArticleTitle,
			Author:       c.AuthorName(),
			IsApproved:   c.IsApproved,
			CreatedAt:    c.CreatedAt,
		})
	}
	return items, nil
}

// Approve Mark one comment approved
func (s *CommentService) Approve(ctx context.Context, id int64) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if comment == nil {
		return apperr.New(apperr.CodeCommentNotFound, "comment not found")
	}
	if err := s.repo.Approve(ctx, id); err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return nil
}

// Delete Remove one comment
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if comment == nil {
		return apperr.New(apperr.CodeCommentNotFound, "comment not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return nil
}

// BulkDelete Remove a batch of comments, returns how many existed
func (s *CommentService) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	deleted, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return deleted, nil
}
