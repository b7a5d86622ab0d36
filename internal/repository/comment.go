package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"lumiere_go/internal/model"
)

// CommentRepository Comment data access interface
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	ListByArticle(ctx context.Context, articleID int64, approvedOnly bool) ([]*model.CommentWithMeta, error)
	ListAll(ctx context.Context) ([]*model.CommentWithMeta, error)
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	CountPending(ctx context.Context) (int, error)
}

type commentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository Create comment repository
func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentJoin = `
	SELECT c.id, c.content, c.article_id, c.author_id, c.is_approved, c.created_at, c.updated_at,
		COALESCE(a.title, '') AS article_title,
		COALESCE(u.username, '') AS author_username,
		COALESCE(u.full_name, '') AS author_full_name
	FROM comments c
	LEFT JOIN articles a ON a.id = c.article_id
	LEFT JOIN users u ON u.id = c.author_id
`

// Create Insert comment row, unapproved by default
func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO comments (id, content, article_id, author_id, is_approved, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Content, c.ArticleID, c.AuthorID, c.IsApproved)
	return err
}

// GetByID Fetch comment by ID
func (r *commentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var c model.Comment
	err := r.db.GetContext(ctx, &c,
		"SELECT id, content, article_id, author_id, is_approved, created_at, updated_at FROM comments WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByArticle Fetch comments for one article, oldest first
func (r *commentRepository) ListByArticle(ctx context.Context, articleID int64, approvedOnly bool) ([]*model.CommentWithMeta, error) {
	query := commentJoin + " WHERE c.article_id = ?"
	args := []interface{}{articleID}
	if approvedOnly {
		query += " AND c.is_approved = 1"
	}
	query += " ORDER BY c.created_at ASC"

	comments := []*model.CommentWithMeta{}
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAll Fetch every comment for moderation, newest first
func (r *commentRepository) ListAll(ctx context.Context) ([]*model.CommentWithMeta, error) {
	comments := []*model.CommentWithMeta{}
	err := r.db.SelectContext(ctx, &comments, commentJoin+" ORDER BY c.created_at DESC")
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Approve Mark comment approved
func (r *commentRepository) Approve(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE comments SET is_approved = 1 WHERE id = ?", id)
	return err
}

// Delete Remove comment row
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	return err
}

// DeleteByIDs Set-based removal, returns the number removed
func (r *commentRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM comments WHERE id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()
	return affected, nil
}

// CountPending Unapproved comment count
func (r *commentRepository) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM comments WHERE is_approved = 0")
	return n, err
}
