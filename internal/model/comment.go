package model

import "time"

// Comment Comment row
type Comment struct {
	ID         int64      `db:"id"`
	Content    string     `db:"content"`
	ArticleID  int64      `db:"article_id"`
	AuthorID   int64      `db:"author_id"`
	IsApproved bool       `db:"is_approved"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// CommentWithMeta Comment row joined with article title and author names
type CommentWithMeta struct {
	Comment
	ArticleTitle   string `db:"article_title"`
	AuthorUsername string `db:"author_username"`
	AuthorFullName string `db:"author_full_name"`
}

// AuthorName Author display name for responses
func (c *CommentWithMeta) AuthorName() string {
	if c.AuthorFullName != "" {
		return c.AuthorFullName
	}
	return c.AuthorUsername
}

// CommentCreateRequest Creation payload, article comes from the path
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}

// CommentResponse Comment representation
type CommentResponse struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	ArticleID  int64     `json:"article_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdminCommentItem Moderation listing row
type AdminCommentItem struct {
	ID           int64     `json:"id"`
	Content      string    `json:"content"`
	ArticleID    int64     `json:"article_id"`
	ArticleTitle string    `json:"article_title"`
	Author       string    `json:"author"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}
