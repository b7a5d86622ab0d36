package model

import "time"

// Article status values
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusReview    = "review"
)

// Article Article row
type Article struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     string     `db:"excerpt"`
	Content     string     `db:"content"`
	CoverImage  string     `db:"cover_image"`
	Category    string     `db:"category"`
	Status      string     `db:"status"`
	ReadingTime int        `db:"reading_time"` // minutes
	AuthorID    int64      `db:"author_id"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	Views       int64      `db:"views"`
}

// ArticleCreateRequest Creation payload, status always starts as draft
type ArticleCreateRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content" binding:"required"`
	CoverImage  string `json:"cover_image" binding:"omitempty,url"`
	Category    string `json:"category" binding:"omitempty,max=64"`
	ReadingTime int    `json:"reading_time" binding:"omitempty,min=1"`
}

// ArticleUpdateRequest Partial update, nil fields untouched
type ArticleUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	CoverImage  *string `json:"cover_image" binding:"omitempty,url"`
	Category    *string `json:"category" binding:"omitempty,max=64"`
	Status      *string `json:"status" binding:"omitempty,oneof=draft published review"`
	ReadingTime *int    `json:"reading_time" binding:"omitempty,min=1"`
}

// ArticleResponse Full article representation.
// AuthorName is derived at response time, never stored.
type ArticleResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Category    string     `json:"category,omitempty"`
	Status      string     `json:"status"`
	ReadingTime int        `json:"reading_time"`
	AuthorID    int64      `json:"author_id"`
	AuthorName  string     `json:"author_name,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Views       int64      `json:"views"`
}

// AdminArticleItem Compact listing row for the dashboard
type AdminArticleItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Views     int64     `json:"views"`
}

// AdminArticleList Paginated dashboard listing
type AdminArticleList struct {
	Items []AdminArticleItem `json:"items"`
	Total int                `json:"total"`
}

// AdminArticleFilter Dashboard listing filters
type AdminArticleFilter struct {
	Search   string
	Status   string
	Category string
	From     *time.Time
	To       *time.Time
	Skip     int
	Limit    int
}

// BulkDeleteRequest IDs for set-based removal
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// BulkDeleteResponse Count actually removed
type BulkDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
