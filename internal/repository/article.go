package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"lumiere_go/internal/model"
)

// ArticleRepository Article data access interface
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	GetByID(ctx context.Context, id int64) (*model.Article, error)
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, status, category string, skip, limit int) ([]*model.Article, error)
	AdminList(ctx context.Context, f model.AdminArticleFilter) ([]*model.Article, error)
	AdminCount(ctx context.Context, f model.AdminArticleFilter) (int, error)
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	IncViews(ctx context.Context, id int64) error
	SumViews(ctx context.Context) (int64, error)
	SumViewsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	PublishedSlugs(ctx context.Context, limit int) ([]*model.Article, error)
}

type articleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository Create article repository
func NewArticleRepository(db *sqlx.DB) ArticleRepository {
	return &articleRepository{db: db}
}

const articleColumns = `id, title, slug, excerpt, content, cover_image, category, status,
	reading_time, author_id, published_at, created_at, updated_at, views`

// Create Insert article row
func (r *articleRepository) Create(ctx context.Context, a *model.Article) error {
	query := `
		INSERT INTO articles (id, title, slug, excerpt, content, cover_image, category,
			status, reading_time, author_id, published_at, created_at, views)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), 0)
	`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.CoverImage, a.Category,
		a.Status, a.ReadingTime, a.AuthorID, a.PublishedAt)
	return err
}

// GetByID Fetch article by ID
func (r *articleRepository) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	var a model.Article
	err := r.db.GetContext(ctx, &a,
		"SELECT "+articleColumns+" FROM articles WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetBySlug Fetch article by slug
func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var a model.Article
	err := r.db.GetContext(ctx, &a,
		"SELECT "+articleColumns+" FROM articles WHERE slug = ?", slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SlugExists Check slug uniqueness
func (r *articleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM articles WHERE slug = ?", slug)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List Fetch articles by status/category, newest published first.
// Drafts have no published_at, so ordering falls back to created_at.
func (r *articleRepository) List(ctx context.Context, status, category string, skip, limit int) ([]*model.Article, error) {
	query := "SELECT " + articleColumns + " FROM articles WHERE status = ?"
	args := []interface{}{status}
	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	query += " ORDER BY COALESCE(published_at, created_at) DESC LIMIT ?, ?"
	args = append(args, skip, limit)

	articles := []*model.Article{}
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, err
	}
	return articles, nil
}

func adminWhere(f model.AdminArticleFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	args := make([]interface{}, 0, 6)
	if f.Search != "" {
		where += " AND title LIKE ?"
		args = append(args, "%"+f.Search+"%")
	}
	if f.Status != "" {
		where += " AND status = ?"
		args = append(args, f.Status)
	}
	if f.Category != "" {
		where += " AND category = ?"
		args = append(args, f.Category)
	}
	if f.From != nil {
		where += " AND created_at >= ?"
		args = append(args, *f.From)
	}
	if f.To != nil {
		// To is an exclusive upper bound, the handler widens plain
		// dates to the following midnight.
		where += " AND created_at < ?"
		args = append(args, *f.To)
	}
	return where, args
}

// AdminList Fetch articles for the dashboard, any status, newest first
func (r *articleRepository) AdminList(ctx context.Context, f model.AdminArticleFilter) ([]*model.Article, error) {
	where, args := adminWhere(f)
	query := "SELECT " + articleColumns + " FROM articles" + where +
		" ORDER BY created_at DESC LIMIT ?, ?"
	args = append(args, f.Skip, f.Limit)

	articles := []*model.Article{}
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, err
	}
	return articles, nil
}

// AdminCount Count articles matching the dashboard filter
func (r *articleRepository) AdminCount(ctx context.Context, f model.AdminArticleFilter) (int, error) {
	where, args := adminWhere(f)
	var n int
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM articles"+where, args...)
	return n, err
}

// Update Persist mutable article fields
func (r *articleRepository) Update(ctx context.Context, a *model.Article) error {
	query := `
		UPDATE articles SET title = ?, slug = ?, excerpt = ?, content = ?, cover_image = ?,
			category = ?, status = ?, reading_time = ?, published_at = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		a.Title, a.Slug, a.Excerpt, a.Content, a.CoverImage,
		a.Category, a.Status, a.ReadingTime, a.PublishedAt, a.ID)
	return err
}

// Delete Remove article and its comments in one transaction
func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE article_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteByIDs Set-based removal, returns the number of articles removed
func (r *articleRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query, args, err := sqlx.In("DELETE FROM comments WHERE article_id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return 0, err
	}

	query, args, err = sqlx.In("DELETE FROM articles WHERE id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	result, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}

// IncViews Increment the view counter
func (r *articleRepository) IncViews(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE articles SET views = views + 1 WHERE id = ?", id)
	return err
}

// SumViews Total views across all articles
func (r *articleRepository) SumViews(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, "SELECT COALESCE(SUM(views), 0) FROM articles")
	return n, err
}

// SumViewsCreatedBetween Views held by articles created inside the window
func (r *articleRepository) SumViewsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		"SELECT COALESCE(SUM(views), 0) FROM articles WHERE created_at >= ? AND created_at < ?",
		from, to)
	return n, err
}

// CountCreatedBetween Articles created inside the window
func (r *articleRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM articles WHERE created_at >= ? AND created_at < ?", from, to)
	return n, err
}

// PublishedSlugs Slim rows for the sitemap, slug and publish time only
func (r *articleRepository) PublishedSlugs(ctx context.Context, limit int) ([]*model.Article, error) {
	articles := []*model.Article{}
	err := r.db.SelectContext(ctx, &articles,
		"SELECT id, slug, published_at FROM articles WHERE status = ? ORDER BY published_at DESC LIMIT ?",
		model.StatusPublished, limit)
	if err != nil {
		return nil, err
	}
	return articles, nil
}
