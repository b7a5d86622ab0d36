package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"lumiere_go/internal/model"
)

// NewsletterRepository Newsletter subscription data access interface
type NewsletterRepository interface {
	Create(ctx context.Context, sub *model.Newsletter) error
	GetByID(ctx context.Context, id int64) (*model.Newsletter, error)
	GetByEmail(ctx context.Context, email string) (*model.Newsletter, error)
	List(ctx context.Context, skip, limit int) ([]*model.Newsletter, error)
	Update(ctx context.Context, sub *model.Newsletter) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	CountActive(ctx context.Context) (int, error)
	CountSubscribedBetween(ctx context.Context, from, to time.Time) (int, error)
}

type newsletterRepository struct {
	db *sqlx.DB
}

// NewNewsletterRepository Create newsletter repository
func NewNewsletterRepository(db *sqlx.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

const newsletterColumns = "id, email, subscribed_at, is_active"

// Create Insert subscription row
func (r *newsletterRepository) Create(ctx context.Context, sub *model.Newsletter) error {
	query := `INSERT INTO newsletter (id, email, subscribed_at, is_active) VALUES (?, ?, NOW(), ?)`
	_, err := r.db.ExecContext(ctx, query, sub.ID, sub.Email, sub.IsActive)
	return err
}

// GetByID Fetch subscription by ID
func (r *newsletterRepository) GetByID(ctx context.Context, id int64) (*model.Newsletter, error) {
	var sub model.Newsletter
	err := r.db.GetContext(ctx, &sub,
		"SELECT "+newsletterColumns+" FROM newsletter WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByEmail Fetch subscription by email
func (r *newsletterRepository) GetByEmail(ctx context.Context, email string) (*model.Newsletter, error) {
	var sub model.Newsletter
	err := r.db.GetContext(ctx, &sub,
		"SELECT "+newsletterColumns+" FROM newsletter WHERE email = ?", email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// List Fetch subscriptions, newest first
func (r *newsletterRepository) List(ctx context.Context, skip, limit int) ([]*model.Newsletter, error) {
	subs := []*model.Newsletter{}
	err := r.db.SelectContext(ctx, &subs,
		"SELECT "+newsletterColumns+" FROM newsletter ORDER BY subscribed_at DESC LIMIT ?, ?",
		skip, limit)
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Update Persist mutable subscription fields
func (r *newsletterRepository) Update(ctx context.Context, sub *model.Newsletter) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE newsletter SET email = ?, is_active = ? WHERE id = ?",
		sub.Email, sub.IsActive, sub.ID)
	return err
}

// SetActive Flip the active flag
func (r *newsletterRepository) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.ExecContext(ctx, "UPDATE newsletter SET is_active = ? WHERE id = ?", active, id)
	return err
}

// Delete Remove subscription row
func (r *newsletterRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM newsletter WHERE id = ?", id)
	return err
}

// CountActive Active subscriber count
func (r *newsletterRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM newsletter WHERE is_active = 1")
	return n, err
}

// CountSubscribedBetween Subscriptions created inside the window
func (r *newsletterRepository) CountSubscribedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM newsletter WHERE subscribed_at >= ? AND subscribed_at < ?", from, to)
	return n, err
}
