package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"lumiere_go/internal/model"
)

// SpotRepository Photo spot data access interface
type SpotRepository interface {
	Create(ctx context.Context, spot *model.Spot) error
	GetByID(ctx context.Context, id int64) (*model.Spot, error)
	List(ctx context.Context, category, search string, skip, limit int) ([]*model.Spot, error)
	Update(ctx context.Context, spot *model.Spot) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}

type spotRepository struct {
	db *sqlx.DB
}

// NewSpotRepository Create spot repository
func NewSpotRepository(db *sqlx.DB) SpotRepository {
	return &spotRepository{db: db}
}

const spotColumns = `id, name, description, location, latitude, longitude, category,
	image_url, rating, tags, best_time, equipment_needed, created_at, updated_at`

// Create Insert spot row
func (r *spotRepository) Create(ctx context.Context, s *model.Spot) error {
	query := `
		INSERT INTO spots (id, name, description, location, latitude, longitude, category,
			image_url, rating, tags, best_time, equipment_needed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Description, s.Location, s.Latitude, s.Longitude, s.Category,
		s.ImageURL, s.Rating, s.Tags, s.BestTime, s.Equipment)
	return err
}

// GetByID Fetch spot by ID
func (r *spotRepository) GetByID(ctx context.Context, id int64) (*model.Spot, error) {
	var s model.Spot
	err := r.db.GetContext(ctx, &s,
		"SELECT "+spotColumns+" FROM spots WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List Fetch spots ordered by rating descending.
// search matches name or location, case-insensitive substring.
func (r *spotRepository) List(ctx context.Context, category, search string, skip, limit int) ([]*model.Spot, error) {
	query := "SELECT " + spotColumns + " FROM spots WHERE 1=1"
	args := make([]interface{}, 0, 5)
	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query += " AND (LOWER(name) LIKE ? OR LOWER(location) LIKE ?)"
		args = append(args, term, term)
	}
	query += " ORDER BY rating DESC LIMIT ?, ?"
	args = append(args, skip, limit)

	spots := []*model.Spot{}
	if err := r.db.SelectContext(ctx, &spots, query, args...); err != nil {
		return nil, err
	}
	return spots, nil
}

// Update Persist mutable spot fields
func (r *spotRepository) Update(ctx context.Context, s *model.Spot) error {
	query := `
		UPDATE spots SET name = ?, description = ?, location = ?, latitude = ?, longitude = ?,
			category = ?, image_url = ?, rating = ?, tags = ?, best_time = ?,
			equipment_needed = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		s.Name, s.Description, s.Location, s.Latitude, s.Longitude,
		s.Category, s.ImageURL, s.Rating, s.Tags, s.BestTime, s.Equipment, s.ID)
	return err
}

// Delete Remove spot row
func (r *spotRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM spots WHERE id = ?", id)
	return err
}

// Count Total spot count
func (r *spotRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM spots")
	return n, err
}

// CountCreatedBetween Spots created inside the window
func (r *spotRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM spots WHERE created_at >= ? AND created_at < ?", from, to)
	return n, err
}
