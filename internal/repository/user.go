package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"lumiere_go/internal/model"
)

// UserRepository User data access interface
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, search string, skip, limit int) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository Create user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = "id, username, email, password, full_name, is_admin, created_at"

// Create Insert user row
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, username, email, password, full_name, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.Password, user.FullName, user.IsAdmin)
	return err
}

// GetByID Fetch user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername Fetch user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE username = ?", username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail Fetch user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List Fetch users, optional case-insensitive search over username/email/full name
func (r *userRepository) List(ctx context.Context, search string, skip, limit int) ([]*model.User, error) {
	query := "SELECT " + userColumns + " FROM users"
	args := make([]interface{}, 0, 5)
	if search != "" {
		term := "%" + search + "%"
		query += " WHERE username LIKE ? OR email LIKE ? OR full_name LIKE ?"
		args = append(args, term, term, term)
	}
	query += " ORDER BY created_at DESC LIMIT ?, ?"
	args = append(args, skip, limit)

	users := []*model.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

// Update Persist mutable user fields
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET email = ?, full_name = ?, is_admin = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, user.Email, user.FullName, user.IsAdmin, user.ID)
	return err
}

// SetAdmin Flip the admin flag
func (r *userRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET is_admin = ? WHERE id = ?", isAdmin, id)
	return err
}

// Delete Remove user row
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	return err
}
