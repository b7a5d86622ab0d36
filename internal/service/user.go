package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"lumiere_go/internal/core/config"
	"lumiere_go/internal/core/logger"
	"lumiere_go/internal/core/snowflake"
	"lumiere_go/internal/middleware"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
	"lumiere_go/internal/repository"
)

// UserService Accounts, credentials and token issuance
type UserService struct {
	repo   repository.UserRepository
	jwtCfg *config.JWTConfig
}

// NewUserService Create user service
func NewUserService(repo repository.UserRepository, jwtCfg *config.JWTConfig) *UserService {
	return &UserService{repo: repo, jwtCfg: jwtCfg}
}

// Register Create an account with a bcrypt-hashed password
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserDTO, error) {
	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Error("register: lookup username", logger.Err(err))
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if existing != nil {
		return nil, apperr.New(apperr.CodeDuplicateUsername, "username already registered")
	}

	existing, err = s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("register: lookup email", logger.Err(err))
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if existing != nil {
		return nil, apperr.New(apperr.CodeDuplicateEmail, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternalError)
	}

	user := &model.User{
		ID:       snowflake.Generate(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		logger.Error("register: create user", logger.Err(err))
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	return s.toDTO(user), nil
}

// Login Verify credentials and issue a bearer token.
// The failure message never reveals whether username or password was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		logger.Error("login: lookup user", logger.Err(err))
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if user == nil {
		return nil, apperr.New(apperr.CodeBadCredentials, "incorrect username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.New(apperr.CodeBadCredentials, "incorrect username or password")
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.IsAdmin, s.jwtCfg)
	if err != nil {
		logger.Error("login: sign token", logger.Err(err))
		return nil, apperr.Wrap(err, apperr.CodeInternalError)
	}

	return &model.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// GetByID Fetch one user
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.UserDTO, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if user == nil {
		return nil, apperr.New(apperr.CodeUserNotFound, "user not found")
	}
	return s.toDTO(user), nil
}

// List Fetch users for the dashboard
func (s *UserService) List(ctx context.Context, search string, skip, limit int) ([]*model.UserDTO, error) {
	users, err := s.repo.List(ctx, search, skip, limit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	dtos := make([]*model.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, s.toDTO(u))
	}
	return dtos, nil
}

// Update Apply a partial update, nil fields untouched
func (s *UserService) Update(ctx context.Context, id int64, req *model.UserUpdateRequest) (*model.UserDTO, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if user == nil {
		return nil, apperr.New(apperr.CodeUserNotFound, "user not found")
	}

	if req.Email != nil {
		other, err := s.repo.GetByEmail(ctx, *req.Email)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
		}
		if other != nil && other.ID != id {
			return nil, apperr.New(apperr.CodeDuplicateEmail, "email already registered")
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return s.toDTO(user), nil
}

// ToggleAdmin Flip the admin flag
func (s *UserService) ToggleAdmin(ctx context.Context, id int64) (*model.UserDTO, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if user == nil {
		return nil, apperr.New(apperr.CodeUserNotFound, "user not found")
	}

	user.IsAdmin = !user.IsAdmin
	if err := s.repo.SetAdmin(ctx, id, user.IsAdmin); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return s.toDTO(user), nil
}

// Delete Remove an account
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if user == nil {
		return apperr.New(apperr.CodeUserNotFound, "user not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return nil
}

func (s *UserService) toDTO(u *model.User) *model.UserDTO {
	return &model.UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
