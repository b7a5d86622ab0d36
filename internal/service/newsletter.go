package service

import (
	"context"
	"strings"
	"time"

	"lumiere_go/internal/core/logger"
	"lumiere_go/internal/core/snowflake"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
	"lumiere_go/internal/repository"
)

// NewsletterService Public newsletter subscription flow
type NewsletterService struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService Create newsletter service
func NewNewsletterService(repo repository.NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

// Subscribe Register an email address.
// A previously unsubscribed address is reactivated in place; an address
// that is already active is rejected.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*model.SubscriberResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	if existing != nil {
		if existing.IsActive {
			return nil, apperr.New(apperr.CodeAlreadySubscribed, "email already subscribed")
		}
		if err := s.repo.SetActive(ctx, existing.ID, true); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
		}
		existing.IsActive = true
		return toSubscriberResponse(existing), nil
	}

	sub := &model.Newsletter{
		ID:           snowflake.Generate(),
		Email:        email,
		SubscribedAt: time.Now(),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		logger.Error("newsletter subscribe", logger.Err(err))
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return toSubscriberResponse(sub), nil
}

// NewsletterFromSubscribe Converter for the generic resource facade
func NewsletterFromSubscribe(req *model.SubscribeRequest) *model.Newsletter {
	return &model.Newsletter{Email: req.Email, IsActive: true}
}

// ApplySubscriberUpdate Partial update converter for the generic resource facade
func ApplySubscriberUpdate(sub *model.Newsletter, req *model.SubscriberUpdateRequest) *model.Newsletter {
	if req.Email != nil {
		sub.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	return sub
}

// SubscriberToResponse Response converter for the generic resource facade
func SubscriberToResponse(sub *model.Newsletter) *model.SubscriberResponse {
	return toSubscriberResponse(sub)
}

func toSubscriberResponse(sub *model.Newsletter) *model.SubscriberResponse {
	return &model.SubscriberResponse{
		ID:           sub.ID,
		Email:        sub.Email,
		SubscribedAt: sub.SubscribedAt,
		IsActive:     sub.IsActive,
	}
}

// SubscriberStore Adapts the newsletter repository to the generic resource
// facade used by the dashboard.
type SubscriberStore struct {
	repo repository.NewsletterRepository
}

// NewSubscriberStore Create subscriber store
func NewSubscriberStore(repo repository.NewsletterRepository) *SubscriberStore {
	return &SubscriberStore{repo: repo}
}

// List Fetch subscribers, newest first
func (s *SubscriberStore) List(ctx context.Context, skip, limit int) ([]*model.Newsletter, error) {
	subs, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return subs, nil
}

// Get Fetch one subscriber
func (s *SubscriberStore) Get(ctx context.Context, id int64) (*model.Newsletter, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if sub == nil {
		return nil, apperr.New(apperr.CodeSubscriberNotFound, "subscriber not found")
	}
	return sub, nil
}

// Create Insert a subscriber row created by an admin
func (s *SubscriberStore) Create(ctx context.Context, sub *model.Newsletter) (*model.Newsletter, error) {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))

	existing, err := s.repo.GetByEmail(ctx, sub.Email)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if existing != nil {
		return nil, apperr.New(apperr.CodeAlreadySubscribed, "email already subscribed")
	}

	sub.ID = snowflake.Generate()
	sub.SubscribedAt = time.Now()
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return sub, nil
}

// Update Persist subscriber changes
func (s *SubscriberStore) Update(ctx context.Context, sub *model.Newsletter) (*model.Newsletter, error) {
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return sub, nil
}

// Delete Remove a subscriber
func (s *SubscriberStore) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	return nil
}
