package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
)

// fakeNewsletterRepo In-memory subscription store for service tests
type fakeNewsletterRepo struct {
	subs map[int64]*model.Newsletter
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subs: make(map[int64]*model.Newsletter)}
}

func (r *fakeNewsletterRepo) Create(_ context.Context, sub *model.Newsletter) error {
	r.subs[sub.ID] = sub
	return nil
}

func (r *fakeNewsletterRepo) GetByID(_ context.Context, id int64) (*model.Newsletter, error) {
	return r.subs[id], nil
}

func (r *fakeNewsletterRepo) GetByEmail(_ context.Context, email string) (*model.Newsletter, error) {
	for _, s := range r.subs {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeNewsletterRepo) List(_ context.Context, _, _ int) ([]*model.Newsletter, error) {
	out := []*model.Newsletter{}
	for _, s := range r.subs {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeNewsletterRepo) Update(_ context.Context, sub *model.Newsletter) error {
	r.subs[sub.ID] = sub
	return nil
}

func (r *fakeNewsletterRepo) SetActive(_ context.Context, id int64, active bool) error {
	if s, ok := r.subs[id]; ok {
		s.IsActive = active
	}
	return nil
}

func (r *fakeNewsletterRepo) Delete(_ context.Context, id int64) error {
	delete(r.subs, id)
	return nil
}

func (r *fakeNewsletterRepo) CountActive(_ context.Context) (int, error) {
	n := 0
	for _, s := range r.subs {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeNewsletterRepo) CountSubscribedBetween(_ context.Context, _, _ time.Time) (int, error) {
	return 0, nil
}

func TestSubscribeNew(t *testing.T) {
	svc := NewNewsletterService(newFakeNewsletterRepo())

	sub, err := svc.Subscribe(context.Background(), "  Reader@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.True(t, sub.IsActive)
	assert.NotZero(t, sub.ID)
}

func TestSubscribeAlreadyActive(t *testing.T) {
	svc := NewNewsletterService(newFakeNewsletterRepo())
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "reader@example.com")
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, "reader@example.com")
	require.Error(t, err)
	ae, ok := err.(*apperr.AppError)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeAlreadySubscribed, ae.Code)
}

func TestSubscribeReactivates(t *testing.T) {
	repo := newFakeNewsletterRepo()
	repo.subs[5] = &model.Newsletter{
		ID:           5,
		Email:        "gone@example.com",
		SubscribedAt: time.Now().Add(-24 * time.Hour),
		IsActive:     false,
	}
	svc := NewNewsletterService(repo)

	sub, err := svc.Subscribe(context.Background(), "gone@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(5), sub.ID, "existing row is reactivated, not recreated")
	assert.True(t, sub.IsActive)
	assert.True(t, repo.subs[5].IsActive)
}

func TestSubscriberStoreNotFound(t *testing.T) {
	store := NewSubscriberStore(newFakeNewsletterRepo())

	_, err := store.Get(context.Background(), 404)
	require.Error(t, err)
	ae, ok := err.(*apperr.AppError)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeSubscriberNotFound, ae.Code)
}

func TestSubscriberStoreCreateDuplicate(t *testing.T) {
	store := NewSubscriberStore(newFakeNewsletterRepo())
	ctx := context.Background()

	_, err := store.Create(ctx, &model.Newsletter{Email: "a@example.com", IsActive: true})
	require.NoError(t, err)

	_, err = store.Create(ctx, &model.Newsletter{Email: "a@example.com", IsActive: true})
	require.Error(t, err)
	ae, ok := err.(*apperr.AppError)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeAlreadySubscribed, ae.Code)
}
