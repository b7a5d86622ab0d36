package model

import "time"

// Newsletter Newsletter subscription row
type Newsletter struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	SubscribedAt time.Time `db:"subscribed_at"`
	IsActive     bool      `db:"is_active"`
}

// SubscribeRequest Public subscription payload
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SubscriberUpdateRequest Admin partial update, nil fields untouched
type SubscriberUpdateRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

// SubscriberResponse Subscriber representation
type SubscriberResponse struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	IsActive     bool      `json:"is_active"`
}
