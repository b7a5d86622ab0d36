package model

import "time"

// Spot category values
const (
	SpotNature    = "nature"
	SpotUrban     = "urban"
	SpotPortrait  = "portrait"
	SpotLandscape = "landscape"
	SpotStreet    = "street"
)

// Spot Photo spot row
type Spot struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Location    string     `db:"location"`
	Latitude    float64    `db:"latitude"`
	Longitude   float64    `db:"longitude"`
	Category    string     `db:"category"`
	ImageURL    string     `db:"image_url"`
	Rating      float64    `db:"rating"`
	Tags        string     `db:"tags"` // comma-separated
	BestTime    string     `db:"best_time"`
	Equipment   string     `db:"equipment_needed"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// SpotCreateRequest Creation payload.
// Latitude/longitude are pointers so 0.0 passes the required check.
// Rating is bounded 0-5.
type SpotCreateRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description"`
	Location    string   `json:"location" binding:"required,max=255"`
	Latitude    *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Category    string   `json:"category" binding:"omitempty,oneof=nature urban portrait landscape street"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	Rating      float64  `json:"rating" binding:"min=0,max=5"`
	Tags        string   `json:"tags"`
	BestTime    string   `json:"best_time"`
	Equipment   string   `json:"equipment_needed"`
}

// SpotUpdateRequest Partial update, nil fields untouched
type SpotUpdateRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Location    *string  `json:"location" binding:"omitempty,max=255"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Category    *string  `json:"category" binding:"omitempty,oneof=nature urban portrait landscape street"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Tags        *string  `json:"tags"`
	BestTime    *string  `json:"best_time"`
	Equipment   *string  `json:"equipment_needed"`
}

// SpotResponse Spot representation
type SpotResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Category    string     `json:"category,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Rating      float64    `json:"rating"`
	Tags        string     `json:"tags,omitempty"`
	BestTime    string     `json:"best_time,omitempty"`
	Equipment   string     `json:"equipment_needed,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
