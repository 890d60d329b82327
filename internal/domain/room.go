package domain

import "time"

// RoomType is a bookable category of rooms. Capacity checks and pricing
// run against the type; physical rooms only matter once a stay is pinned.
type RoomType struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:120;uniqueIndex" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	NightlyRate float64   `json:"nightly_rate" validate:"required,gte=0"`
	Amenities   []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Room is one physical room. Only active rooms count toward the
// availability pool of their type.
type Room struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	RoomTypeID int64     `json:"room_type_id" gorm:"index" validate:"required"`
	Number     string    `json:"number" gorm:"size:16;uniqueIndex" validate:"required"`
	Floor      int       `json:"floor"`
	Active     bool      `json:"active" gorm:"default:true"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
