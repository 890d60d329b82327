package domain

import "time"

// Customer is a guest record. Deleting a customer cascades into their
// reservations; nothing else ever physically deletes a reservation.
type Customer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"size:200;index" validate:"required"`
	Email     string    `json:"email,omitempty" gorm:"size:200;index"`
	Phone     string    `json:"phone,omitempty" gorm:"size:32"`
	Document  string    `json:"document,omitempty" gorm:"size:64"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
