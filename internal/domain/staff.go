package domain

import "time"

type StaffRole string

const (
	RoleManager StaffRole = "manager"
	RoleDesk    StaffRole = "desk"
)

func (r StaffRole) Valid() bool {
	return r == RoleManager || r == RoleDesk
}

// StaffUser is a front-desk operator account. Managers may additionally
// change hotel settings and the room catalog.
type StaffUser struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:200;uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"size:128"`
	Name         string    `json:"name" gorm:"size:200"`
	Role         StaffRole `json:"role" gorm:"size:16"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
