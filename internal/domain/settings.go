package domain

import "time"

const (
	DefaultCheckInTime  = "15:00"
	DefaultCheckOutTime = "11:00"
	DefaultTimezone     = "UTC"
)

// HotelSettings is a singleton row (ID is always 1). CheckInTime and
// CheckOutTime are stored as "HH:MM" strings and parsed when the
// availability policy is built; Timezone is an IANA zone name.
type HotelSettings struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	HotelName    string    `json:"hotel_name" gorm:"size:200"`
	Address      string    `json:"address,omitempty" gorm:"size:300"`
	Phone        string    `json:"phone,omitempty" gorm:"size:32"`
	CheckInTime  string    `json:"check_in_time" gorm:"size:5"`
	CheckOutTime string    `json:"check_out_time" gorm:"size:5"`
	Timezone     string    `json:"timezone" gorm:"size:64"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func DefaultHotelSettings() HotelSettings {
	return HotelSettings{
		ID:           1,
		HotelName:    "Front Desk Hotel",
		CheckInTime:  DefaultCheckInTime,
		CheckOutTime: DefaultCheckOutTime,
		Timezone:     DefaultTimezone,
	}
}
