package domain

import "time"

type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

func ValidReservationStatuses() []ReservationStatus {
	return []ReservationStatus{
		ReservationConfirmed,
		ReservationCheckedIn,
		ReservationCheckedOut,
		ReservationCancelled,
	}
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled:
		return true
	}
	return false
}

// Terminal statuses are never left again.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCheckedOut || s == ReservationCancelled
}

// CanTransitionTo is the single source of truth for the reservation
// lifecycle: confirmed -> checked_in -> checked_out, with cancellation
// allowed from confirmed and checked_in only.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationConfirmed:
		return next == ReservationCheckedIn || next == ReservationCancelled
	case ReservationCheckedIn:
		return next == ReservationCheckedOut || next == ReservationCancelled
	default:
		return false
	}
}

// OccupiesRoom reports whether a reservation in this status still holds
// room inventory. Cancelled and checked-out stays release their nights.
func (s ReservationStatus) OccupiesRoom() bool {
	return s == ReservationConfirmed || s == ReservationCheckedIn
}

// Reservation is a booked stay. CheckInDate and CheckOutDate are
// date-only values (midnight in the hotel timezone); the checkout day
// itself is not occupied. RoomID stays nil for a generic booking until
// a concrete room is pinned, at the latest during check-in.
type Reservation struct {
	ID              string            `json:"id" gorm:"primaryKey;size:32"`
	CustomerID      int64             `json:"customer_id" gorm:"column:customer_id;index"`
	RoomTypeID      int64             `json:"room_type_id" gorm:"column:room_type_id;index"`
	RoomID          *int64            `json:"room_id,omitempty" gorm:"column:room_id;index"`
	CheckInDate     time.Time         `json:"check_in_date" gorm:"column:check_in_date;index"`
	CheckOutDate    time.Time         `json:"check_out_date" gorm:"column:check_out_date;index"`
	Guests          int               `json:"guests"`
	TotalAmount     float64           `json:"total_amount"`
	Status          ReservationStatus `json:"status" gorm:"size:16;index"`
	SpecialRequests string            `json:"special_requests,omitempty" gorm:"type:text"`
	CancelReason    string            `json:"cancel_reason,omitempty" gorm:"type:text"`
	ReminderSent    bool              `json:"reminder_sent"`
	ReminderSentAt  *time.Time        `json:"reminder_sent_at,omitempty"`
	CheckedInAt     *time.Time        `json:"checked_in_at,omitempty"`
	CheckedOutAt    *time.Time        `json:"checked_out_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Generic reservations hold capacity of a room type without naming a room.
func (r *Reservation) Generic() bool { return r.RoomID == nil }

// Nights counts the occupied nights of the stay. Counting calendar days
// instead of dividing a duration keeps DST-shortened days correct.
func (r *Reservation) Nights() int {
	n := 0
	for d := r.CheckInDate; d.Before(r.CheckOutDate); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}
