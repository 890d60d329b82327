package reservation

import (
	"frontdesk/internal/availability"
	"frontdesk/internal/domain"
)

type CreateReservationRequest struct {
	// Reference is optional; a fresh one is minted when empty.
	Reference       string `json:"reference"`
	CustomerID      int64  `json:"customer_id" binding:"required"`
	RoomTypeID      int64  `json:"room_type_id" binding:"required"`
	RoomID          *int64 `json:"room_id"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	Guests          int    `json:"guests" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateStayRequest struct {
	RoomTypeID      int64  `json:"room_type_id" binding:"required"`
	RoomID          *int64 `json:"room_id"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	Guests          int    `json:"guests" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AvailabilityRequest struct {
	RoomTypeID   int64  `json:"room_type_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	// ExcludeID leaves one reservation out of the count, so a stay can
	// be re-checked against a pool that does not include itself.
	ExcludeID string `json:"exclude_id"`
}

// Details is the reservation as the front desk sees it: the stored row
// plus display names and the live lifecycle indicators. Names fall back
// to the raw id when the referenced record is gone.
type Details struct {
	domain.Reservation
	CustomerName string                  `json:"customer_name"`
	RoomTypeName string                  `json:"room_type_name"`
	RoomNumber   string                  `json:"room_number,omitempty"`
	Indicators   availability.Indicators `json:"indicators"`
}
