package reservation

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("reservation not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrRoomTypeNotFound   = errors.New("room type not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomMismatch       = errors.New("room does not belong to the requested room type")
	ErrRoomUnavailable    = errors.New("room not available for the stay")
	ErrNoRoomFree         = errors.New("no room free to assign")
	ErrDuplicateReference = errors.New("reservation reference already exists")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrStaleStatus        = errors.New("reservation status changed concurrently")
)
