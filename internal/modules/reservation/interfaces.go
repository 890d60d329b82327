package reservation

import (
	"context"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"
)

// ReservationStore defines the persistence operations the service needs.
type ReservationStore interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, f repository.ListFilter) ([]domain.Reservation, error)
	ListByRoomType(ctx context.Context, roomTypeID int64) ([]domain.Reservation, error)
	ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Transition(ctx context.Context, id string, from, to domain.ReservationStatus, opts repository.TransitionOpts) (bool, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error)
}

// RoomStore supplies the room pool the availability engine runs against.
type RoomStore interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type RoomTypeStore interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
}

type CustomerStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type SettingsStore interface {
	Get(ctx context.Context) (*domain.HotelSettings, error)
}

// EventPublisher pushes reservation lifecycle events to the live feed.
// Delivery is best effort; implementations drop what they cannot send.
type EventPublisher interface {
	PublishReservation(event string, r domain.Reservation)
}
