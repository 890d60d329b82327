package reservation

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"frontdesk/internal/availability"
	"frontdesk/internal/domain"
	"frontdesk/internal/notifier"
	"frontdesk/internal/pkg/ref"
	"frontdesk/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	reservations ReservationStore
	rooms        RoomStore
	roomTypes    RoomTypeStore
	customers    CustomerStore
	settings     SettingsStore
	notifs       notifier.Notifier
	events       EventPublisher
	clock        availability.Clock
}

func NewService(
	reservations ReservationStore,
	rooms RoomStore,
	roomTypes RoomTypeStore,
	customers CustomerStore,
	settings SettingsStore,
	notifs notifier.Notifier,
	events EventPublisher,
	clock availability.Clock,
) *Service {
	if clock == nil {
		clock = availability.SystemClock{}
	}
	return &Service{
		reservations: reservations,
		rooms:        rooms,
		roomTypes:    roomTypes,
		customers:    customers,
		settings:     settings,
		notifs:       notifs,
		events:       events,
		clock:        clock,
	}
}

// policy loads the hotel settings and turns them into the single time
// reference every date computation in this module uses.
func (s *Service) policy(ctx context.Context) (availability.Policy, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return availability.Policy{}, err
	}
	return availability.PolicyFrom(*st), nil
}

// snapshot fetches the room pool and every reservation of the type in
// one place, so each engine call runs against one consistent read.
func (s *Service) snapshot(ctx context.Context, roomTypeID int64) ([]domain.Room, []domain.Reservation, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	existing, err := s.reservations.ListByRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, nil, err
	}
	return rooms, existing, nil
}

// Create books a stay. A non-empty conflict list means the stay was
// rejected for capacity; that is a normal outcome, not an error.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, []availability.Night, error) {
	pol, err := s.policy(ctx)
	if err != nil {
		return nil, nil, err
	}

	checkIn, checkOut, err := parseStay(pol, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, nil, err
	}
	if req.Guests <= 0 {
		return nil, nil, ErrValidation
	}

	cust, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrCustomerNotFound
		}
		return nil, nil, err
	}

	rt, err := s.roomTypes.GetByID(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrRoomTypeNotFound
		}
		return nil, nil, err
	}

	rooms, existing, err := s.snapshot(ctx, req.RoomTypeID)
	if err != nil {
		return nil, nil, err
	}

	stay := availability.Stay{RoomTypeID: req.RoomTypeID, CheckIn: checkIn, CheckOut: checkOut}
	if nights := availability.FindOverbookedNights(stay, existing, rooms, pol); len(nights) > 0 {
		return nil, nights, nil
	}

	if req.RoomID != nil {
		if err := s.roomFits(ctx, *req.RoomID, req.RoomTypeID); err != nil {
			return nil, nil, err
		}
		free := availability.AvailableRooms(req.RoomTypeID, checkIn, checkOut, rooms, existing, pol, "")
		if !containsRoom(free, *req.RoomID) {
			return nil, nil, ErrRoomUnavailable
		}
	}

	id := strings.ToUpper(strings.TrimSpace(req.Reference))
	if id == "" {
		id, err = ref.NewReservationRef()
		if err != nil {
			return nil, nil, err
		}
	} else if !ref.Valid(id) {
		return nil, nil, ErrValidation
	}

	res := &domain.Reservation{
		ID:              id,
		CustomerID:      req.CustomerID,
		RoomTypeID:      req.RoomTypeID,
		RoomID:          req.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          req.Guests,
		Status:          domain.ReservationConfirmed,
		SpecialRequests: req.SpecialRequests,
	}
	res.TotalAmount = float64(res.Nights()) * rt.NightlyRate

	if err := s.reservations.Create(ctx, res); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, nil, ErrDuplicateReference
		}
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, nil, ErrDuplicateReference
		}
		return nil, nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.SendConfirmation(ctx, *res, *cust); err != nil {
			log.Printf("confirmation mail failed reservation=%s err=%v", res.ID, err)
		}
	}
	s.publish("reservation_created", *res)

	return res, nil, nil
}

// UpdateStay rewrites the stay window, room type, room and guest count
// of a live reservation, re-checking capacity with the reservation's
// own footprint excluded. Terminal reservations are immutable.
func (s *Service) UpdateStay(ctx context.Context, id string, req UpdateStayRequest) (*Details, []availability.Night, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if res.Status.Terminal() {
		return nil, nil, ErrInvalidTransition
	}

	pol, err := s.policy(ctx)
	if err != nil {
		return nil, nil, err
	}
	checkIn, checkOut, err := parseStay(pol, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, nil, err
	}
	if req.Guests <= 0 {
		return nil, nil, ErrValidation
	}

	rt, err := s.roomTypes.GetByID(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrRoomTypeNotFound
		}
		return nil, nil, err
	}

	rooms, existing, err := s.snapshot(ctx, req.RoomTypeID)
	if err != nil {
		return nil, nil, err
	}

	stay := availability.Stay{RoomTypeID: req.RoomTypeID, CheckIn: checkIn, CheckOut: checkOut, ExcludeID: res.ID}
	if nights := availability.FindOverbookedNights(stay, existing, rooms, pol); len(nights) > 0 {
		return nil, nights, nil
	}

	if req.RoomID != nil {
		if err := s.roomFits(ctx, *req.RoomID, req.RoomTypeID); err != nil {
			return nil, nil, err
		}
		free := availability.AvailableRooms(req.RoomTypeID, checkIn, checkOut, rooms, existing, pol, res.ID)
		if !containsRoom(free, *req.RoomID) {
			return nil, nil, ErrRoomUnavailable
		}
	}

	res.RoomTypeID = req.RoomTypeID
	res.RoomID = req.RoomID
	res.CheckInDate = checkIn
	res.CheckOutDate = checkOut
	res.Guests = req.Guests
	res.SpecialRequests = req.SpecialRequests
	res.TotalAmount = float64(res.Nights()) * rt.NightlyRate

	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, nil, err
	}
	s.publish("reservation_updated", *res)

	d, err := s.describe(ctx, *res, pol)
	if err != nil {
		return nil, nil, err
	}
	return d, nil, nil
}

// Describe returns one reservation with display names and indicators.
func (s *Service) Describe(ctx context.Context, id string) (*Details, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	pol, err := s.policy(ctx)
	if err != nil {
		return nil, err
	}
	return s.describe(ctx, *res, pol)
}

// List returns reservations matching the filter, newest stay first is
// the repository's concern; this layer only decorates.
func (s *Service) List(ctx context.Context, f repository.ListFilter) ([]Details, error) {
	rows, err := s.reservations.List(ctx, f)
	if err != nil {
		return nil, err
	}
	pol, err := s.policy(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Details, 0, len(rows))
	for _, r := range rows {
		d, err := s.describe(ctx, r, pol)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

// CheckIn moves a confirmed reservation to checked_in. Generic
// reservations get the first free room of their type pinned here;
// the write is gated on the status the decision saw.
func (s *Service) CheckIn(ctx context.Context, id string) (*Details, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanTransitionTo(domain.ReservationCheckedIn) {
		return nil, ErrInvalidTransition
	}

	pol, err := s.policy(ctx)
	if err != nil {
		return nil, err
	}

	roomID := res.RoomID
	if roomID == nil {
		rooms, existing, err := s.snapshot(ctx, res.RoomTypeID)
		if err != nil {
			return nil, err
		}
		free := availability.AvailableRooms(res.RoomTypeID, res.CheckInDate, res.CheckOutDate, rooms, existing, pol, res.ID)
		if len(free) == 0 {
			return nil, ErrNoRoomFree
		}
		roomID = &free[0].ID
	}

	ok, err := s.reservations.Transition(ctx, res.ID, res.Status, domain.ReservationCheckedIn, repository.TransitionOpts{
		RoomID: roomID,
		At:     s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStaleStatus
	}
	return s.reload(ctx, res.ID, "reservation_checked_in", pol)
}

// CheckOut moves a checked_in reservation to checked_out.
func (s *Service) CheckOut(ctx context.Context, id string) (*Details, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanTransitionTo(domain.ReservationCheckedOut) {
		return nil, ErrInvalidTransition
	}
	pol, err := s.policy(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := s.reservations.Transition(ctx, res.ID, res.Status, domain.ReservationCheckedOut, repository.TransitionOpts{
		At: s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStaleStatus
	}
	return s.reload(ctx, res.ID, "reservation_checked_out", pol)
}

// Cancel releases a reservation's inventory. Allowed from confirmed and
// checked_in; the reason is stored verbatim.
func (s *Service) Cancel(ctx context.Context, id, reason string) (*Details, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanTransitionTo(domain.ReservationCancelled) {
		return nil, ErrInvalidTransition
	}
	pol, err := s.policy(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := s.reservations.Transition(ctx, res.ID, res.Status, domain.ReservationCancelled, repository.TransitionOpts{
		Reason: reason,
		At:     s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStaleStatus
	}

	if s.notifs != nil {
		if cust, err := s.customers.GetByID(ctx, res.CustomerID); err == nil {
			if err := s.notifs.SendCancellation(ctx, *res, *cust, reason); err != nil {
				log.Printf("cancellation mail failed reservation=%s err=%v", res.ID, err)
			}
		}
	}
	return s.reload(ctx, res.ID, "reservation_cancelled", pol)
}

// CheckAvailability reports the overbooked nights for a proposed stay.
// An empty list means the stay is admissible.
func (s *Service) CheckAvailability(ctx context.Context, req AvailabilityRequest) ([]availability.Night, error) {
	pol, err := s.policy(ctx)
	if err != nil {
		return nil, err
	}
	checkIn, checkOut, err := parseStay(pol, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.roomTypes.GetByID(ctx, req.RoomTypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	rooms, existing, err := s.snapshot(ctx, req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	stay := availability.Stay{RoomTypeID: req.RoomTypeID, CheckIn: checkIn, CheckOut: checkOut, ExcludeID: req.ExcludeID}
	return availability.FindOverbookedNights(stay, existing, rooms, pol), nil
}

// RoomsAvailable lists the concrete rooms still free for a window.
func (s *Service) RoomsAvailable(ctx context.Context, roomTypeID int64, checkInDate, checkOutDate, excludeID string) ([]domain.Room, error) {
	pol, err := s.policy(ctx)
	if err != nil {
		return nil, err
	}
	checkIn, checkOut, err := parseStay(pol, checkInDate, checkOutDate)
	if err != nil {
		return nil, err
	}
	rooms, existing, err := s.snapshot(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	return availability.AvailableRooms(roomTypeID, checkIn, checkOut, rooms, existing, pol, excludeID), nil
}

// NextDate finds the first feasible start date for a stay of the given
// length, scanning forward from the day after fromDate. The boolean is
// false when the scan exhausts its horizon.
func (s *Service) NextDate(ctx context.Context, roomTypeID int64, nights int, fromDate, excludeID string) (string, bool, error) {
	if nights <= 0 {
		return "", false, ErrValidation
	}
	pol, err := s.policy(ctx)
	if err != nil {
		return "", false, err
	}
	now := s.clock.Now()
	from := pol.Today(now)
	if fromDate != "" {
		from, err = pol.ParseDate(fromDate)
		if err != nil {
			return "", false, ErrValidation
		}
	}
	rooms, existing, err := s.snapshot(ctx, roomTypeID)
	if err != nil {
		return "", false, err
	}
	start, found := availability.NextFeasibleStart(roomTypeID, nights, from, now, rooms, existing, pol, excludeID)
	if !found {
		return "", false, nil
	}
	return start.Format(availability.DateLayout), true, nil
}

func (s *Service) get(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *Service) reload(ctx context.Context, id, event string, pol availability.Policy) (*Details, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(event, *res)
	return s.describe(ctx, *res, pol)
}

func (s *Service) describe(ctx context.Context, r domain.Reservation, pol availability.Policy) (*Details, error) {
	d := &Details{Reservation: r}
	d.Indicators = availability.ComputeIndicators(r, s.clock.Now(), pol)

	if cust, err := s.customers.GetByID(ctx, r.CustomerID); err == nil {
		d.CustomerName = cust.FullName
	} else {
		d.CustomerName = strconv.FormatInt(r.CustomerID, 10)
	}
	if rt, err := s.roomTypes.GetByID(ctx, r.RoomTypeID); err == nil {
		d.RoomTypeName = rt.Name
	} else {
		d.RoomTypeName = strconv.FormatInt(r.RoomTypeID, 10)
	}
	if r.RoomID != nil {
		if room, err := s.rooms.GetByID(ctx, *r.RoomID); err == nil {
			d.RoomNumber = room.Number
		} else {
			d.RoomNumber = strconv.FormatInt(*r.RoomID, 10)
		}
	}
	return d, nil
}

func (s *Service) roomFits(ctx context.Context, roomID, roomTypeID int64) error {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	if room.RoomTypeID != roomTypeID {
		return ErrRoomMismatch
	}
	if !room.Active {
		return ErrRoomUnavailable
	}
	return nil
}

func (s *Service) publish(event string, r domain.Reservation) {
	if s.events != nil {
		s.events.PublishReservation(event, r)
	}
}

func parseStay(pol availability.Policy, checkInDate, checkOutDate string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = pol.ParseDate(checkInDate)
	if err != nil {
		return checkIn, checkOut, ErrValidation
	}
	checkOut, err = pol.ParseDate(checkOutDate)
	if err != nil {
		return checkIn, checkOut, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return checkIn, checkOut, ErrValidation
	}
	return checkIn, checkOut, nil
}

func containsRoom(rooms []domain.Room, id int64) bool {
	for _, r := range rooms {
		if r.ID == id {
			return true
		}
	}
	return false
}
