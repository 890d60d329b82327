package availability

import (
	"time"

	"frontdesk/internal/domain"
)

// Stay is a candidate booking window to test against existing
// reservations. ExcludeID lets an edit disregard its own record when
// recomputing availability.
type Stay struct {
	RoomTypeID int64
	CheckIn    time.Time
	CheckOut   time.Time
	ExcludeID  string
}

// Night is one overbooked calendar night of a candidate stay.
type Night struct {
	Date     time.Time `json:"date"`
	Occupied int       `json:"occupied"`
	Capacity int       `json:"capacity"`
}

// overlaps is the half-open interval test: [a,b) and [c,d) overlap iff
// a < d and c < b. Touching boundaries, i.e. same-day turnover, never
// count as overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// stayWindow resolves the occupancy interval of a stay:
// [checkIn at check-in time, checkOut at check-out time).
func stayWindow(pol Policy, checkIn, checkOut time.Time) (time.Time, time.Time) {
	start := pol.ResolveInstant(pol.DateOf(checkIn), pol.CheckIn)
	end := pol.ResolveInstant(pol.DateOf(checkOut), pol.CheckOut)
	return start, end
}

// countsAgainst reports whether an existing reservation competes with a
// candidate for rooms of typeID. Cancelled and checked-out stays hold
// no inventory.
func countsAgainst(r domain.Reservation, typeID int64, excludeID string) bool {
	if r.RoomTypeID != typeID || !r.Status.OccupiesRoom() {
		return false
	}
	return excludeID == "" || r.ID != excludeID
}

func activeRoomsOfType(rooms []domain.Room, typeID int64) []domain.Room {
	out := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Active && room.RoomTypeID == typeID {
			out = append(out, room)
		}
	}
	return out
}

// FindOverbookedNights walks every night of the candidate stay, from
// check-in up to but not including check-out, and counts same-type
// reservations whose occupancy window overlaps that night's window
// [night at check-in time, night+1 at check-out time). A night fails
// when the candidate would push the count past the number of active
// rooms of the type. An empty result means the stay is admissible.
//
// Per-night iteration instead of a single whole-stay check is what lets
// the caller report exactly which nights conflict.
func FindOverbookedNights(stay Stay, existing []domain.Reservation, rooms []domain.Room, pol Policy) []Night {
	capacity := len(activeRoomsOfType(rooms, stay.RoomTypeID))
	checkIn := pol.DateOf(stay.CheckIn)
	checkOut := pol.DateOf(stay.CheckOut)

	overbooked := make([]Night, 0)
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		nightStart := pol.ResolveInstant(night, pol.CheckIn)
		nightEnd := pol.ResolveInstant(night.AddDate(0, 0, 1), pol.CheckOut)

		occupied := 0
		for _, r := range existing {
			if !countsAgainst(r, stay.RoomTypeID, stay.ExcludeID) {
				continue
			}
			rStart, rEnd := stayWindow(pol, r.CheckInDate, r.CheckOutDate)
			if overlaps(rStart, rEnd, nightStart, nightEnd) {
				occupied++
			}
		}

		if occupied+1 > capacity {
			overbooked = append(overbooked, Night{Date: night, Occupied: occupied, Capacity: capacity})
		}
	}
	return overbooked
}
