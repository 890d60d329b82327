package availability

import (
	"time"

	"frontdesk/internal/domain"
)

// AvailableRooms resolves which concrete rooms can host a stay. Rooms
// pinned by an overlapping reservation leave the pool entirely; each
// overlapping generic reservation consumes one unit of anonymous
// capacity, shrinking the pool from the tail. Generic stays claim no
// room identity until check-in, which keeps the count correct without
// forcing premature assignment.
//
// Rooms come back in the caller's order, so a repository listing by
// room number yields a stable assignment preference.
func AvailableRooms(typeID int64, checkIn, checkOut time.Time, rooms []domain.Room, existing []domain.Reservation, pol Policy, excludeID string) []domain.Room {
	pool := activeRoomsOfType(rooms, typeID)
	stayStart, stayEnd := stayWindow(pol, checkIn, checkOut)

	pinned := make(map[int64]bool)
	generic := 0
	for _, r := range existing {
		if !countsAgainst(r, typeID, excludeID) {
			continue
		}
		rStart, rEnd := stayWindow(pol, r.CheckInDate, r.CheckOutDate)
		if !overlaps(rStart, rEnd, stayStart, stayEnd) {
			continue
		}
		if r.RoomID != nil {
			pinned[*r.RoomID] = true
		} else {
			generic++
		}
	}

	remaining := make([]domain.Room, 0, len(pool))
	for _, room := range pool {
		if !pinned[room.ID] {
			remaining = append(remaining, room)
		}
	}

	n := len(remaining) - generic
	if n <= 0 {
		return []domain.Room{}
	}
	return remaining[:n]
}
