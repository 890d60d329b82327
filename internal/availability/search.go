package availability

import (
	"time"

	"frontdesk/internal/domain"
)

// searchHorizonDays caps the forward scan; past a year out the answer
// is "not found" rather than an unbounded walk.
const searchHorizonDays = 365

// NextFeasibleStart scans forward day by day for the first start date
// where a stay of the requested length still has at least one room of
// the type. The scan begins at max(today, from+1 day). Capacity over
// time is a step function with no structure to exploit, so at the
// scale of one property a bounded linear scan is the whole algorithm.
func NextFeasibleStart(typeID int64, nights int, from, now time.Time, rooms []domain.Room, existing []domain.Reservation, pol Policy, excludeID string) (time.Time, bool) {
	if nights <= 0 {
		return time.Time{}, false
	}

	start := pol.DateOf(from).AddDate(0, 0, 1)
	if today := pol.Today(now); start.Before(today) {
		start = today
	}

	for i := 0; i < searchHorizonDays; i++ {
		candidate := start.AddDate(0, 0, i)
		end := candidate.AddDate(0, 0, nights)
		if len(AvailableRooms(typeID, candidate, end, rooms, existing, pol, excludeID)) > 0 {
			return candidate, true
		}
	}
	return time.Time{}, false
}
