package availability

import (
	"fmt"
	"time"

	"frontdesk/internal/domain"
)

// NoShowCutoff is the fixed local time on the check-in day after which
// a confirmed, not-checked-in reservation is auto-cancelled. Unlike the
// check-in/check-out times it is deliberately not configurable.
var NoShowCutoff = ClockTime{Hour: 11}

// noShowRiskFrom is the local time from which the day-after risk
// indicator starts showing.
var noShowRiskFrom = ClockTime{Hour: 1}

const reminderWindowDays = 3

// Indicators are derived, never stored; they are recomputed from the
// reservation state and the current instant on every read.
type Indicators struct {
	OverdueCheckout bool `json:"overdue_checkout"`
	PendingReminder bool `json:"pending_reminder"`
	NoShowRisk      bool `json:"no_show_risk"`
}

func ComputeIndicators(r domain.Reservation, now time.Time, pol Policy) Indicators {
	today := pol.Today(now)
	checkIn := pol.DateOf(r.CheckInDate)
	checkOut := pol.DateOf(r.CheckOutDate)

	var ind Indicators

	if r.Status == domain.ReservationCheckedIn {
		ind.OverdueCheckout = checkOut.Before(today) ||
			(checkOut.Equal(today) && now.After(pol.ResolveInstant(today, pol.CheckOut)))
	}

	if r.Status == domain.ReservationConfirmed {
		if !r.ReminderSent {
			days := daysBetween(today, checkIn)
			ind.PendingReminder = days >= 0 && days <= reminderWindowDays
		}
		// The day-after condition does not line up with the 11:00
		// cutoff that fires on the check-in day itself; kept literal
		// until product settles which boundary is meant.
		ind.NoShowRisk = today.Equal(checkIn.AddDate(0, 0, 1)) &&
			!now.Before(pol.ResolveInstant(today, noShowRiskFrom))
	}

	return ind
}

// AutoCancelReason decides whether the periodic sweep must cancel a
// reservation right now. It returns the generated reason and true when
// the no-show rule or the overdue-stay rule applies; the two are
// independent and either alone triggers. Only confirmed reservations
// are ever auto-cancelled.
func AutoCancelReason(r domain.Reservation, now time.Time, pol Policy) (string, bool) {
	if r.Status != domain.ReservationConfirmed {
		return "", false
	}

	today := pol.Today(now)
	checkIn := pol.DateOf(r.CheckInDate)
	checkOut := pol.DateOf(r.CheckOutDate)

	if checkIn.Equal(today) && !now.Before(pol.ResolveInstant(today, NoShowCutoff)) {
		return fmt.Sprintf("auto-cancelled: no show by %s on %s", NoShowCutoff, checkIn.Format(DateLayout)), true
	}
	if checkOut.Before(today) {
		return fmt.Sprintf("auto-cancelled: stay window ended %s with no check-in", checkOut.Format(DateLayout)), true
	}
	return "", false
}

func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return -daysBetween(to, from)
	}
	n := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}
