package availability

import (
	"testing"
	"time"

	"frontdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestNoShowCancelsAfterCutoff(t *testing.T) {
	pol := DefaultPolicy()
	r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 12), domain.ReservationConfirmed, nil)

	reason, ok := AutoCancelReason(r, at(2025, 4, 10, 11, 1), pol)
	require.True(t, ok)
	assert.Contains(t, reason, "11:00")
	assert.Contains(t, reason, "2025-04-10")
}

func TestNoShowWaitsUntilCutoff(t *testing.T) {
	pol := DefaultPolicy()
	r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 12), domain.ReservationConfirmed, nil)

	_, ok := AutoCancelReason(r, at(2025, 4, 10, 10, 59), pol)
	assert.False(t, ok, "guest is late, not yet a no-show")

	_, ok = AutoCancelReason(r, at(2025, 4, 10, 11, 0), pol)
	assert.True(t, ok, "cutoff itself fires")
}

func TestNoShowDoesNotFireBeforeCheckInDay(t *testing.T) {
	pol := DefaultPolicy()
	r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 12), domain.ReservationConfirmed, nil)

	_, ok := AutoCancelReason(r, at(2025, 4, 9, 23, 59), pol)
	assert.False(t, ok)
}

func TestOverdueStayCancelsAfterWindowElapses(t *testing.T) {
	pol := DefaultPolicy()
	r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 12), domain.ReservationConfirmed, nil)

	// Checkout day itself is not yet overdue.
	_, ok := AutoCancelReason(r, at(2025, 4, 12, 23, 0), pol)
	assert.False(t, ok)

	reason, ok := AutoCancelReason(r, at(2025, 4, 13, 0, 30), pol)
	require.True(t, ok)
	assert.Contains(t, reason, "2025-04-12")
}

func TestSweepNeverTouchesCheckedInOrTerminal(t *testing.T) {
	pol := DefaultPolicy()
	now := at(2025, 4, 20, 12, 0)

	for _, status := range []domain.ReservationStatus{
		domain.ReservationCheckedIn,
		domain.ReservationCheckedOut,
		domain.ReservationCancelled,
	} {
		r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 12), status, nil)
		_, ok := AutoCancelReason(r, now, pol)
		assert.False(t, ok, "status %s must not auto-cancel", status)
	}
}

func TestAutoCancelDecisionIsIdempotent(t *testing.T) {
	pol := DefaultPolicy()
	now := at(2025, 4, 10, 11, 30)
	r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 12), domain.ReservationConfirmed, nil)

	reason, ok := AutoCancelReason(r, now, pol)
	require.True(t, ok)

	r.Status = domain.ReservationCancelled
	r.CancelReason = reason
	_, again := AutoCancelReason(r, now, pol)
	assert.False(t, again, "second pass over a cancelled reservation is a no-op")
}

func TestOverdueCheckoutIndicator(t *testing.T) {
	pol := DefaultPolicy()
	r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 12), domain.ReservationCheckedIn, roomID(101))

	assert.True(t, ComputeIndicators(r, at(2025, 4, 13, 9, 0), pol).OverdueCheckout, "checkout date in the past")
	assert.True(t, ComputeIndicators(r, at(2025, 4, 12, 11, 1), pol).OverdueCheckout, "past checkout time on checkout day")
	assert.False(t, ComputeIndicators(r, at(2025, 4, 12, 11, 0), pol).OverdueCheckout, "strictly after, not at")
	assert.False(t, ComputeIndicators(r, at(2025, 4, 12, 9, 0), pol).OverdueCheckout)

	confirmed := res("RSV-B", stdType, date(2025, 4, 10), date(2025, 4, 12), domain.ReservationConfirmed, nil)
	assert.False(t, ComputeIndicators(confirmed, at(2025, 4, 13, 9, 0), pol).OverdueCheckout, "only checked-in stays can be overdue")
}

func TestPendingReminderWindow(t *testing.T) {
	pol := DefaultPolicy()
	r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 12), domain.ReservationConfirmed, nil)

	assert.True(t, ComputeIndicators(r, at(2025, 4, 7, 9, 0), pol).PendingReminder, "3 days ahead")
	assert.True(t, ComputeIndicators(r, at(2025, 4, 10, 9, 0), pol).PendingReminder, "check-in day")
	assert.False(t, ComputeIndicators(r, at(2025, 4, 6, 9, 0), pol).PendingReminder, "4 days ahead")
	assert.False(t, ComputeIndicators(r, at(2025, 4, 11, 9, 0), pol).PendingReminder, "check-in passed")

	r.ReminderSent = true
	assert.False(t, ComputeIndicators(r, at(2025, 4, 8, 9, 0), pol).PendingReminder)
}

func TestNoShowRiskDayAfterCheckIn(t *testing.T) {
	pol := DefaultPolicy()
	r := res("RSV-A", stdType, date(2025, 4, 10), date(2025, 4, 14), domain.ReservationConfirmed, nil)

	assert.False(t, ComputeIndicators(r, at(2025, 4, 10, 12, 0), pol).NoShowRisk, "check-in day itself")
	assert.False(t, ComputeIndicators(r, at(2025, 4, 11, 0, 30), pol).NoShowRisk, "before 01:00")
	assert.True(t, ComputeIndicators(r, at(2025, 4, 11, 1, 0), pol).NoShowRisk)
	assert.True(t, ComputeIndicators(r, at(2025, 4, 11, 9, 0), pol).NoShowRisk)
	assert.False(t, ComputeIndicators(r, at(2025, 4, 12, 9, 0), pol).NoShowRisk, "two days after")

	checkedIn := res("RSV-B", stdType, date(2025, 4, 10), date(2025, 4, 14), domain.ReservationCheckedIn, roomID(101))
	assert.False(t, ComputeIndicators(checkedIn, at(2025, 4, 11, 9, 0), pol).NoShowRisk)
}
