package availability

import (
	"testing"
	"time"

	"frontdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextFeasibleStartSkipsBlockedDays(t *testing.T) {
	pol := DefaultPolicy()
	rooms := []domain.Room{{ID: 101, RoomTypeID: stdType, Number: "101", Active: true}}
	existing := []domain.Reservation{
		res("RSV-A", stdType, date(2025, 6, 10), date(2025, 6, 15), domain.ReservationConfirmed, nil),
	}
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// From June 9 the scan starts at June 10, which is blocked through
	// the 14th; first start fitting 2 nights is June 15 (turnover day).
	got, ok := NextFeasibleStart(stdType, 2, date(2025, 6, 9), now, rooms, existing, pol, "")
	require.True(t, ok)
	assert.Equal(t, date(2025, 6, 15), got)
}

func TestNextFeasibleStartNeverStartsInThePast(t *testing.T) {
	pol := DefaultPolicy()
	rooms := []domain.Room{{ID: 101, RoomTypeID: stdType, Number: "101", Active: true}}
	now := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)

	got, ok := NextFeasibleStart(stdType, 1, date(2025, 6, 1), now, rooms, nil, pol, "")
	require.True(t, ok)
	assert.Equal(t, date(2025, 6, 20), got, "clamped to today")
}

func TestNextFeasibleStartBeginsDayAfterFrom(t *testing.T) {
	pol := DefaultPolicy()
	rooms := []domain.Room{{ID: 101, RoomTypeID: stdType, Number: "101", Active: true}}
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	got, ok := NextFeasibleStart(stdType, 1, date(2025, 6, 10), now, rooms, nil, pol, "")
	require.True(t, ok)
	assert.Equal(t, date(2025, 6, 11), got)
}

func TestNextFeasibleStartRespectsStayLength(t *testing.T) {
	pol := DefaultPolicy()
	rooms := []domain.Room{{ID: 101, RoomTypeID: stdType, Number: "101", Active: true}}
	// Free gap June 11-12 is one night wide; a 3-night stay must jump
	// past the second block entirely.
	existing := []domain.Reservation{
		res("RSV-A", stdType, date(2025, 6, 5), date(2025, 6, 11), domain.ReservationConfirmed, nil),
		res("RSV-B", stdType, date(2025, 6, 12), date(2025, 6, 20), domain.ReservationConfirmed, nil),
	}
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	oneNight, ok := NextFeasibleStart(stdType, 1, date(2025, 6, 4), now, rooms, existing, pol, "")
	require.True(t, ok)
	assert.Equal(t, date(2025, 6, 11), oneNight)

	threeNights, ok := NextFeasibleStart(stdType, 3, date(2025, 6, 4), now, rooms, existing, pol, "")
	require.True(t, ok)
	assert.Equal(t, date(2025, 6, 20), threeNights)
}

func TestNextFeasibleStartGivesUpPastHorizon(t *testing.T) {
	pol := DefaultPolicy()
	rooms := []domain.Room{{ID: 101, RoomTypeID: stdType, Number: "101", Active: true}}
	// Room blocked for two years straight.
	existing := []domain.Reservation{
		res("RSV-A", stdType, date(2025, 1, 1), date(2027, 1, 1), domain.ReservationConfirmed, roomID(101)),
	}
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	_, ok := NextFeasibleStart(stdType, 1, date(2025, 6, 1), now, rooms, existing, pol, "")
	assert.False(t, ok)
}

func TestNextFeasibleStartRejectsNonPositiveNights(t *testing.T) {
	pol := DefaultPolicy()
	rooms := []domain.Room{{ID: 101, RoomTypeID: stdType, Number: "101", Active: true}}
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	_, ok := NextFeasibleStart(stdType, 0, date(2025, 6, 1), now, rooms, nil, pol, "")
	assert.False(t, ok)
}

func TestNextFeasibleStartIsMonotonic(t *testing.T) {
	pol := DefaultPolicy()
	rooms := twoStandardRooms()
	existing := []domain.Reservation{
		res("RSV-A", stdType, date(2025, 6, 10), date(2025, 6, 14), domain.ReservationConfirmed, nil),
		res("RSV-B", stdType, date(2025, 6, 11), date(2025, 6, 13), domain.ReservationConfirmed, nil),
	}
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	got, ok := NextFeasibleStart(stdType, 2, date(2025, 6, 9), now, rooms, existing, pol, "")
	require.True(t, ok)

	// No earlier candidate at or past the scan start may be feasible.
	start := date(2025, 6, 10)
	for d := start; d.Before(got); d = d.AddDate(0, 0, 1) {
		avail := AvailableRooms(stdType, d, d.AddDate(0, 0, 2), rooms, existing, pol, "")
		assert.Empty(t, avail, "candidate %s should be infeasible", d.Format(DateLayout))
	}
}
