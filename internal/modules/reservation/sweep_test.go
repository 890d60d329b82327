package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type sweepFixture struct {
	reservations *mockReservations
	customers    *mockCustomers
	settings     *mockSettings
	mailer       *mockMailer
	feed         *recordingFeed
	sweeper      *Sweeper
}

func newSweepFixture(now time.Time) *sweepFixture {
	f := &sweepFixture{
		reservations: new(mockReservations),
		customers:    new(mockCustomers),
		settings:     new(mockSettings),
		mailer:       new(mockMailer),
		feed:         &recordingFeed{},
	}
	st := domain.DefaultHotelSettings()
	f.settings.On("Get", mock.Anything).Return(&st, nil)
	f.sweeper = NewSweeper(f.reservations, f.customers, f.settings, f.mailer, f.feed, fixedClock{t: now})
	return f
}

func confirmedStay(id string, in, out time.Time) domain.Reservation {
	return domain.Reservation{
		ID: id, CustomerID: 7, RoomTypeID: 1, Status: domain.ReservationConfirmed,
		CheckInDate: in, CheckOutDate: out, Guests: 1,
	}
}

func TestSweeper_Run_CancelsNoShowAfterCutoff(t *testing.T) {
	// Check-in day, 11:05 local, guest never arrived.
	f := newSweepFixture(time.Date(2025, 4, 10, 11, 5, 0, 0, time.UTC))

	r := confirmedStay("RSV-LATE",
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC))

	f.reservations.On("ListByStatus", mock.Anything, domain.ReservationConfirmed).Return([]domain.Reservation{r}, nil)
	f.reservations.On("Transition", mock.Anything, "RSV-LATE", domain.ReservationConfirmed, domain.ReservationCancelled,
		mock.MatchedBy(func(o repository.TransitionOpts) bool {
			return o.Reason != "" && o.RoomID == nil
		})).Return(true, nil)
	f.customers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 7, Email: "ana@example.com"}, nil)
	f.mailer.On("SendCancellation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	stats, err := f.sweeper.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 0, stats.Failures)
	assert.Equal(t, []string{"reservation_cancelled"}, f.feed.events)
	f.mailer.AssertCalled(t, "SendCancellation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSweeper_Run_SecondPassFindsNothingToDo(t *testing.T) {
	// The gated write reports the row already moved, so the run counts
	// nothing and sends nothing.
	f := newSweepFixture(time.Date(2025, 4, 10, 11, 5, 0, 0, time.UTC))

	r := confirmedStay("RSV-LATE",
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC))

	f.reservations.On("ListByStatus", mock.Anything, domain.ReservationConfirmed).Return([]domain.Reservation{r}, nil)
	f.reservations.On("Transition", mock.Anything, "RSV-LATE", domain.ReservationConfirmed, domain.ReservationCancelled, mock.Anything).Return(false, nil)

	stats, err := f.sweeper.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Cancelled)
	assert.Equal(t, 0, stats.Failures)
	assert.Empty(t, f.feed.events)
	f.mailer.AssertNotCalled(t, "SendCancellation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSweeper_Run_CancelsOverdueStay(t *testing.T) {
	// Whole stay elapsed with no check-in ever recorded.
	f := newSweepFixture(time.Date(2025, 4, 13, 0, 30, 0, 0, time.UTC))

	r := confirmedStay("RSV-GONE",
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC))

	f.reservations.On("ListByStatus", mock.Anything, domain.ReservationConfirmed).Return([]domain.Reservation{r}, nil)
	f.reservations.On("Transition", mock.Anything, "RSV-GONE", domain.ReservationConfirmed, domain.ReservationCancelled, mock.Anything).Return(true, nil)
	f.customers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 7}, nil)
	f.mailer.On("SendCancellation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	stats, err := f.sweeper.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Cancelled)
}

func TestSweeper_Run_SendsReminderThenMarks(t *testing.T) {
	// Check-in two days out, reminder not yet sent.
	f := newSweepFixture(time.Date(2025, 4, 8, 9, 0, 0, 0, time.UTC))

	r := confirmedStay("RSV-SOON",
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC))

	f.reservations.On("ListByStatus", mock.Anything, domain.ReservationConfirmed).Return([]domain.Reservation{r}, nil)
	f.customers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 7, Email: "ana@example.com"}, nil)
	f.mailer.On("SendReminder", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.reservations.On("MarkReminderSent", mock.Anything, "RSV-SOON", mock.Anything).Return(true, nil)

	stats, err := f.sweeper.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Reminders)
	assert.Equal(t, 0, stats.Cancelled)
	f.reservations.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSweeper_Run_ReminderAlreadySent(t *testing.T) {
	f := newSweepFixture(time.Date(2025, 4, 8, 9, 0, 0, 0, time.UTC))

	r := confirmedStay("RSV-SOON",
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC))
	r.ReminderSent = true

	f.reservations.On("ListByStatus", mock.Anything, domain.ReservationConfirmed).Return([]domain.Reservation{r}, nil)

	stats, err := f.sweeper.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Reminders)
	f.mailer.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweeper_Run_MailFailureRetriesNextPass(t *testing.T) {
	// A failed reminder leaves the flag unset so the next run retries.
	f := newSweepFixture(time.Date(2025, 4, 8, 9, 0, 0, 0, time.UTC))

	r := confirmedStay("RSV-SOON",
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC))

	f.reservations.On("ListByStatus", mock.Anything, domain.ReservationConfirmed).Return([]domain.Reservation{r}, nil)
	f.customers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 7, Email: "ana@example.com"}, nil)
	f.mailer.On("SendReminder", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp: connection refused"))

	stats, err := f.sweeper.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Reminders)
	assert.Equal(t, 1, stats.Failures)
	f.reservations.AssertNotCalled(t, "MarkReminderSent", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweeper_Run_LeavesFutureStaysAlone(t *testing.T) {
	f := newSweepFixture(time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))

	r := confirmedStay("RSV-FAR",
		time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC))

	f.reservations.On("ListByStatus", mock.Anything, domain.ReservationConfirmed).Return([]domain.Reservation{r}, nil)

	stats, err := f.sweeper.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Cancelled)
	assert.Equal(t, 0, stats.Reminders)
	assert.Equal(t, 0, stats.Failures)
	assert.NotEmpty(t, stats.RunID)
}

func TestSweeper_Run_CancelWriteErrorCountsFailure(t *testing.T) {
	f := newSweepFixture(time.Date(2025, 4, 10, 11, 5, 0, 0, time.UTC))

	r := confirmedStay("RSV-LATE",
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC))

	f.reservations.On("ListByStatus", mock.Anything, domain.ReservationConfirmed).Return([]domain.Reservation{r}, nil)
	f.reservations.On("Transition", mock.Anything, "RSV-LATE", domain.ReservationConfirmed, domain.ReservationCancelled, mock.Anything).
		Return(false, errors.New("database is locked"))

	stats, err := f.sweeper.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Cancelled)
	assert.Equal(t, 1, stats.Failures)
}
