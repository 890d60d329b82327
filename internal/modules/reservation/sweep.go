package reservation

import (
	"context"
	"log"

	"frontdesk/internal/availability"
	"frontdesk/internal/domain"
	"frontdesk/internal/notifier"
	"frontdesk/internal/repository"

	"github.com/google/uuid"
)

type SweepStats struct {
	RunID     string `json:"run_id"`
	Cancelled int    `json:"cancelled"`
	Reminders int    `json:"reminders"`
	Failures  int    `json:"failures"`
}

// Sweeper applies the wall-clock lifecycle rules to confirmed
// reservations: no-show and overdue-stay auto-cancellation, then
// check-in reminders. Every write is gated on the status the decision
// saw, so overlapping runs cancel and remind at most once.
type Sweeper struct {
	reservations ReservationStore
	customers    CustomerStore
	settings     SettingsStore
	notifs       notifier.Notifier
	events       EventPublisher
	clock        availability.Clock
}

func NewSweeper(
	reservations ReservationStore,
	customers CustomerStore,
	settings SettingsStore,
	notifs notifier.Notifier,
	events EventPublisher,
	clock availability.Clock,
) *Sweeper {
	if clock == nil {
		clock = availability.SystemClock{}
	}
	return &Sweeper{
		reservations: reservations,
		customers:    customers,
		settings:     settings,
		notifs:       notifs,
		events:       events,
		clock:        clock,
	}
}

// Run executes one sweep pass. Per-reservation failures are counted
// and logged, never fatal; the next pass retries them.
func (s *Sweeper) Run(ctx context.Context) (SweepStats, error) {
	stats := SweepStats{RunID: uuid.NewString()}

	st, err := s.settings.Get(ctx)
	if err != nil {
		return stats, err
	}
	pol := availability.PolicyFrom(*st)
	now := s.clock.Now()

	confirmed, err := s.reservations.ListByStatus(ctx, domain.ReservationConfirmed)
	if err != nil {
		return stats, err
	}

	for _, r := range confirmed {
		if reason, due := availability.AutoCancelReason(r, now, pol); due {
			ok, err := s.reservations.Transition(ctx, r.ID, domain.ReservationConfirmed, domain.ReservationCancelled, repository.TransitionOpts{
				Reason: reason,
				At:     now,
			})
			if err != nil {
				stats.Failures++
				log.Printf("sweep run_id=%s reservation=%s cancel_error=%v", stats.RunID, r.ID, err)
				continue
			}
			if !ok {
				// Someone moved it since the list was read.
				continue
			}
			stats.Cancelled++
			r.Status = domain.ReservationCancelled
			r.CancelReason = reason
			if s.notifs != nil {
				if cust, err := s.customers.GetByID(ctx, r.CustomerID); err == nil {
					if err := s.notifs.SendCancellation(ctx, r, *cust, reason); err != nil {
						log.Printf("sweep run_id=%s reservation=%s mail_error=%v", stats.RunID, r.ID, err)
					}
				}
			}
			if s.events != nil {
				s.events.PublishReservation("reservation_cancelled", r)
			}
			continue
		}

		ind := availability.ComputeIndicators(r, now, pol)
		if !ind.PendingReminder {
			continue
		}
		cust, err := s.customers.GetByID(ctx, r.CustomerID)
		if err != nil {
			stats.Failures++
			log.Printf("sweep run_id=%s reservation=%s customer_error=%v", stats.RunID, r.ID, err)
			continue
		}
		if s.notifs != nil {
			if err := s.notifs.SendReminder(ctx, r, *cust); err != nil {
				stats.Failures++
				log.Printf("sweep run_id=%s reservation=%s reminder_error=%v", stats.RunID, r.ID, err)
				continue
			}
		}
		ok, err := s.reservations.MarkReminderSent(ctx, r.ID, now)
		if err != nil {
			stats.Failures++
			log.Printf("sweep run_id=%s reservation=%s reminder_mark_error=%v", stats.RunID, r.ID, err)
			continue
		}
		if ok {
			stats.Reminders++
		}
	}

	log.Printf("sweep run_id=%s cancelled=%d reminders=%d failures=%d", stats.RunID, stats.Cancelled, stats.Reminders, stats.Failures)
	return stats, nil
}
