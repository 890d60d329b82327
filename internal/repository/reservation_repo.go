package repository

import (
	"context"
	"errors"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository in place of the raw gorm
// sentinel so callers never import gorm.
var ErrNotFound = errors.New("record not found")

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID              string     `gorm:"column:id;primaryKey"`
	CustomerID      int64      `gorm:"column:customer_id"`
	RoomTypeID      int64      `gorm:"column:room_type_id"`
	RoomID          *int64     `gorm:"column:room_id"`
	CheckInDate     time.Time  `gorm:"column:check_in_date"`
	CheckOutDate    time.Time  `gorm:"column:check_out_date"`
	Guests          int        `gorm:"column:guests"`
	TotalAmount     float64    `gorm:"column:total_amount"`
	Status          string     `gorm:"column:status"`
	SpecialRequests *string    `gorm:"column:special_requests"`
	CancelReason    *string    `gorm:"column:cancel_reason"`
	ReminderSent    bool       `gorm:"column:reminder_sent"`
	ReminderSentAt  *time.Time `gorm:"column:reminder_sent_at"`
	CheckedInAt     *time.Time `gorm:"column:checked_in_at"`
	CheckedOutAt    *time.Time `gorm:"column:checked_out_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var requests, reason string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}
	if m.CancelReason != nil {
		reason = *m.CancelReason
	}

	return &domain.Reservation{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		RoomTypeID:      m.RoomTypeID,
		RoomID:          m.RoomID,
		CheckInDate:     m.CheckInDate,
		CheckOutDate:    m.CheckOutDate,
		Guests:          m.Guests,
		TotalAmount:     m.TotalAmount,
		Status:          domain.ReservationStatus(m.Status),
		SpecialRequests: requests,
		CancelReason:    reason,
		ReminderSent:    m.ReminderSent,
		ReminderSentAt:  m.ReminderSentAt,
		CheckedInAt:     m.CheckedInAt,
		CheckedOutAt:    m.CheckedOutAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var requests, reason *string
	if r.SpecialRequests != "" {
		v := r.SpecialRequests
		requests = &v
	}
	if r.CancelReason != "" {
		v := r.CancelReason
		reason = &v
	}

	return reservationModel{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		RoomTypeID:      r.RoomTypeID,
		RoomID:          r.RoomID,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		Guests:          r.Guests,
		TotalAmount:     r.TotalAmount,
		Status:          string(r.Status),
		SpecialRequests: requests,
		CancelReason:    reason,
		ReminderSent:    r.ReminderSent,
		ReminderSentAt:  r.ReminderSentAt,
		CheckedInAt:     r.CheckedInAt,
		CheckedOutAt:    r.CheckedOutAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// ListFilter narrows List. Zero values mean "no constraint"; From/To
// select stays whose whole window intersects [From, To).
type ListFilter struct {
	Status     domain.ReservationStatus
	RoomTypeID int64
	CustomerID int64
	From       time.Time
	To         time.Time
	Limit      int
	Offset     int
}

func (r *ReservationRepository) List(ctx context.Context, f ListFilter) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&reservationModel{})
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.RoomTypeID != 0 {
		q = q.Where("room_type_id = ?", f.RoomTypeID)
	}
	if f.CustomerID != 0 {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if !f.From.IsZero() && !f.To.IsZero() {
		q = q.Where("check_in_date < ? AND check_out_date > ?", f.To, f.From)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []reservationModel
	if err := q.Order("check_in_date, id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// ListByRoomType returns every reservation of a type regardless of
// status. The availability engine filters statuses itself, so the
// snapshot must not pre-filter.
func (r *ReservationRepository) ListByRoomType(ctx context.Context, roomTypeID int64) ([]domain.Reservation, error) {
	return r.List(ctx, ListFilter{RoomTypeID: roomTypeID})
}

func (r *ReservationRepository) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	return r.List(ctx, ListFilter{Status: status})
}

// Update rewrites the mutable stay fields after an edit. Status changes
// go through Transition, never through here.
func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Model(&reservationModel{}).Where("id = ?", res.ID).Updates(map[string]any{
		"room_type_id":     m.RoomTypeID,
		"room_id":          m.RoomID,
		"check_in_date":    m.CheckInDate,
		"check_out_date":   m.CheckOutDate,
		"guests":           m.Guests,
		"total_amount":     m.TotalAmount,
		"special_requests": m.SpecialRequests,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TransitionOpts carries the fields written alongside a status change.
type TransitionOpts struct {
	Reason string
	RoomID *int64
	At     time.Time
}

// Transition applies a status change gated on the expected current
// status: the UPDATE matches on (id, from) so a concurrent or repeated
// sweep can never apply the same transition twice. Returns false when
// the row was not in the expected status.
func (r *ReservationRepository) Transition(ctx context.Context, id string, from, to domain.ReservationStatus, opts TransitionOpts) (bool, error) {
	if opts.At.IsZero() {
		opts.At = time.Now()
	}

	updates := map[string]any{
		"status":     string(to),
		"updated_at": opts.At,
	}
	switch to {
	case domain.ReservationCancelled:
		updates["cancel_reason"] = opts.Reason
	case domain.ReservationCheckedIn:
		updates["checked_in_at"] = opts.At
		if opts.RoomID != nil {
			updates["room_id"] = *opts.RoomID
		}
	case domain.ReservationCheckedOut:
		updates["checked_out_at"] = opts.At
	}

	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// MarkReminderSent flips the reminder flag once; a second call is a
// no-op and reports false.
func (r *ReservationRepository) MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ? AND reminder_sent = ?", id, false).
		Updates(map[string]any{
			"reminder_sent":    true,
			"reminder_sent_at": at,
			"updated_at":       at,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
