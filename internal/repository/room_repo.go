package repository

import (
	"context"
	"errors"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	RoomTypeID int64     `gorm:"column:room_type_id"`
	Number     string    `gorm:"column:number"`
	Floor      int       `gorm:"column:floor"`
	Active     bool      `gorm:"column:active"`
	Notes      *string   `gorm:"column:notes"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}
	return &domain.Room{
		ID:         m.ID,
		RoomTypeID: m.RoomTypeID,
		Number:     m.Number,
		Floor:      m.Floor,
		Active:     m.Active,
		Notes:      notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var notes *string
	if r.Notes != "" {
		v := r.Notes
		notes = &v
	}
	return roomModel{
		ID:         r.ID,
		RoomTypeID: r.RoomTypeID,
		Number:     r.Number,
		Floor:      r.Floor,
		Active:     r.Active,
		Notes:      notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

// List returns the full roster ordered by room number; the availability
// engine relies on that order for stable room assignment.
func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rows []roomModel
	if err := r.db.WithContext(ctx).Order("number").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) ListByType(ctx context.Context, roomTypeID int64) ([]domain.Room, error) {
	var rows []roomModel
	tx := r.db.WithContext(ctx).Where("room_type_id = ?", roomTypeID).Order("number").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) CountByType(ctx context.Context, roomTypeID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("room_type_id = ?", roomTypeID).Count(&cnt)
	return cnt, tx.Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", room.ID).Updates(map[string]any{
		"room_type_id": m.RoomTypeID,
		"number":       m.Number,
		"floor":        m.Floor,
		"active":       m.Active,
		"notes":        m.Notes,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
