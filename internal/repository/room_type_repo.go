package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

type roomTypeModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Capacity    int       `gorm:"column:capacity"`
	NightlyRate float64   `gorm:"column:nightly_rate"`
	Amenities   *string   `gorm:"column:amenities"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomTypeModel) TableName() string { return "room_types" }

func toDomainRoomType(m roomTypeModel) *domain.RoomType {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	var amenities []string
	if m.Amenities != nil && *m.Amenities != "" {
		// Bad rows degrade to no amenities instead of failing the read.
		_ = json.Unmarshal([]byte(*m.Amenities), &amenities)
	}

	return &domain.RoomType{
		ID:          m.ID,
		Name:        m.Name,
		Description: description,
		Capacity:    m.Capacity,
		NightlyRate: m.NightlyRate,
		Amenities:   amenities,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomTypeModel(t *domain.RoomType) roomTypeModel {
	var description *string
	if t.Description != "" {
		v := t.Description
		description = &v
	}

	var amenities *string
	if len(t.Amenities) > 0 {
		if data, err := json.Marshal(t.Amenities); err == nil {
			v := string(data)
			amenities = &v
		}
	}

	return roomTypeModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: description,
		Capacity:    t.Capacity,
		NightlyRate: t.NightlyRate,
		Amenities:   amenities,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, t *domain.RoomType) error {
	m := toRoomTypeModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainRoomType(m)
	return nil
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	var m roomTypeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoomType(m), nil
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	var rows []roomTypeModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.RoomType, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoomType(m))
	}
	return out, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, t *domain.RoomType) error {
	m := toRoomTypeModel(t)
	tx := r.db.WithContext(ctx).Model(&roomTypeModel{}).Where("id = ?", t.ID).Updates(map[string]any{
		"name":         m.Name,
		"description":  m.Description,
		"capacity":     m.Capacity,
		"nightly_rate": m.NightlyRate,
		"amenities":    m.Amenities,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomTypeModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
