package repository

import (
	"context"
	"errors"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

const settingsRowID = 1

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get loads the singleton settings row, creating it with defaults on
// first access so callers always see a policy.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.HotelSettings, error) {
	var s domain.HotelSettings
	tx := r.db.WithContext(ctx).First(&s, settingsRowID)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		s = domain.DefaultHotelSettings()
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domain.HotelSettings) error {
	s.ID = settingsRowID
	return r.db.WithContext(ctx).Save(s).Error
}
