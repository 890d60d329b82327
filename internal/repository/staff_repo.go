package repository

import (
	"context"
	"errors"
	"strings"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, u *domain.StaffUser) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	var u domain.StaffUser
	tx := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*domain.StaffUser, error) {
	var u domain.StaffUser
	tx := r.db.WithContext(ctx).First(&u, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.StaffUser{}).Count(&cnt)
	return cnt, tx.Error
}
