package repository

import (
	"context"
	"errors"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	FullName  string    `gorm:"column:full_name"`
	Email     *string   `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Document  *string   `gorm:"column:document"`
	Notes     *string   `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     strValue(m.Email),
		Phone:     strValue(m.Phone),
		Document:  strValue(m.Document),
		Notes:     strValue(m.Notes),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	return customerModel{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     strPtr(c.Email),
		Phone:     strPtr(c.Phone),
		Document:  strPtr(c.Document),
		Notes:     strPtr(c.Notes),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

// List returns every customer ordered by name. The fuzzy search index
// is built in memory from this listing; at single-property scale that
// is cheaper than teaching the database to misspell.
func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerModel
	if err := r.db.WithContext(ctx).Order("full_name").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Model(&customerModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"full_name": m.FullName,
		"email":     m.Email,
		"phone":     m.Phone,
		"document":  m.Document,
		"notes":     m.Notes,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a customer and cascades into their reservations in
// one transaction. This is the only path that physically deletes
// reservation rows.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&reservationModel{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&customerModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
