package customers

import (
	"context"
	"errors"
	"strings"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("customer not found")
)

type Service struct {
	customers *repository.CustomerRepository
}

func NewService(customers *repository.CustomerRepository) *Service {
	return &Service{customers: customers}
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	cust := &domain.Customer{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    strings.TrimSpace(req.Phone),
		Document: strings.TrimSpace(req.Document),
		Notes:    req.Notes,
	}
	if cust.FullName == "" {
		return nil, ErrValidation
	}
	if err := s.customers.Create(ctx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	cust, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cust, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	cust, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cust.FullName = strings.TrimSpace(req.FullName)
	cust.Email = strings.ToLower(strings.TrimSpace(req.Email))
	cust.Phone = strings.TrimSpace(req.Phone)
	cust.Document = strings.TrimSpace(req.Document)
	cust.Notes = req.Notes
	if cust.FullName == "" {
		return nil, ErrValidation
	}

	if err := s.customers.Update(ctx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}

// Delete removes the customer and cascades to their reservations; this
// is the only path that physically deletes reservation rows.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Search ranks customers against a free-form query. Results come back
// best match first; zero-score customers are dropped.
func (s *Service) Search(ctx context.Context, query string) ([]ScoredCustomer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	return rankCustomers(query, customers), nil
}
