package staff

import (
	"context"
	"errors"
	"strings"

	"frontdesk/internal/domain"
	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("staff user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string            `json:"token"`
	User  *domain.StaffUser `json:"user"`
}

type CreateStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type Service struct {
	staff *repository.StaffRepository
	jwt   *jwt.Service
}

func NewService(staff *repository.StaffRepository, jwtService *jwt.Service) *Service {
	return &Service{staff: staff, jwt: jwtService}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.staff.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *Service) Me(ctx context.Context, staffID int64) (*domain.StaffUser, error) {
	user, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Create(ctx context.Context, req CreateStaffRequest) (*domain.StaffUser, error) {
	role := domain.StaffRole(req.Role)
	if !role.Valid() {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.StaffUser{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
	}
	if user.Email == "" || user.Name == "" {
		return nil, ErrValidation
	}

	if err := s.staff.Create(ctx, user); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "duplicate key value") {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}
