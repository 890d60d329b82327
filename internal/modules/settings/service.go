package settings

import (
	"context"
	"errors"
	"strings"
	"time"

	"frontdesk/internal/availability"
	"frontdesk/internal/domain"
	"frontdesk/internal/repository"
)

var ErrValidation = errors.New("validation error")

type UpdateSettingsRequest struct {
	HotelName    string `json:"hotel_name" binding:"required"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	CheckInTime  string `json:"check_in_time" binding:"required"`
	CheckOutTime string `json:"check_out_time" binding:"required"`
	Timezone     string `json:"timezone" binding:"required"`
}

type Service struct {
	settings *repository.SettingsRepository
}

func NewService(settings *repository.SettingsRepository) *Service {
	return &Service{settings: settings}
}

func (s *Service) Get(ctx context.Context) (*domain.HotelSettings, error) {
	return s.settings.Get(ctx)
}

// Update validates the policy fields strictly: a bad clock time or
// timezone stored here would silently poison every availability
// computation downstream.
func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (*domain.HotelSettings, error) {
	if strings.TrimSpace(req.HotelName) == "" {
		return nil, ErrValidation
	}
	if _, err := availability.ParseClockTime(req.CheckInTime); err != nil {
		return nil, ErrValidation
	}
	if _, err := availability.ParseClockTime(req.CheckOutTime); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, ErrValidation
	}

	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	st.HotelName = strings.TrimSpace(req.HotelName)
	st.Address = req.Address
	st.Phone = req.Phone
	st.CheckInTime = req.CheckInTime
	st.CheckOutTime = req.CheckOutTime
	st.Timezone = req.Timezone

	if err := s.settings.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
